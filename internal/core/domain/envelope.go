package domain

// EnvelopeKind is the wire-level message type. The protocol is a
// two-message exchange: the seller displays a PAYMENT, the buyer answers
// with an ACK.
type EnvelopeKind string

const (
	EnvelopeKindPayment EnvelopeKind = "PAYMENT"
	EnvelopeKindAck     EnvelopeKind = "ACK"
)

// Valid reports whether the kind is one of the two protocol messages.
// Decoding fails closed on anything else.
func (k EnvelopeKind) Valid() bool {
	return k == EnvelopeKindPayment || k == EnvelopeKindAck
}

// Envelope is the signed, encrypted wire form of a TransactionPayload.
//
// The encryption key travels in-band: a QR code is visible to whoever
// scans it, so the scheme's goal is integrity and compactness, not
// secrecy against the scanning party. The verification key is the
// one-time key generated for this transaction, never a long-lived
// identity key.
//
// Invariant: Signature validates over Ciphertext || IV under
// VerificationKey. Verification always precedes decryption.
type Envelope struct {
	Kind            EnvelopeKind `json:"type"`
	SenderID        string       `json:"sender_id,omitempty"`
	Ciphertext      []byte       `json:"ciphertext"`
	EncryptionKey   []byte       `json:"encryption_key"`
	Signature       []byte       `json:"signature"`
	VerificationKey []byte       `json:"verification_key"`
	IV              []byte       `json:"iv"`
}

// SignedBytes returns the byte string the transport signature covers.
func (e *Envelope) SignedBytes() []byte {
	signed := make([]byte, 0, len(e.Ciphertext)+len(e.IV))
	signed = append(signed, e.Ciphertext...)
	signed = append(signed, e.IV...)
	return signed
}
