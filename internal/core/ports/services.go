package ports

import (
	"context"

	"qrpay/internal/core/domain"
)

// EnvelopeCodec converts envelopes to and from the QR-safe transport
// string. Decode fails closed: malformed input is an error, never a
// partial envelope, and there is no fallback format.
type EnvelopeCodec interface {
	Encode(envelope *domain.Envelope) (string, error)
	Decode(encoded string) (*domain.Envelope, error)
}

// TransactionKeys is the one-time key triple generated per transaction.
// Nothing in it is reused across transactions, which bounds the blast
// radius of any single key compromise to one transaction.
type TransactionKeys struct {
	SymmetricKey []byte
	SigningKey   []byte // PKCS#8 DER, private
	VerifyingKey []byte // PKIX DER, public
}

// TransportCrypto wraps a payload with confidentiality (AEAD under a
// fresh key/IV) and authenticity (detached signature from a one-time
// signing key).
type TransportCrypto interface {
	GenerateKeys() (*TransactionKeys, error)
	EncryptAndSign(payload *domain.TransactionPayload, kind domain.EnvelopeKind, senderID string, keys *TransactionKeys) (*domain.Envelope, error)
	// VerifyAndDecrypt verifies the signature over ciphertext||iv before
	// any decryption, then opens the ciphertext and parses the payload.
	VerifyAndDecrypt(envelope *domain.Envelope) (*domain.TransactionPayload, error)
}

// AtRestSigner protects queued transactions while they sit in local
// storage, using the device-persistent key pair from the KeyStore.
type AtRestSigner interface {
	Seal(ctx context.Context, entry *domain.PendingTransaction) (*domain.SignedRecord, error)
	// Open verifies the record's signature and decodes the entry.
	// Verification failure means tampering: the caller quarantines the
	// record.
	Open(ctx context.Context, record *domain.SignedRecord) (*domain.PendingTransaction, error)
}

// DeviceKeyPair is the long-lived at-rest signing identity of a device.
type DeviceKeyPair struct {
	PublicKey  []byte
	PrivateKey []byte
}

// KeyStore hands out the device key pair with get-or-create semantics.
// It is the only way code reaches device keys; nothing reads ambient
// storage directly.
type KeyStore interface {
	GetOrCreate(ctx context.Context) (*DeviceKeyPair, error)
}

// ScanOutcome is what a scan produced: either an ACK to display (the
// scanned code was a PAYMENT) or a completed settlement (it was an ACK).
type ScanOutcome struct {
	Kind    domain.EnvelopeKind
	Payload *domain.TransactionPayload
	AckQR   string // set when Kind == PAYMENT
	Settled bool   // set when Kind == ACK
	Queued  bool   // settlement fell back to the offline queue
}

// SessionService drives the PAYMENT → ACK exchange on both roles.
type SessionService interface {
	// CreatePayment builds a PAYMENT envelope and opens a seller session.
	CreatePayment(ctx context.Context, amountCents int64, description string) (*domain.PaymentSession, error)
	GetSession(ctx context.Context, id string) (*domain.PaymentSession, error)
	// Scan consumes a scanned QR string of either kind.
	Scan(ctx context.Context, encoded string) (*ScanOutcome, error)
	// ExpireSessions marks sessions past their payload expiry. Returns
	// the number expired.
	ExpireSessions(ctx context.Context) int
}

// SettlementResult reports how a settlement completed.
type SettlementResult struct {
	Settled bool // atomic remote settlement succeeded
	Queued  bool // routed to the offline queue
	Entries []LedgerEntry
}

// SettlementService calls the remote ledger exactly once per logical
// transaction, falling back to the offline queue when the network is
// unavailable.
type SettlementService interface {
	Settle(ctx context.Context, payerID, payeeID string, amountCents int64, token string, meta P2PMetadata) (*SettlementResult, error)
}

// DrainResult aggregates one drain cycle. Per-item failures are counted,
// not raised. Failed entries are retried on the next cycle; rejected and
// quarantined entries are not.
type DrainResult struct {
	Synced      int `json:"synced"`
	Failed      int `json:"failed"`
	Rejected    int `json:"rejected"`
	Quarantined int `json:"quarantined"`
}

// TransactionQueue is the offline durable queue.
type TransactionQueue interface {
	Enqueue(ctx context.Context, entry *domain.PendingTransaction) error
	// Drain is reentrant-safe: concurrent invocations never double-submit
	// an entry.
	Drain(ctx context.Context) (*DrainResult, error)
	Pending(ctx context.Context) ([]*domain.PendingTransaction, error)
	// Rejected lists entries the ledger refused; they are parked and
	// never retried automatically.
	Rejected(ctx context.Context) ([]*domain.PendingTransaction, error)
	Quarantined(ctx context.Context) ([]*domain.SignedRecord, error)
	Clear(ctx context.Context) error
	// Subscribe registers an observer called with the queue depth after
	// every mutation.
	Subscribe(fn func(depth int))
}

// BalanceCache stores the last known available balance for offline
// affordability checks. A nil balance means unknown.
type BalanceCache interface {
	Balance(ctx context.Context) (*int64, error)
	SetBalance(ctx context.Context, cents int64) error
}

// ConnectivityMonitor tracks whether the device considers itself online.
// The effective status combines real network state with a manual
// offline override.
type ConnectivityMonitor interface {
	Online() bool
	SetOnline(online bool)
	// Subscribe registers a callback fired on every status change.
	Subscribe(fn func(online bool))
}
