package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha512"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"

	"qrpay/internal/core/domain"
	"qrpay/internal/core/ports"
	"qrpay/pkg/apperror"
)

const (
	aesKeySize = 32 // AES-256
	gcmIVSize  = 12
)

// ECDSATransportCrypto implements ports.TransportCrypto using AES-256-GCM
// for confidentiality and ECDSA P-384 with one-time key pairs for
// authenticity. Signatures cover SHA-384(ciphertext || iv) and are
// ASN.1/DER encoded; verifying keys travel as PKIX DER so the recipient
// needs no prior key exchange.
type ECDSATransportCrypto struct{}

// NewECDSATransportCrypto creates the transport crypto service.
func NewECDSATransportCrypto() *ECDSATransportCrypto {
	return &ECDSATransportCrypto{}
}

// GenerateKeys produces a fresh one-time key triple. Keys are never
// reused across transactions.
func (s *ECDSATransportCrypto) GenerateKeys() (*ports.TransactionKeys, error) {
	symmetric := make([]byte, aesKeySize)
	if _, err := io.ReadFull(rand.Reader, symmetric); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generating symmetric key: %w", err))
	}

	signing, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generating signing key: %w", err))
	}
	signingDER, err := x509.MarshalPKCS8PrivateKey(signing)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encoding signing key: %w", err))
	}
	verifyingDER, err := x509.MarshalPKIXPublicKey(&signing.PublicKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encoding verifying key: %w", err))
	}

	return &ports.TransactionKeys{
		SymmetricKey: symmetric,
		SigningKey:   signingDER,
		VerifyingKey: verifyingDER,
	}, nil
}

// EncryptAndSign wraps a payload into a transport envelope:
// JSON-encode -> AES-GCM encrypt under a fresh IV -> sign ciphertext||iv.
func (s *ECDSATransportCrypto) EncryptAndSign(payload *domain.TransactionPayload, kind domain.EnvelopeKind, senderID string, keys *ports.TransactionKeys) (*domain.Envelope, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal payload: %w", err))
	}

	aead, err := newGCM(keys.SymmetricKey)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	iv := make([]byte, gcmIVSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generating iv: %w", err))
	}
	ciphertext := aead.Seal(nil, iv, plaintext, nil)

	key, err := x509.ParsePKCS8PrivateKey(keys.SigningKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("decoding signing key: %w", err))
	}
	signingKey, ok := key.(*ecdsa.PrivateKey)
	if !ok {
		return nil, apperror.InternalError(fmt.Errorf("signing key is not ECDSA"))
	}

	envelope := &domain.Envelope{
		Kind:            kind,
		SenderID:        senderID,
		Ciphertext:      ciphertext,
		EncryptionKey:   keys.SymmetricKey,
		VerificationKey: keys.VerifyingKey,
		IV:              iv,
	}
	digest := sha512.Sum384(envelope.SignedBytes())
	signature, err := ecdsa.SignASN1(rand.Reader, signingKey, digest[:])
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("signing envelope: %w", err))
	}
	envelope.Signature = signature
	return envelope, nil
}

// VerifyAndDecrypt opens a transport envelope. Ordering is a hard
// invariant: the signature over ciphertext||iv is verified first, and a
// tampered envelope is rejected before any decryption happens.
func (s *ECDSATransportCrypto) VerifyAndDecrypt(envelope *domain.Envelope) (*domain.TransactionPayload, error) {
	pub, err := x509.ParsePKIXPublicKey(envelope.VerificationKey)
	if err != nil {
		return nil, apperror.ErrSignatureInvalid()
	}
	verifyingKey, ok := pub.(*ecdsa.PublicKey)
	if !ok {
		return nil, apperror.ErrSignatureInvalid()
	}

	digest := sha512.Sum384(envelope.SignedBytes())
	if !ecdsa.VerifyASN1(verifyingKey, digest[:], envelope.Signature) {
		return nil, apperror.ErrSignatureInvalid()
	}

	aead, err := newGCM(envelope.EncryptionKey)
	if err != nil {
		return nil, apperror.ErrDecryptionFailed(err)
	}
	plaintext, err := aead.Open(nil, envelope.IV, envelope.Ciphertext, nil)
	if err != nil {
		return nil, apperror.ErrDecryptionFailed(err)
	}

	payload := &domain.TransactionPayload{}
	if err := json.Unmarshal(plaintext, payload); err != nil {
		return nil, apperror.ErrDecryptionFailed(fmt.Errorf("parse payload: %w", err))
	}
	return payload, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != aesKeySize {
		return nil, fmt.Errorf("symmetric key must be %d bytes, got %d", aesKeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return aead, nil
}
