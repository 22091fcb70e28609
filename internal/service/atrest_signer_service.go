package service

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/json"
	"fmt"

	"qrpay/internal/core/domain"
	"qrpay/internal/core/ports"
	"qrpay/pkg/apperror"
)

// Ed25519AtRestSigner implements ports.AtRestSigner with the
// device-persistent Ed25519 key pair. Every queued transaction is
// wrapped in a SignedRecord before it touches storage, so tampering
// while the device is offline is detectable on the next read.
type Ed25519AtRestSigner struct {
	keys ports.KeyStore
}

// NewEd25519AtRestSigner creates a signer using the given key store.
func NewEd25519AtRestSigner(keys ports.KeyStore) *Ed25519AtRestSigner {
	return &Ed25519AtRestSigner{keys: keys}
}

// Seal signs the JSON encoding of the entry with the device key.
func (s *Ed25519AtRestSigner) Seal(ctx context.Context, entry *domain.PendingTransaction) (*domain.SignedRecord, error) {
	pair, err := s.keys.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encoding pending transaction: %w", err))
	}

	return &domain.SignedRecord{
		Payload:   payload,
		Signature: ed25519.Sign(ed25519.PrivateKey(pair.PrivateKey), payload),
		PublicKey: pair.PublicKey,
	}, nil
}

// Open verifies the record against the device key from the key store and
// decodes the entry. The key embedded in the record is informational
// only: a record re-signed under some other key does not verify, even
// when it carries that key. A failed verification means the record was
// altered at rest; the caller quarantines it.
func (s *Ed25519AtRestSigner) Open(ctx context.Context, record *domain.SignedRecord) (*domain.PendingTransaction, error) {
	pair, err := s.keys.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(record.PublicKey, pair.PublicKey) {
		return nil, apperror.ErrSignatureInvalid()
	}
	if !ed25519.Verify(ed25519.PublicKey(pair.PublicKey), record.Payload, record.Signature) {
		return nil, apperror.ErrSignatureInvalid()
	}

	entry := &domain.PendingTransaction{}
	if err := json.Unmarshal(record.Payload, entry); err != nil {
		return nil, apperror.ErrSignatureInvalid()
	}
	return entry, nil
}
