package service

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrpay/internal/core/domain"
	"qrpay/pkg/apperror"
)

func testPendingTransaction() *domain.PendingTransaction {
	return &domain.PendingTransaction{
		LocalID:          uuid.New(),
		UserID:           "buyer-1",
		CounterpartyID:   "seller-1",
		AmountCents:      2550,
		Currency:         "MYR",
		Direction:        domain.EntryDebit,
		Description:      "Lunch",
		IdempotencyToken: "tok/debit",
		CreatedAt:        time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestEd25519AtRestSigner_RoundTrip(t *testing.T) {
	signer := NewEd25519AtRestSigner(NewDeviceKeyStore(newMemStore()))
	entry := testPendingTransaction()

	record, err := signer.Seal(context.Background(), entry)
	require.NoError(t, err)
	assert.NotEmpty(t, record.Signature)
	assert.NotEmpty(t, record.PublicKey)

	got, err := signer.Open(context.Background(), record)
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestEd25519AtRestSigner_TamperedPayloadRejected(t *testing.T) {
	signer := NewEd25519AtRestSigner(NewDeviceKeyStore(newMemStore()))

	record, err := signer.Seal(context.Background(), testPendingTransaction())
	require.NoError(t, err)

	record.Payload[10] ^= 0xff
	_, err = signer.Open(context.Background(), record)
	assert.True(t, apperror.HasCode(err, "SEC_001"))
}

func TestEd25519AtRestSigner_TamperedSignatureRejected(t *testing.T) {
	signer := NewEd25519AtRestSigner(NewDeviceKeyStore(newMemStore()))

	record, err := signer.Seal(context.Background(), testPendingTransaction())
	require.NoError(t, err)

	record.Signature[0] ^= 0xff
	_, err = signer.Open(context.Background(), record)
	assert.True(t, apperror.HasCode(err, "SEC_001"))
}

func TestEd25519AtRestSigner_ForeignKeyRejected(t *testing.T) {
	signer := NewEd25519AtRestSigner(NewDeviceKeyStore(newMemStore()))
	entry := testPendingTransaction()

	record, err := signer.Seal(context.Background(), entry)
	require.NoError(t, err)

	// An attacker with storage access rewrites the entry and re-signs it
	// under a key pair of their own, embedding the matching public key.
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	entry.AmountCents = 1
	payload, err := json.Marshal(entry)
	require.NoError(t, err)
	record.Payload = payload
	record.Signature = ed25519.Sign(priv, payload)
	record.PublicKey = pub

	_, err = signer.Open(context.Background(), record)
	assert.True(t, apperror.HasCode(err, "SEC_001"))
}

func TestEd25519AtRestSigner_BadPublicKeyRejected(t *testing.T) {
	signer := NewEd25519AtRestSigner(NewDeviceKeyStore(newMemStore()))

	record, err := signer.Seal(context.Background(), testPendingTransaction())
	require.NoError(t, err)

	record.PublicKey = []byte("short")
	_, err = signer.Open(context.Background(), record)
	assert.True(t, apperror.HasCode(err, "SEC_001"))
}
