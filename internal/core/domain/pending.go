package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryDirection is the side of the ledger a pending transaction touches.
type EntryDirection string

const (
	EntryDebit  EntryDirection = "DEBIT"
	EntryCredit EntryDirection = "CREDIT"
)

// PendingTransaction is a single-sided ledger operation waiting in the
// offline queue. A two-sided settlement that could not run atomically is
// split into a debit and a credit entry sharing one idempotency token
// group; each side is individually retryable to completion.
//
// Entries are mutated only by incrementing SyncAttempts, and removed only
// after a confirmed remote insert.
type PendingTransaction struct {
	LocalID          uuid.UUID      `json:"local_id"`
	UserID           string         `json:"user_id"`
	CounterpartyID   string         `json:"counterparty_id,omitempty"`
	AmountCents      int64          `json:"amount"`
	Currency         string         `json:"currency"`
	Direction        EntryDirection `json:"direction"`
	Description      string         `json:"description,omitempty"`
	MerchantRef      string         `json:"merchant_ref,omitempty"`
	IdempotencyToken string         `json:"idempotency_token"`
	CreatedAt        time.Time      `json:"created_at"`
	SyncAttempts     int            `json:"sync_attempts"`
}

// SignedRecord is the at-rest envelope around a queued entry: the
// JSON-encoded PendingTransaction plus a detached signature from the
// device-persistent key pair. The key pair is distinct from the one-time
// transport keys and reused for the device's lifetime.
//
// A record whose signature fails verification is quarantined, never
// replayed and never dropped silently.
type SignedRecord struct {
	Payload   []byte `json:"payload"`
	Signature []byte `json:"signature"`
	PublicKey []byte `json:"public_key"`
}
