package ports

import (
	"context"
	"time"

	"qrpay/internal/core/domain"
)

// LedgerEntry is the record the remote ledger returns for an insert.
type LedgerEntry struct {
	ID               string
	UserID           string
	CounterpartyID   string
	AmountCents      int64
	Currency         string
	Direction        domain.EntryDirection
	Description      string
	MerchantRef      string
	IdempotencyToken string
	CreatedAt        time.Time
}

// P2PMetadata carries the descriptive fields of a settlement.
type P2PMetadata struct {
	Currency    string
	Description string
	MerchantRef string
}

// LedgerRepository is the remote ledger. Both calls are idempotent on
// the entry's idempotency token: re-submitting a token that already
// settled returns the existing record instead of inserting a second one.
type LedgerRepository interface {
	// CreateEntry inserts a single-sided entry (debit or credit).
	// Used by queue drain, where a two-sided settlement has been split
	// into independent halves.
	CreateEntry(ctx context.Context, entry *domain.PendingTransaction) (*LedgerEntry, error)

	// CreateP2P atomically debits the payer and credits the payee in one
	// remote transaction. Partial application is unreachable on this
	// path by construction.
	CreateP2P(ctx context.Context, payerID, payeeID string, amountCents int64, token string, meta P2PMetadata) ([]LedgerEntry, error)
}

// DeviceStore is the durable local key-value store (the device-side
// analogue of browser storage): pending queue, quarantine bucket, cached
// balance and device keys all live here.
type DeviceStore interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil when absent
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
