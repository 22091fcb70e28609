package integration

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"qrpay/internal/core/domain"
	"qrpay/internal/core/ports"
	"qrpay/pkg/apperror"
)

// inMemoryLedger stands in for the remote PostgreSQL ledger. Inserts are
// idempotent on the entry token, matching the ON CONFLICT semantics of
// the real repo, and the ledger can be made unreachable to simulate a
// network partition between device and backend.
type inMemoryLedger struct {
	mu        sync.Mutex
	entries   map[string]ports.LedgerEntry // keyed by idempotency token
	submits   map[string]int               // CreateEntry calls per token
	reachable bool
}

func newInMemoryLedger() *inMemoryLedger {
	return &inMemoryLedger{
		entries:   make(map[string]ports.LedgerEntry),
		submits:   make(map[string]int),
		reachable: true,
	}
}

func (l *inMemoryLedger) setReachable(reachable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reachable = reachable
}

func (l *inMemoryLedger) CreateEntry(ctx context.Context, entry *domain.PendingTransaction) (*ports.LedgerEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.reachable {
		return nil, apperror.ErrNetworkUnavailable(errors.New("ledger unreachable"))
	}

	l.submits[entry.IdempotencyToken]++
	if existing, ok := l.entries[entry.IdempotencyToken]; ok {
		return &existing, nil
	}

	created := ports.LedgerEntry{
		ID:               uuid.NewString(),
		UserID:           entry.UserID,
		CounterpartyID:   entry.CounterpartyID,
		AmountCents:      entry.AmountCents,
		Currency:         entry.Currency,
		Direction:        entry.Direction,
		Description:      entry.Description,
		MerchantRef:      entry.MerchantRef,
		IdempotencyToken: entry.IdempotencyToken,
		CreatedAt:        time.Now(),
	}
	l.entries[entry.IdempotencyToken] = created
	return &created, nil
}

func (l *inMemoryLedger) CreateP2P(ctx context.Context, payerID, payeeID string, amountCents int64, token string, meta ports.P2PMetadata) ([]ports.LedgerEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.reachable {
		return nil, apperror.ErrNetworkUnavailable(errors.New("ledger unreachable"))
	}

	halves := []struct {
		token        string
		userID       string
		counterparty string
		direction    domain.EntryDirection
	}{
		{token + "/debit", payerID, payeeID, domain.EntryDebit},
		{token + "/credit", payeeID, payerID, domain.EntryCredit},
	}

	result := make([]ports.LedgerEntry, 0, len(halves))
	for _, h := range halves {
		l.submits[h.token]++
		if existing, ok := l.entries[h.token]; ok {
			result = append(result, existing)
			continue
		}
		created := ports.LedgerEntry{
			ID:               uuid.NewString(),
			UserID:           h.userID,
			CounterpartyID:   h.counterparty,
			AmountCents:      amountCents,
			Currency:         meta.Currency,
			Direction:        h.direction,
			Description:      meta.Description,
			MerchantRef:      meta.MerchantRef,
			IdempotencyToken: h.token,
			CreatedAt:        time.Now(),
		}
		l.entries[h.token] = created
		result = append(result, created)
	}
	return result, nil
}

func (l *inMemoryLedger) entriesFor(userID string) []ports.LedgerEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var result []ports.LedgerEntry
	for _, e := range l.entries {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result
}

func (l *inMemoryLedger) entryCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *inMemoryLedger) submitCounts() map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()
	counts := make(map[string]int, len(l.submits))
	for token, n := range l.submits {
		counts[token] = n
	}
	return counts
}
