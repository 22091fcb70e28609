package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"qrpay/internal/core/domain"
	"qrpay/internal/core/ports"
	"qrpay/pkg/apperror"
)

// LedgerRepo implements ports.LedgerRepository.
//
// Idempotency rests on the unique index over idempotency_token: a
// replayed insert lands on ON CONFLICT DO NOTHING and the follow-up
// select returns the canonical row, so callers cannot tell a replay
// from a first write.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

const insertEntrySQL = `INSERT INTO ledger_entries
	(id, user_id, counterparty_id, amount_cents, currency, direction, description, merchant_ref, idempotency_token, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (idempotency_token) DO NOTHING`

const selectEntrySQL = `SELECT id, user_id, counterparty_id, amount_cents, currency, direction, description, merchant_ref, idempotency_token, created_at
	FROM ledger_entries WHERE idempotency_token = $1`

// CreateEntry inserts a single-sided entry, or returns the existing one
// when its token already settled.
func (r *LedgerRepo) CreateEntry(ctx context.Context, entry *domain.PendingTransaction) (*ports.LedgerEntry, error) {
	_, err := r.pool.Exec(ctx, insertEntrySQL,
		uuid.New(), entry.UserID, entry.CounterpartyID, entry.AmountCents,
		entry.Currency, string(entry.Direction), entry.Description,
		entry.MerchantRef, entry.IdempotencyToken, entry.CreatedAt,
	)
	if err != nil {
		return nil, classify(err, "insert ledger entry")
	}

	out, err := r.entryByToken(ctx, entry.IdempotencyToken)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateP2P writes the debit and credit halves in one transaction. Each
// half carries the group token plus its direction suffix; partial
// application is unreachable because both inserts commit or neither
// does.
func (r *LedgerRepo) CreateP2P(ctx context.Context, payerID, payeeID string, amountCents int64, token string, meta ports.P2PMetadata) ([]ports.LedgerEntry, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, classify(err, "begin settlement")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	now := time.Now()
	halves := []struct {
		userID, counterparty string
		direction            domain.EntryDirection
		token                string
	}{
		{payerID, payeeID, domain.EntryDebit, token + "/debit"},
		{payeeID, payerID, domain.EntryCredit, token + "/credit"},
	}
	for _, half := range halves {
		_, err := tx.Exec(ctx, insertEntrySQL,
			uuid.New(), half.userID, half.counterparty, amountCents,
			meta.Currency, string(half.direction), meta.Description,
			meta.MerchantRef, half.token, now,
		)
		if err != nil {
			return nil, classify(err, "insert settlement half")
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, classify(err, "commit settlement")
	}

	entries := make([]ports.LedgerEntry, 0, len(halves))
	for _, half := range halves {
		entry, err := r.entryByToken(ctx, half.token)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

func (r *LedgerRepo) entryByToken(ctx context.Context, token string) (*ports.LedgerEntry, error) {
	entry := &ports.LedgerEntry{}
	var direction string
	err := r.pool.QueryRow(ctx, selectEntrySQL, token).Scan(
		&entry.ID, &entry.UserID, &entry.CounterpartyID, &entry.AmountCents,
		&entry.Currency, &direction, &entry.Description,
		&entry.MerchantRef, &entry.IdempotencyToken, &entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.InternalError(fmt.Errorf("ledger entry vanished after insert: token %s", token))
		}
		return nil, classify(err, "load ledger entry")
	}
	entry.Direction = domain.EntryDirection(direction)
	return entry, nil
}

// classify separates "the server said no" from "the server never
// answered". Only the latter is a connectivity failure the offline
// queue may retry.
func classify(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperror.ErrRemoteRejected(fmt.Errorf("%s: %w", op, err))
	}
	return apperror.ErrNetworkUnavailable(fmt.Errorf("%s: %w", op, err))
}
