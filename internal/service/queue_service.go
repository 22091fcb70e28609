package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"qrpay/internal/core/domain"
	"qrpay/internal/core/ports"
	"qrpay/pkg/apperror"
)

const (
	pendingQueueKey  = "queue:pending"
	quarantineKey    = "queue:quarantine"
	rejectedQueueKey = "queue:rejected"
)

// OfflineQueue implements ports.TransactionQueue on the device store.
// Entries are sealed by the at-rest signer before storage and verified
// on every read; a record that fails verification moves to the
// quarantine bucket and never reaches the ledger. Entries the ledger
// actively refuses are parked in the rejected bucket, where they wait
// for the user instead of being retried.
//
// Drain semantics are at-most-once per cycle: a dedicated drain lock
// rejects overlapping cycles outright instead of letting two drains
// race over the same records.
type OfflineQueue struct {
	store   ports.DeviceStore
	signer  ports.AtRestSigner
	ledger  ports.LedgerRepository
	network ports.ConnectivityMonitor
	logger  zerolog.Logger

	mu      sync.Mutex // guards read-modify-write on the store
	drainMu sync.Mutex

	subMu       sync.Mutex
	subscribers []func(depth int)
}

// NewOfflineQueue creates the queue.
func NewOfflineQueue(store ports.DeviceStore, signer ports.AtRestSigner, ledger ports.LedgerRepository, network ports.ConnectivityMonitor, logger zerolog.Logger) *OfflineQueue {
	return &OfflineQueue{
		store:   store,
		signer:  signer,
		ledger:  ledger,
		network: network,
		logger:  logger.With().Str("component", "queue").Logger(),
	}
}

// Enqueue seals the entry and appends it to the pending bucket.
func (q *OfflineQueue) Enqueue(ctx context.Context, entry *domain.PendingTransaction) error {
	record, err := q.signer.Seal(ctx, entry)
	if err != nil {
		return err
	}

	q.mu.Lock()
	records, err := q.loadRecords(ctx, pendingQueueKey)
	if err != nil {
		q.mu.Unlock()
		return err
	}
	records = append(records, record)
	if err := q.saveRecords(ctx, pendingQueueKey, records); err != nil {
		q.mu.Unlock()
		return err
	}
	depth := len(records)
	q.mu.Unlock()

	q.logger.Info().
		Str("local_id", entry.LocalID.String()).
		Str("token", entry.IdempotencyToken).
		Int("depth", depth).
		Msg("transaction queued")
	q.notify(depth)
	return nil
}

// Drain pushes every verifiable pending entry to the ledger. A cycle
// already in progress makes this call a no-op. Entries the ledger could
// not be reached for stay queued with an incremented attempt count;
// entries it refused outright are parked, since retrying a rejection
// cannot change the outcome.
func (q *OfflineQueue) Drain(ctx context.Context) (*ports.DrainResult, error) {
	if !q.drainMu.TryLock() {
		return &ports.DrainResult{}, nil
	}
	defer q.drainMu.Unlock()

	q.mu.Lock()
	records, err := q.loadRecords(ctx, pendingQueueKey)
	q.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &ports.DrainResult{}, nil
	}

	result := &ports.DrainResult{}
	remove := make(map[string]bool)
	replace := make(map[string]*domain.SignedRecord)
	var quarantined, rejected []*domain.SignedRecord

	for _, record := range records {
		id := recordIdentity(record)
		entry, err := q.signer.Open(ctx, record)
		if err != nil {
			if !apperror.HasCode(err, "SEC_001") {
				// Key store trouble, not tampering. Leave the record alone.
				result.Failed++
				q.logger.Warn().Err(err).Msg("queued record could not be opened, will retry")
				continue
			}
			result.Quarantined++
			quarantined = append(quarantined, record)
			remove[id] = true
			q.logger.Error().Msg("queued record failed verification, quarantining")
			continue
		}

		entry.SyncAttempts++
		if _, err := q.ledger.CreateEntry(ctx, entry); err != nil {
			if apperror.HasCode(err, "PAY_005") {
				result.Rejected++
				remove[id] = true
				parked := record
				if resealed, sealErr := q.signer.Seal(ctx, entry); sealErr == nil {
					parked = resealed
				}
				rejected = append(rejected, parked)
				q.logger.Error().Err(err).
					Str("local_id", entry.LocalID.String()).
					Str("token", entry.IdempotencyToken).
					Msg("ledger rejected entry, parked for review")
				continue
			}
			result.Failed++
			if resealed, sealErr := q.signer.Seal(ctx, entry); sealErr == nil {
				replace[id] = resealed
			}
			q.logger.Warn().Err(err).
				Str("local_id", entry.LocalID.String()).
				Int("attempts", entry.SyncAttempts).
				Msg("sync failed, entry stays queued")
			continue
		}

		result.Synced++
		remove[id] = true
		q.logger.Info().
			Str("local_id", entry.LocalID.String()).
			Str("token", entry.IdempotencyToken).
			Msg("entry synced to ledger")
	}

	depth, err := q.commitDrain(ctx, remove, replace, quarantined, rejected)
	if err != nil {
		return result, err
	}
	q.notify(depth)
	return result, nil
}

// commitDrain rewrites the pending bucket from the current store state,
// so entries enqueued while the drain ran are preserved.
func (q *OfflineQueue) commitDrain(ctx context.Context, remove map[string]bool, replace map[string]*domain.SignedRecord, quarantined, rejected []*domain.SignedRecord) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	current, err := q.loadRecords(ctx, pendingQueueKey)
	if err != nil {
		return 0, err
	}
	kept := make([]*domain.SignedRecord, 0, len(current))
	for _, record := range current {
		id := recordIdentity(record)
		switch {
		case remove[id]:
		case replace[id] != nil:
			kept = append(kept, replace[id])
		default:
			kept = append(kept, record)
		}
	}
	if err := q.saveRecords(ctx, pendingQueueKey, kept); err != nil {
		return 0, err
	}

	if err := q.appendRecords(ctx, quarantineKey, quarantined); err != nil {
		return len(kept), err
	}
	if err := q.appendRecords(ctx, rejectedQueueKey, rejected); err != nil {
		return len(kept), err
	}
	return len(kept), nil
}

func (q *OfflineQueue) appendRecords(ctx context.Context, key string, records []*domain.SignedRecord) error {
	if len(records) == 0 {
		return nil
	}
	bucket, err := q.loadRecords(ctx, key)
	if err != nil {
		return err
	}
	return q.saveRecords(ctx, key, append(bucket, records...))
}

// Pending lists the verifiable queued entries. Records that fail
// verification are skipped here and quarantined by the next drain.
func (q *OfflineQueue) Pending(ctx context.Context) ([]*domain.PendingTransaction, error) {
	q.mu.Lock()
	records, err := q.loadRecords(ctx, pendingQueueKey)
	q.mu.Unlock()
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.PendingTransaction, 0, len(records))
	for _, record := range records {
		entry, err := q.signer.Open(ctx, record)
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Quarantined lists records held back for failed verification. They are
// kept as raw signed records; the payload is untrusted.
func (q *OfflineQueue) Quarantined(ctx context.Context) ([]*domain.SignedRecord, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.loadRecords(ctx, quarantineKey)
}

// Rejected lists entries the ledger refused. They stay parked until the
// user clears the queue; no drain touches them again.
func (q *OfflineQueue) Rejected(ctx context.Context) ([]*domain.PendingTransaction, error) {
	q.mu.Lock()
	records, err := q.loadRecords(ctx, rejectedQueueKey)
	q.mu.Unlock()
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.PendingTransaction, 0, len(records))
	for _, record := range records {
		entry, err := q.signer.Open(ctx, record)
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Clear drops all three buckets.
func (q *OfflineQueue) Clear(ctx context.Context) error {
	q.mu.Lock()
	for _, key := range []string{pendingQueueKey, quarantineKey, rejectedQueueKey} {
		if err := q.store.Remove(ctx, key); err != nil {
			q.mu.Unlock()
			return apperror.InternalError(fmt.Errorf("clearing %s: %w", key, err))
		}
	}
	q.mu.Unlock()

	q.notify(0)
	return nil
}

// Subscribe registers a depth observer.
func (q *OfflineQueue) Subscribe(fn func(depth int)) {
	q.subMu.Lock()
	defer q.subMu.Unlock()
	q.subscribers = append(q.subscribers, fn)
}

// Run drains on a fixed interval while online, until the context ends.
func (q *OfflineQueue) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !q.network.Online() {
				continue
			}
			if _, err := q.Drain(ctx); err != nil {
				q.logger.Error().Err(err).Msg("drain cycle failed")
			}
		}
	}
}

func (q *OfflineQueue) notify(depth int) {
	q.subMu.Lock()
	subs := make([]func(int), len(q.subscribers))
	copy(subs, q.subscribers)
	q.subMu.Unlock()

	for _, fn := range subs {
		fn(depth)
	}
}

func (q *OfflineQueue) loadRecords(ctx context.Context, key string) ([]*domain.SignedRecord, error) {
	raw, err := q.store.Get(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("loading %s: %w", key, err))
	}
	if raw == nil {
		return nil, nil
	}
	var records []*domain.SignedRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("parsing %s: %w", key, err))
	}
	return records, nil
}

func (q *OfflineQueue) saveRecords(ctx context.Context, key string, records []*domain.SignedRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("encoding %s: %w", key, err))
	}
	if err := q.store.Set(ctx, key, raw); err != nil {
		return apperror.InternalError(fmt.Errorf("saving %s: %w", key, err))
	}
	return nil
}

// recordIdentity keys a record by its exact stored bytes. Payload-based
// identity would trust content we may be about to quarantine.
func recordIdentity(record *domain.SignedRecord) string {
	return string(record.Payload) + "\x00" + string(record.Signature)
}
