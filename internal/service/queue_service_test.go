package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"qrpay/internal/core/domain"
	"qrpay/internal/core/ports"
	"qrpay/internal/core/ports/mocks"
	"qrpay/pkg/apperror"
)

type queueFixture struct {
	queue  *OfflineQueue
	store  *memStore
	ledger *mocks.MockLedgerRepository
}

func newQueueFixture(t *testing.T) *queueFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := newMemStore()
	ledger := mocks.NewMockLedgerRepository(ctrl)
	signer := NewEd25519AtRestSigner(NewDeviceKeyStore(store))
	network := NewConnectivity(true, testLogger())
	return &queueFixture{
		queue:  NewOfflineQueue(store, signer, ledger, network, testLogger()),
		store:  store,
		ledger: ledger,
	}
}

func TestOfflineQueue_EnqueueAndPending(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	var depths []int
	f.queue.Subscribe(func(depth int) { depths = append(depths, depth) })

	first := testPendingTransaction()
	second := testPendingTransaction()
	require.NoError(t, f.queue.Enqueue(ctx, first))
	require.NoError(t, f.queue.Enqueue(ctx, second))

	pending, err := f.queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, first.LocalID, pending[0].LocalID)
	assert.Equal(t, second.LocalID, pending[1].LocalID)
	assert.Equal(t, []int{1, 2}, depths)
}

func TestOfflineQueue_DrainSyncsEverything(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	require.NoError(t, f.queue.Enqueue(ctx, testPendingTransaction()))
	require.NoError(t, f.queue.Enqueue(ctx, testPendingTransaction()))

	f.ledger.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.PendingTransaction) (*ports.LedgerEntry, error) {
			assert.Equal(t, 1, entry.SyncAttempts)
			return &ports.LedgerEntry{ID: entry.LocalID.String()}, nil
		}).
		Times(2)

	result, err := f.queue.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ports.DrainResult{Synced: 2}, result)

	pending, err := f.queue.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestOfflineQueue_FailedEntriesStayQueued(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	require.NoError(t, f.queue.Enqueue(ctx, testPendingTransaction()))

	f.ledger.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrNetworkUnavailable(assert.AnError)).
		Times(2)

	result, err := f.queue.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ports.DrainResult{Failed: 1}, result)

	pending, err := f.queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 1, pending[0].SyncAttempts)

	// A second failing drain keeps counting attempts.
	_, err = f.queue.Drain(ctx)
	require.NoError(t, err)
	pending, err = f.queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 2, pending[0].SyncAttempts)
}

func TestOfflineQueue_RejectedEntryParked(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	require.NoError(t, f.queue.Enqueue(ctx, testPendingTransaction()))

	// The ledger refuses the entry outright; retrying cannot change that.
	f.ledger.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrRemoteRejected(assert.AnError)).
		Times(1)

	result, err := f.queue.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ports.DrainResult{Rejected: 1}, result)

	pending, err := f.queue.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	rejected, err := f.queue.Rejected(ctx)
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, 1, rejected[0].SyncAttempts)

	// Parked entries are never resubmitted.
	result, err = f.queue.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ports.DrainResult{}, result)
	rejected, err = f.queue.Rejected(ctx)
	require.NoError(t, err)
	assert.Len(t, rejected, 1)
}

func TestOfflineQueue_TamperedRecordQuarantined(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	require.NoError(t, f.queue.Enqueue(ctx, testPendingTransaction()))

	// Corrupt the stored record the way an attacker with storage access
	// would: flip payload bytes underneath the signature.
	raw, err := f.store.Get(ctx, "queue:pending")
	require.NoError(t, err)
	var records []*domain.SignedRecord
	require.NoError(t, json.Unmarshal(raw, &records))
	records[0].Payload[20] ^= 0xff
	raw, err = json.Marshal(records)
	require.NoError(t, err)
	require.NoError(t, f.store.Set(ctx, "queue:pending", raw))

	// No ledger expectation: quarantined entries never reach it.
	result, err := f.queue.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ports.DrainResult{Quarantined: 1}, result)

	pending, err := f.queue.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	quarantined, err := f.queue.Quarantined(ctx)
	require.NoError(t, err)
	assert.Len(t, quarantined, 1)

	// The quarantine bucket is sticky: another drain must not touch it.
	result, err = f.queue.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ports.DrainResult{}, result)
	quarantined, err = f.queue.Quarantined(ctx)
	require.NoError(t, err)
	assert.Len(t, quarantined, 1)
}

func TestOfflineQueue_ConcurrentDrainSubmitsOnce(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, f.queue.Enqueue(ctx, testPendingTransaction()))
	}

	started := make(chan struct{})
	f.ledger.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.PendingTransaction) (*ports.LedgerEntry, error) {
			select {
			case started <- struct{}{}:
			default:
			}
			time.Sleep(20 * time.Millisecond)
			return &ports.LedgerEntry{ID: entry.LocalID.String()}, nil
		}).
		Times(3)

	var wg sync.WaitGroup
	wg.Add(1)
	var slow *ports.DrainResult
	go func() {
		defer wg.Done()
		var err error
		slow, err = f.queue.Drain(ctx)
		assert.NoError(t, err)
	}()

	<-started
	// Overlapping drain must bail out instead of double-submitting.
	fast, err := f.queue.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ports.DrainResult{}, fast)

	wg.Wait()
	assert.Equal(t, &ports.DrainResult{Synced: 3}, slow)
}

func TestOfflineQueue_DrainPreservesConcurrentEnqueue(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	require.NoError(t, f.queue.Enqueue(ctx, testPendingTransaction()))

	late := testPendingTransaction()
	f.ledger.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.PendingTransaction) (*ports.LedgerEntry, error) {
			// Enqueue lands while the drain is mid-flight.
			require.NoError(t, f.queue.Enqueue(ctx, late))
			return &ports.LedgerEntry{ID: entry.LocalID.String()}, nil
		})

	result, err := f.queue.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ports.DrainResult{Synced: 1}, result)

	pending, err := f.queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1, "the entry enqueued during the drain must survive it")
	assert.Equal(t, late.LocalID, pending[0].LocalID)
}

func TestOfflineQueue_Clear(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()

	require.NoError(t, f.queue.Enqueue(ctx, testPendingTransaction()))
	require.NoError(t, f.queue.Enqueue(ctx, testPendingTransaction()))
	f.ledger.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrRemoteRejected(assert.AnError)).
		Times(2)
	_, err := f.queue.Drain(ctx)
	require.NoError(t, err)

	var lastDepth = -1
	f.queue.Subscribe(func(depth int) { lastDepth = depth })

	require.NoError(t, f.queue.Clear(ctx))
	assert.Equal(t, 0, lastDepth)

	pending, err := f.queue.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
	rejected, err := f.queue.Rejected(ctx)
	require.NoError(t, err)
	assert.Empty(t, rejected)
}
