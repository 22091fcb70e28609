package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/blake2b"

	"qrpay/internal/core/domain"
	"qrpay/internal/core/ports"
	"qrpay/pkg/apperror"
)

// IdempotencyToken derives the settlement token for one logical
// transaction. The inputs pin the token to the payment itself (who, how
// much, when the payment payload was created), so a replayed ACK maps to
// the same token and the ledger's uniqueness guarantee absorbs it.
func IdempotencyToken(payerID, payeeID string, amountCents int64, paymentTimestamp int64) string {
	sum := blake2b.Sum256(fmt.Appendf(nil, "%s|%s|%d|%d", payerID, payeeID, amountCents, paymentTimestamp))
	return hex.EncodeToString(sum[:])
}

type settlementService struct {
	ledger  ports.LedgerRepository
	queue   ports.TransactionQueue
	network ports.ConnectivityMonitor
	logger  zerolog.Logger
}

// NewSettlementService creates the settlement service. It owns the
// online/offline routing decision: atomic remote settlement when the
// network is up, split debit/credit queue entries when it is not.
func NewSettlementService(ledger ports.LedgerRepository, queue ports.TransactionQueue, network ports.ConnectivityMonitor, logger zerolog.Logger) ports.SettlementService {
	return &settlementService{
		ledger:  ledger,
		queue:   queue,
		network: network,
		logger:  logger.With().Str("component", "settlement").Logger(),
	}
}

func (s *settlementService) Settle(ctx context.Context, payerID, payeeID string, amountCents int64, token string, meta ports.P2PMetadata) (*ports.SettlementResult, error) {
	if s.network.Online() {
		entries, err := s.ledger.CreateP2P(ctx, payerID, payeeID, amountCents, token, meta)
		if err == nil {
			s.logger.Info().
				Str("token", token).
				Int64("amount", amountCents).
				Msg("settled atomically")
			return &ports.SettlementResult{Settled: true, Entries: entries}, nil
		}
		if !apperror.HasCode(err, "NET_001") {
			// The ledger answered and said no. That is a protocol outcome,
			// not a connectivity problem, so it must not be retried offline.
			return nil, apperror.ErrRemoteRejected(err)
		}
		s.logger.Warn().Err(err).Str("token", token).Msg("ledger unreachable, queueing settlement")
	}

	if err := s.enqueueSplit(ctx, payerID, payeeID, amountCents, token, meta); err != nil {
		return nil, err
	}
	return &ports.SettlementResult{Queued: true}, nil
}

// enqueueSplit records the two halves of the settlement as independent
// queue entries. They share the token group: each half carries the base
// token plus a direction suffix, so either half can be retried to
// completion without re-running the other.
func (s *settlementService) enqueueSplit(ctx context.Context, payerID, payeeID string, amountCents int64, token string, meta ports.P2PMetadata) error {
	now := time.Now()
	halves := []*domain.PendingTransaction{
		{
			LocalID:          uuid.New(),
			UserID:           payerID,
			CounterpartyID:   payeeID,
			AmountCents:      amountCents,
			Currency:         meta.Currency,
			Direction:        domain.EntryDebit,
			Description:      meta.Description,
			MerchantRef:      meta.MerchantRef,
			IdempotencyToken: token + "/debit",
			CreatedAt:        now,
		},
		{
			LocalID:          uuid.New(),
			UserID:           payeeID,
			CounterpartyID:   payerID,
			AmountCents:      amountCents,
			Currency:         meta.Currency,
			Direction:        domain.EntryCredit,
			Description:      meta.Description,
			MerchantRef:      meta.MerchantRef,
			IdempotencyToken: token + "/credit",
			CreatedAt:        now,
		},
	}

	for _, half := range halves {
		if err := s.queue.Enqueue(ctx, half); err != nil {
			return err
		}
	}
	s.logger.Info().Str("token", token).Int64("amount", amountCents).Msg("settlement queued offline")
	return nil
}
