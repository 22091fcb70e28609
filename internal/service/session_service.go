package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"qrpay/internal/core/domain"
	"qrpay/internal/core/ports"
	"qrpay/pkg/apperror"
)

// SessionConfig carries the protocol parameters of the session service.
type SessionConfig struct {
	UserID            string
	Currency          string
	PaymentExpiry     time.Duration
	OfflineLimitCents int64
}

type sessionService struct {
	cfg        SessionConfig
	codec      ports.EnvelopeCodec
	crypto     ports.TransportCrypto
	settlement ports.SettlementService
	balances   ports.BalanceCache
	logger     zerolog.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.PaymentSession
}

// NewSessionService creates the session service. Sessions are held in
// memory only: they are short-lived by construction (the payload expiry
// bounds their useful life) and a restart simply voids open exchanges.
func NewSessionService(cfg SessionConfig, codec ports.EnvelopeCodec, crypto ports.TransportCrypto, settlement ports.SettlementService, balances ports.BalanceCache, logger zerolog.Logger) ports.SessionService {
	return &sessionService{
		cfg:        cfg,
		codec:      codec,
		crypto:     crypto,
		settlement: settlement,
		balances:   balances,
		logger:     logger.With().Str("component", "session").Logger(),
		sessions:   make(map[uuid.UUID]*domain.PaymentSession),
	}
}

// CreatePayment builds a PAYMENT envelope for this device as payee and
// opens a session waiting for the matching ACK.
func (s *sessionService) CreatePayment(ctx context.Context, amountCents int64, description string) (*domain.PaymentSession, error) {
	now := time.Now()
	payload, err := domain.NewPaymentPayload(amountCents, s.cfg.Currency, description, s.cfg.UserID, "", now, s.cfg.PaymentExpiry)
	if err != nil {
		return nil, err
	}

	keys, err := s.crypto.GenerateKeys()
	if err != nil {
		return nil, err
	}
	envelope, err := s.crypto.EncryptAndSign(payload, domain.EnvelopeKindPayment, s.cfg.UserID, keys)
	if err != nil {
		return nil, err
	}
	qr, err := s.codec.Encode(envelope)
	if err != nil {
		return nil, err
	}

	session := &domain.PaymentSession{
		ID:        uuid.New(),
		State:     domain.SessionCreated,
		Payload:   payload,
		QR:        qr,
		CreatedAt: now,
	}
	if err := session.Transition(domain.SessionDisplayed); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Info().
		Str("session_id", session.ID.String()).
		Int64("amount", amountCents).
		Msg("payment session opened")
	return session, nil
}

func (s *sessionService) GetSession(ctx context.Context, id string) (*domain.PaymentSession, error) {
	sessionID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.ErrSessionNotFound()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, apperror.ErrSessionNotFound()
	}
	return session, nil
}

// Scan consumes a scanned QR of either kind. A PAYMENT makes this device
// the buyer and yields an ACK to display; an ACK makes it the seller and
// triggers settlement.
func (s *sessionService) Scan(ctx context.Context, encoded string) (*ports.ScanOutcome, error) {
	envelope, err := s.codec.Decode(encoded)
	if err != nil {
		return nil, err
	}
	payload, err := s.crypto.VerifyAndDecrypt(envelope)
	if err != nil {
		return nil, err
	}

	switch envelope.Kind {
	case domain.EnvelopeKindPayment:
		return s.acceptPayment(ctx, payload)
	case domain.EnvelopeKindAck:
		return s.acceptAck(ctx, envelope, payload)
	default:
		return nil, apperror.ErrDecode(nil)
	}
}

// acceptPayment is the buyer path: check expiry and affordability, then
// answer with a freshly keyed ACK envelope.
func (s *sessionService) acceptPayment(ctx context.Context, payload *domain.TransactionPayload) (*ports.ScanOutcome, error) {
	if payload.Expired(time.Now()) {
		return nil, apperror.ErrExpired()
	}
	if err := domain.ValidateAmount(payload.AmountCents); err != nil {
		return nil, err
	}

	// Affordability uses the last known balance. When none is cached the
	// check defers to the ledger, which enforces funds at settlement.
	balance, err := s.balances.Balance(ctx)
	if err != nil {
		return nil, err
	}
	if balance != nil && payload.AmountCents > *balance {
		return nil, apperror.ErrInsufficientFunds(payload.AmountCents, *balance)
	}

	// The spending ceiling binds regardless of connectivity: an exchange
	// accepted now may still settle through the offline queue later.
	if payload.AmountCents > s.cfg.OfflineLimitCents {
		return nil, apperror.ErrExceedsOfflineLimit(payload.AmountCents, s.cfg.OfflineLimitCents)
	}

	ack := domain.NewAckPayload(payload, s.cfg.UserID)
	keys, err := s.crypto.GenerateKeys()
	if err != nil {
		return nil, err
	}
	envelope, err := s.crypto.EncryptAndSign(ack, domain.EnvelopeKindAck, s.cfg.UserID, keys)
	if err != nil {
		return nil, err
	}
	qr, err := s.codec.Encode(envelope)
	if err != nil {
		return nil, err
	}

	if balance != nil {
		if err := s.balances.SetBalance(ctx, *balance-payload.AmountCents); err != nil {
			s.logger.Warn().Err(err).Msg("balance cache update failed")
		}
	}

	s.logger.Info().
		Int64("amount", payload.AmountCents).
		Str("payee", payload.PayeeID).
		Msg("payment accepted, ack ready")
	return &ports.ScanOutcome{
		Kind:    domain.EnvelopeKindPayment,
		Payload: ack,
		AckQR:   qr,
	}, nil
}

// acceptAck is the seller path: match the ACK to an open session, then
// settle exactly once via the settlement service.
func (s *sessionService) acceptAck(ctx context.Context, envelope *domain.Envelope, payload *domain.TransactionPayload) (*ports.ScanOutcome, error) {
	// The payer is whoever signed and sent the ACK. The payer field inside
	// the payload is not trusted for identity.
	payload.PayerID = envelope.SenderID

	session, err := s.matchSession(payload)
	if err != nil {
		return nil, err
	}

	if session.Expired(time.Now()) {
		s.mu.Lock()
		_ = session.Transition(domain.SessionExpired)
		s.mu.Unlock()
		return nil, apperror.ErrExpired()
	}

	s.mu.Lock()
	if session.State == domain.SessionDisplayed {
		if err := session.Transition(domain.SessionAckPending); err != nil {
			s.mu.Unlock()
			return nil, err
		}
	}
	s.mu.Unlock()

	token := IdempotencyToken(payload.PayerID, payload.PayeeID, payload.AmountCents, payload.Timestamp)
	result, err := s.settlement.Settle(ctx, payload.PayerID, payload.PayeeID, payload.AmountCents, token, ports.P2PMetadata{
		Currency:    session.Payload.Currency,
		Description: session.Payload.Description,
		MerchantRef: session.Payload.MerchantRef,
	})
	if err != nil {
		if apperror.HasCode(err, "PAY_005") {
			s.mu.Lock()
			_ = session.Transition(domain.SessionRejected)
			s.mu.Unlock()
		}
		return nil, err
	}

	now := time.Now()
	s.mu.Lock()
	if err := session.Transition(domain.SessionSettled); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	session.SettledAt = &now
	s.mu.Unlock()

	s.logger.Info().
		Str("session_id", session.ID.String()).
		Bool("queued", result.Queued).
		Msg("session settled")
	return &ports.ScanOutcome{
		Kind:    domain.EnvelopeKindAck,
		Payload: payload,
		Settled: result.Settled,
		Queued:  result.Queued,
	}, nil
}

// matchSession finds the open session an ACK answers. The ACK carries
// the original payment timestamp and amount, which together identify
// the exchange on this device.
func (s *sessionService) matchSession(payload *domain.TransactionPayload) (*domain.PaymentSession, error) {
	if payload.PayeeID != s.cfg.UserID {
		return nil, apperror.ErrSessionNotFound()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, session := range s.sessions {
		if session.State.Terminal() {
			continue
		}
		if session.Payload.Timestamp == payload.Timestamp && session.Payload.AmountCents == payload.AmountCents {
			return session, nil
		}
	}
	return nil, apperror.ErrSessionNotFound()
}

// ExpireSessions sweeps open sessions past their payload expiry.
func (s *sessionService) ExpireSessions(ctx context.Context) int {
	now := time.Now()
	expired := 0

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, session := range s.sessions {
		if session.State.Terminal() || !session.Expired(now) {
			continue
		}
		if err := session.Transition(domain.SessionExpired); err == nil {
			expired++
		}
	}
	if expired > 0 {
		s.logger.Info().Int("count", expired).Msg("sessions expired")
	}
	return expired
}
