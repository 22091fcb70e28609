package service

import (
	"context"
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

type sessionFixture struct {
	svc        ports.SessionService
	settlement *mocks.MockSettlementService
	balances   *mocks.MockBalanceCache
}

// newSessionFixture builds a session service with real codec and crypto
// and mocked collaborators, so scans go through genuine envelopes.
func newSessionFixture(t *testing.T, userID string) *sessionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &sessionFixture{
		settlement: mocks.NewMockSettlementService(ctrl),
		balances:   mocks.NewMockBalanceCache(ctrl),
	}
	f.svc = NewSessionService(
		SessionConfig{
			UserID:            userID,
			Currency:          "MYR",
			PaymentExpiry:     10 * time.Minute,
			OfflineLimitCents: 10000,
		},
		NewZlibEnvelopeCodec(0),
		NewECDSATransportCrypto(),
		f.settlement,
		f.balances,
		testLogger(),
	)
	return f
}

func balanceOf(cents int64) *int64 { return &cents }

func TestSessionService_CreatePayment(t *testing.T) {
	f := newSessionFixture(t, "seller-1")

	session, err := f.svc.CreatePayment(context.Background(), 2550, "Lunch")
	require.NoError(t, err)

	assert.Equal(t, domain.SessionDisplayed, session.State)
	assert.Equal(t, int64(2550), session.Payload.AmountCents)
	assert.Equal(t, "seller-1", session.Payload.PayeeID)
	assert.NotEmpty(t, session.QR)

	// The QR must decode back to a well-formed PAYMENT envelope.
	envelope, err := NewZlibEnvelopeCodec(0).Decode(session.QR)
	require.NoError(t, err)
	assert.Equal(t, domain.EnvelopeKindPayment, envelope.Kind)
	assert.Equal(t, "seller-1", envelope.SenderID)

	got, err := f.svc.GetSession(context.Background(), session.ID.String())
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSessionService_CreatePayment_RejectsBadAmount(t *testing.T) {
	f := newSessionFixture(t, "seller-1")

	_, err := f.svc.CreatePayment(context.Background(), 0, "")
	assert.True(t, apperror.HasCode(err, "PAY_004"))
	_, err = f.svc.CreatePayment(context.Background(), -500, "")
	assert.True(t, apperror.HasCode(err, "PAY_004"))
}

func TestSessionService_GetSession_Unknown(t *testing.T) {
	f := newSessionFixture(t, "seller-1")

	_, err := f.svc.GetSession(context.Background(), "b2c7c9d2-1111-4222-8333-444455556666")
	assert.True(t, apperror.HasCode(err, "PAY_006"))
	_, err = f.svc.GetSession(context.Background(), "not-a-uuid")
	assert.True(t, apperror.HasCode(err, "PAY_006"))
}

func TestSessionService_FullExchange(t *testing.T) {
	ctx := context.Background()
	seller := newSessionFixture(t, "seller-1")
	buyer := newSessionFixture(t, "buyer-1")

	session, err := seller.svc.CreatePayment(ctx, 2550, "Lunch")
	require.NoError(t, err)

	// Buyer scans the PAYMENT: affordable, under the ceiling.
	buyer.balances.EXPECT().Balance(gomock.Any()).Return(balanceOf(10000), nil)
	buyer.balances.EXPECT().SetBalance(gomock.Any(), int64(7450)).Return(nil)

	scan, err := buyer.svc.Scan(ctx, session.QR)
	require.NoError(t, err)
	assert.Equal(t, domain.EnvelopeKindPayment, scan.Kind)
	assert.NotEmpty(t, scan.AckQR)
	assert.Equal(t, "buyer-1", scan.Payload.PayerID)
	assert.Equal(t, "seller-1", scan.Payload.PayeeID)

	// Seller scans the ACK: settlement runs exactly once with the token
	// derived from the payment itself.
	wantToken := IdempotencyToken("buyer-1", "seller-1", 2550, session.Payload.Timestamp)
	seller.settlement.EXPECT().
		Settle(gomock.Any(), "buyer-1", "seller-1", int64(2550), wantToken, ports.P2PMetadata{Currency: "MYR", Description: "Lunch"}).
		Return(&ports.SettlementResult{Settled: true}, nil).
		Times(1)

	ack, err := seller.svc.Scan(ctx, scan.AckQR)
	require.NoError(t, err)
	assert.Equal(t, domain.EnvelopeKindAck, ack.Kind)
	assert.True(t, ack.Settled)
	assert.False(t, ack.Queued)

	settled, err := seller.svc.GetSession(ctx, session.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.SessionSettled, settled.State)
	assert.NotNil(t, settled.SettledAt)

	// Replaying the same ACK finds no open session: the settled one is
	// terminal and out of reach.
	_, err = seller.svc.Scan(ctx, scan.AckQR)
	assert.True(t, apperror.HasCode(err, "PAY_006"))
}

func TestSessionService_OfflineExchangeQueues(t *testing.T) {
	ctx := context.Background()
	seller := newSessionFixture(t, "seller-1")
	buyer := newSessionFixture(t, "buyer-1")

	session, err := seller.svc.CreatePayment(ctx, 2550, "Lunch")
	require.NoError(t, err)

	buyer.balances.EXPECT().Balance(gomock.Any()).Return(balanceOf(10000), nil)
	buyer.balances.EXPECT().SetBalance(gomock.Any(), int64(7450)).Return(nil)

	scan, err := buyer.svc.Scan(ctx, session.QR)
	require.NoError(t, err)

	seller.settlement.EXPECT().
		Settle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ports.SettlementResult{Queued: true}, nil)

	ack, err := seller.svc.Scan(ctx, scan.AckQR)
	require.NoError(t, err)
	assert.False(t, ack.Settled)
	assert.True(t, ack.Queued)

	settled, err := seller.svc.GetSession(ctx, session.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.SessionSettled, settled.State, "a queued settlement still closes the session")
}

func TestSessionService_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	seller := newSessionFixture(t, "seller-1")
	buyer := newSessionFixture(t, "buyer-1")

	session, err := seller.svc.CreatePayment(ctx, 15000, "Dinner")
	require.NoError(t, err)

	buyer.balances.EXPECT().Balance(gomock.Any()).Return(balanceOf(10000), nil)

	_, err = buyer.svc.Scan(ctx, session.QR)
	assert.True(t, apperror.HasCode(err, "PAY_002"))
}

func TestSessionService_SpendCeilingExceeded(t *testing.T) {
	ctx := context.Background()
	seller := newSessionFixture(t, "seller-1")
	buyer := newSessionFixture(t, "buyer-1")

	// 150.00 is over the 100.00 ceiling even with ample balance. The
	// ceiling binds whether or not the device is online.
	session, err := seller.svc.CreatePayment(ctx, 15000, "Dinner")
	require.NoError(t, err)

	buyer.balances.EXPECT().Balance(gomock.Any()).Return(balanceOf(50000), nil)
	_, err = buyer.svc.Scan(ctx, session.QR)
	assert.True(t, apperror.HasCode(err, "PAY_003"))

	// With no cached balance the ceiling is the only guard and still holds.
	buyer.balances.EXPECT().Balance(gomock.Any()).Return(nil, nil)
	_, err = buyer.svc.Scan(ctx, session.QR)
	assert.True(t, apperror.HasCode(err, "PAY_003"))
}

func TestSessionService_ExpiredPaymentRejected(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	// A seller whose payments expire immediately.
	seller := &sessionFixture{
		settlement: mocks.NewMockSettlementService(ctrl),
		balances:   mocks.NewMockBalanceCache(ctrl),
	}
	seller.svc = NewSessionService(
		SessionConfig{UserID: "seller-1", Currency: "MYR", PaymentExpiry: -time.Second, OfflineLimitCents: 10000},
		NewZlibEnvelopeCodec(0), NewECDSATransportCrypto(),
		seller.settlement, seller.balances, testLogger(),
	)
	buyer := newSessionFixture(t, "buyer-1")

	session, err := seller.svc.CreatePayment(ctx, 2550, "Lunch")
	require.NoError(t, err)

	_, err = buyer.svc.Scan(ctx, session.QR)
	assert.True(t, apperror.HasCode(err, "PAY_001"))
}

func TestSessionService_AckForUnknownSession(t *testing.T) {
	ctx := context.Background()
	seller := newSessionFixture(t, "seller-1")
	buyer := newSessionFixture(t, "buyer-1")
	stranger := newSessionFixture(t, "seller-2")

	session, err := seller.svc.CreatePayment(ctx, 2550, "Lunch")
	require.NoError(t, err)

	buyer.balances.EXPECT().Balance(gomock.Any()).Return(balanceOf(10000), nil)
	buyer.balances.EXPECT().SetBalance(gomock.Any(), gomock.Any()).Return(nil)

	scan, err := buyer.svc.Scan(ctx, session.QR)
	require.NoError(t, err)

	// Another device scanning the ACK holds no matching session.
	_, err = stranger.svc.Scan(ctx, scan.AckQR)
	assert.True(t, apperror.HasCode(err, "PAY_006"))
}

func TestSessionService_AckPayerTakenFromSender(t *testing.T) {
	ctx := context.Background()
	seller := newSessionFixture(t, "seller-1")

	session, err := seller.svc.CreatePayment(ctx, 2550, "Lunch")
	require.NoError(t, err)

	// Hand-build an ACK whose payload claims a different payer than the
	// envelope sender. Settlement must bill the sender.
	crypto := NewECDSATransportCrypto()
	keys, err := crypto.GenerateKeys()
	require.NoError(t, err)
	ack := domain.NewAckPayload(session.Payload, "impostor-1")
	envelope, err := crypto.EncryptAndSign(ack, domain.EnvelopeKindAck, "buyer-1", keys)
	require.NoError(t, err)
	qr, err := NewZlibEnvelopeCodec(0).Encode(envelope)
	require.NoError(t, err)

	wantToken := IdempotencyToken("buyer-1", "seller-1", 2550, session.Payload.Timestamp)
	seller.settlement.EXPECT().
		Settle(gomock.Any(), "buyer-1", "seller-1", int64(2550), wantToken, gomock.Any()).
		Return(&ports.SettlementResult{Settled: true}, nil)

	outcome, err := seller.svc.Scan(ctx, qr)
	require.NoError(t, err)
	assert.Equal(t, "buyer-1", outcome.Payload.PayerID)
}

func TestSessionService_RemoteRejectionClosesSession(t *testing.T) {
	ctx := context.Background()
	seller := newSessionFixture(t, "seller-1")
	buyer := newSessionFixture(t, "buyer-1")

	session, err := seller.svc.CreatePayment(ctx, 2550, "Lunch")
	require.NoError(t, err)

	buyer.balances.EXPECT().Balance(gomock.Any()).Return(nil, nil)

	scan, err := buyer.svc.Scan(ctx, session.QR)
	require.NoError(t, err)

	seller.settlement.EXPECT().
		Settle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrRemoteRejected(assert.AnError))

	_, err = seller.svc.Scan(ctx, scan.AckQR)
	assert.True(t, apperror.HasCode(err, "PAY_005"))

	rejected, err := seller.svc.GetSession(ctx, session.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.SessionRejected, rejected.State)
}

func TestSessionService_ScanGarbage(t *testing.T) {
	f := newSessionFixture(t, "seller-1")

	_, err := f.svc.Scan(context.Background(), "definitely not a qr payload")
	assert.True(t, apperror.HasCode(err, "ENV_001"))
}

func TestSessionService_ExpireSessions(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	svc := NewSessionService(
		SessionConfig{UserID: "seller-1", Currency: "MYR", PaymentExpiry: -time.Second, OfflineLimitCents: 10000},
		NewZlibEnvelopeCodec(0), NewECDSATransportCrypto(),
		mocks.NewMockSettlementService(ctrl), mocks.NewMockBalanceCache(ctrl),
		testLogger(),
	)

	session, err := svc.CreatePayment(ctx, 2550, "Lunch")
	require.NoError(t, err)

	assert.Equal(t, 1, svc.ExpireSessions(ctx))
	assert.Equal(t, 0, svc.ExpireSessions(ctx), "already expired sessions are not recounted")

	got, err := svc.GetSession(ctx, session.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.SessionExpired, got.State)
}
