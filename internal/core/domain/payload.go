package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"qrpay/pkg/apperror"
)

// TransactionPayload is the logical payment content carried inside an
// envelope. It is immutable once signed: created at generation time,
// discarded after the envelope it travels in is consumed.
type TransactionPayload struct {
	AmountCents int64  `json:"amount"`   // smallest unit, two-decimal currency
	Currency    string `json:"currency"` // ISO-style code, e.g. MYR
	Description string `json:"description"`
	Timestamp   int64  `json:"timestamp"` // unix ms at creation
	PayerID     string `json:"payer_id,omitempty"`
	PayeeID     string `json:"payee_id,omitempty"`
	MerchantRef string `json:"merchant_ref,omitempty"`
	ExpiresAt   int64  `json:"expires_at"` // unix ms
}

// NewPaymentPayload builds the payload a seller embeds in a PAYMENT
// envelope. Amount validation happens here, at construction time, not at
// verification time.
func NewPaymentPayload(amountCents int64, currency, description, payeeID, merchantRef string, now time.Time, expiry time.Duration) (*TransactionPayload, error) {
	if err := ValidateAmount(amountCents); err != nil {
		return nil, err
	}
	ts := now.UnixMilli()
	return &TransactionPayload{
		AmountCents: amountCents,
		Currency:    currency,
		Description: description,
		PayeeID:     payeeID,
		MerchantRef: merchantRef,
		Timestamp:   ts,
		ExpiresAt:   ts + expiry.Milliseconds(),
	}, nil
}

// NewAckPayload builds the payload a buyer embeds in an ACK envelope.
// Amount and timestamp are re-derived from the decrypted PAYMENT payload,
// never trusted from the buyer's own claim.
func NewAckPayload(payment *TransactionPayload, payerID string) *TransactionPayload {
	return &TransactionPayload{
		AmountCents: payment.AmountCents,
		Currency:    payment.Currency,
		Description: payment.Description,
		PayerID:     payerID,
		PayeeID:     payment.PayeeID,
		MerchantRef: payment.MerchantRef,
		Timestamp:   payment.Timestamp,
		ExpiresAt:   payment.ExpiresAt,
	}
}

// Expired reports whether the payload is past its expires_at.
func (p *TransactionPayload) Expired(now time.Time) bool {
	return now.UnixMilli() > p.ExpiresAt
}

// ValidateAmount rejects non-positive amounts.
func ValidateAmount(cents int64) error {
	if cents <= 0 {
		return apperror.ErrInvalidAmount("must be greater than zero")
	}
	return nil
}

// ParseAmount converts a user-entered decimal string ("25.50") into
// cents. More than two fractional digits is rejected rather than rounded.
func ParseAmount(s string) (int64, error) {
	cents, err := parseCents(s)
	if err != nil {
		return 0, err
	}
	if err := ValidateAmount(cents); err != nil {
		return 0, err
	}
	return cents, nil
}

// ParseBalance is ParseAmount with zero allowed: an empty account is a
// legitimate balance.
func ParseBalance(s string) (int64, error) {
	cents, err := parseCents(s)
	if err != nil {
		return 0, err
	}
	if cents < 0 {
		return 0, apperror.ErrInvalidAmount("must not be negative")
	}
	return cents, nil
}

func parseCents(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, apperror.ErrInvalidAmount("not a decimal number")
	}
	if d.Exponent() < -2 {
		return 0, apperror.ErrInvalidAmount("at most two decimal places")
	}
	return d.Mul(decimal.NewFromInt(100)).IntPart(), nil
}
