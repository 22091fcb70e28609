package domain

import (
	"time"

	"github.com/google/uuid"

	"qrpay/pkg/apperror"
)

// SessionState is the seller-side lifecycle of a payment exchange.
type SessionState string

const (
	SessionCreated    SessionState = "CREATED"     // payload built, envelope not yet displayed
	SessionDisplayed  SessionState = "DISPLAYED"   // PAYMENT QR rendered, waiting for a scan
	SessionAckPending SessionState = "ACK_PENDING" // buyer produced an ACK, seller has not scanned it
	SessionSettled    SessionState = "SETTLED"     // terminal
	SessionExpired    SessionState = "EXPIRED"     // terminal
	SessionRejected   SessionState = "REJECTED"    // terminal
)

// Terminal reports whether the state admits no further transitions.
func (s SessionState) Terminal() bool {
	return s == SessionSettled || s == SessionExpired || s == SessionRejected
}

// validTransitions encodes the state machine. Expiry is reachable from
// any non-terminal state because the local timer fires independently of
// protocol progress.
var validTransitions = map[SessionState][]SessionState{
	SessionCreated:    {SessionDisplayed, SessionExpired, SessionRejected},
	SessionDisplayed:  {SessionAckPending, SessionSettled, SessionExpired, SessionRejected},
	SessionAckPending: {SessionSettled, SessionExpired, SessionRejected},
}

// PaymentSession is the seller's record of one PAYMENT → ACK exchange.
type PaymentSession struct {
	ID        uuid.UUID           `json:"id"`
	State     SessionState        `json:"state"`
	Payload   *TransactionPayload `json:"payload"`
	QR        string              `json:"qr"` // encoded PAYMENT envelope
	CreatedAt time.Time           `json:"created_at"`
	SettledAt *time.Time          `json:"settled_at,omitempty"`
}

// Transition moves the session to next, rejecting anything the state
// machine does not allow.
func (s *PaymentSession) Transition(next SessionState) error {
	for _, allowed := range validTransitions[s.State] {
		if allowed == next {
			s.State = next
			return nil
		}
	}
	return apperror.ErrInvalidTransition(string(s.State), string(next))
}

// Expired reports whether the session's payload is past its expiry.
func (s *PaymentSession) Expired(now time.Time) bool {
	return s.Payload != nil && s.Payload.Expired(now)
}
