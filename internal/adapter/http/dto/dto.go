package dto

// CreatePaymentRequest is the request body for opening a payment session.
// Amount is a decimal string ("25.50"); cents are derived server-side to
// keep float arithmetic out of money handling.
type CreatePaymentRequest struct {
	Amount      string `json:"amount" binding:"required,max=20"`
	Description string `json:"description" binding:"max=140"`
}

// SessionResponse is the response body for payment session state.
type SessionResponse struct {
	ID          string  `json:"id"`
	State       string  `json:"state"`
	Amount      string  `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description,omitempty"`
	QR          string  `json:"qr"`
	CreatedAt   string  `json:"created_at"`
	ExpiresAt   string  `json:"expires_at"`
	SettledAt   *string `json:"settled_at,omitempty"`
}

// ScanRequest is the request body for consuming a scanned QR code.
type ScanRequest struct {
	Data string `json:"data" binding:"required"`
}

// ScanResponse is the response body for a scan of either kind.
type ScanResponse struct {
	Kind     string `json:"kind"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	PayerID  string `json:"payer_id,omitempty"`
	PayeeID  string `json:"payee_id"`
	AckQR    string `json:"ack_qr,omitempty"` // present when a PAYMENT was scanned
	Settled  bool   `json:"settled"`
	Queued   bool   `json:"queued"`
}

// PendingEntryResponse is one entry of the offline queue listing.
type PendingEntryResponse struct {
	LocalID        string `json:"local_id"`
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
	Direction      string `json:"direction"`
	CounterpartyID string `json:"counterparty_id,omitempty"`
	Description    string `json:"description,omitempty"`
	SyncAttempts   int    `json:"sync_attempts"`
	CreatedAt      string `json:"created_at"`
}

// QueueResponse is the response body for the offline queue listing.
// Rejected entries were refused by the ledger and wait for the user.
type QueueResponse struct {
	Pending     []PendingEntryResponse `json:"pending"`
	Rejected    []PendingEntryResponse `json:"rejected"`
	Quarantined int                    `json:"quarantined"`
}

// DrainResponse is the response body for a manual queue drain.
type DrainResponse struct {
	Synced      int `json:"synced"`
	Failed      int `json:"failed"`
	Rejected    int `json:"rejected"`
	Quarantined int `json:"quarantined"`
}

// BalanceRequest is the request body for refreshing the cached balance.
type BalanceRequest struct {
	Balance string `json:"balance" binding:"required,max=20"`
}

// BalanceResponse is the response body for the cached balance. Known is
// false until the first refresh.
type BalanceResponse struct {
	Balance string `json:"balance,omitempty"`
	Known   bool   `json:"known"`
}

// ConnectivityRequest is the request body for toggling connectivity.
type ConnectivityRequest struct {
	Online *bool `json:"online" binding:"required"`
}

// ConnectivityResponse reports the effective connectivity status.
type ConnectivityResponse struct {
	Online bool `json:"online"`
}
