package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"qrpay/internal/adapter/http/dto"
	"qrpay/internal/core/domain"
	"qrpay/internal/core/ports"
	"qrpay/pkg/apperror"
	"qrpay/pkg/response"
)

// SessionHandler handles payment session endpoints.
type SessionHandler struct {
	sessionSvc ports.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionSvc ports.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// CreatePayment handles POST /api/v1/payments.
func (h *SessionHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	cents, err := domain.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.sessionSvc.CreatePayment(c.Request.Context(), cents, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toSessionResponse(session))
}

// GetSession handles GET /api/v1/payments/:id.
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.sessionSvc.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toSessionResponse(session))
}

// Scan handles POST /api/v1/scan.
func (h *SessionHandler) Scan(c *gin.Context) {
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	outcome, err := h.sessionSvc.Scan(c.Request.Context(), req.Data)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toScanResponse(outcome))
}

func toSessionResponse(s *domain.PaymentSession) dto.SessionResponse {
	resp := dto.SessionResponse{
		ID:          s.ID.String(),
		State:       string(s.State),
		Amount:      apperror.FormatAmount(s.Payload.AmountCents),
		Currency:    s.Payload.Currency,
		Description: s.Payload.Description,
		QR:          s.QR,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339),
		ExpiresAt:   time.UnixMilli(s.Payload.ExpiresAt).UTC().Format(time.RFC3339),
	}
	if s.SettledAt != nil {
		settled := s.SettledAt.UTC().Format(time.RFC3339)
		resp.SettledAt = &settled
	}
	return resp
}

func toScanResponse(o *ports.ScanOutcome) dto.ScanResponse {
	return dto.ScanResponse{
		Kind:     string(o.Kind),
		Amount:   apperror.FormatAmount(o.Payload.AmountCents),
		Currency: o.Payload.Currency,
		PayerID:  o.Payload.PayerID,
		PayeeID:  o.Payload.PayeeID,
		AckQR:    o.AckQR,
		Settled:  o.Settled,
		Queued:   o.Queued,
	}
}
