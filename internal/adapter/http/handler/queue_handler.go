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

// QueueHandler handles offline queue endpoints.
type QueueHandler struct {
	queue ports.TransactionQueue
}

// NewQueueHandler creates a new QueueHandler.
func NewQueueHandler(queue ports.TransactionQueue) *QueueHandler {
	return &QueueHandler{queue: queue}
}

// List handles GET /api/v1/queue.
func (h *QueueHandler) List(c *gin.Context) {
	pending, err := h.queue.Pending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	rejected, err := h.queue.Rejected(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	quarantined, err := h.queue.Quarantined(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.QueueResponse{
		Pending:     toPendingEntries(pending),
		Rejected:    toPendingEntries(rejected),
		Quarantined: len(quarantined),
	})
}

func toPendingEntries(entries []*domain.PendingTransaction) []dto.PendingEntryResponse {
	out := make([]dto.PendingEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.PendingEntryResponse{
			LocalID:        entry.LocalID.String(),
			Amount:         apperror.FormatAmount(entry.AmountCents),
			Currency:       entry.Currency,
			Direction:      string(entry.Direction),
			CounterpartyID: entry.CounterpartyID,
			Description:    entry.Description,
			SyncAttempts:   entry.SyncAttempts,
			CreatedAt:      entry.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}

// Drain handles POST /api/v1/queue/drain, the manual sync trigger.
func (h *QueueHandler) Drain(c *gin.Context) {
	result, err := h.queue.Drain(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.DrainResponse{
		Synced:      result.Synced,
		Failed:      result.Failed,
		Rejected:    result.Rejected,
		Quarantined: result.Quarantined,
	})
}

// Clear handles POST /api/v1/queue/clear.
func (h *QueueHandler) Clear(c *gin.Context) {
	if err := h.queue.Clear(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"cleared": true})
}
