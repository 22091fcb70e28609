package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qrpay/internal/adapter/http/dto"
	"qrpay/internal/core/domain"
	"qrpay/internal/core/ports"
	"qrpay/pkg/apperror"
	"qrpay/pkg/response"
)

// DeviceHandler handles device-local endpoints: cached balance and the
// connectivity toggle.
type DeviceHandler struct {
	balances ports.BalanceCache
	network  ports.ConnectivityMonitor
}

// NewDeviceHandler creates a new DeviceHandler.
func NewDeviceHandler(balances ports.BalanceCache, network ports.ConnectivityMonitor) *DeviceHandler {
	return &DeviceHandler{balances: balances, network: network}
}

// GetBalance handles GET /api/v1/balance.
func (h *DeviceHandler) GetBalance(c *gin.Context) {
	balance, err := h.balances.Balance(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	resp := dto.BalanceResponse{Known: balance != nil}
	if balance != nil {
		resp.Balance = apperror.FormatAmount(*balance)
	}
	response.OK(c, resp)
}

// UpdateBalance handles PUT /api/v1/balance, refreshing the device's
// working copy from an authoritative source.
func (h *DeviceHandler) UpdateBalance(c *gin.Context) {
	var req dto.BalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	cents, err := domain.ParseBalance(req.Balance)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.balances.SetBalance(c.Request.Context(), cents); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{Balance: apperror.FormatAmount(cents), Known: true})
}

// SetConnectivity handles POST /api/v1/connectivity.
func (h *DeviceHandler) SetConnectivity(c *gin.Context) {
	var req dto.ConnectivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	h.network.SetOnline(*req.Online)
	response.OK(c, dto.ConnectivityResponse{Online: h.network.Online()})
}

// GetConnectivity handles GET /api/v1/connectivity.
func (h *DeviceHandler) GetConnectivity(c *gin.Context) {
	response.OK(c, dto.ConnectivityResponse{Online: h.network.Online()})
}

// HealthCheck handles GET /health with a deep check of every dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
