package handler

import (
	"net/http"

	"treasury-engine/internal/adapter/http/dto"
	"treasury-engine/internal/core/ports"
	"treasury-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReconcileHandler triggers reconciliation runs. The engine does not
// self-schedule; an external scheduler calls this endpoint.
type ReconcileHandler struct {
	reconciler ports.ReconcilerService
}

// NewReconcileHandler creates a new ReconcileHandler.
func NewReconcileHandler(reconciler ports.ReconcilerService) *ReconcileHandler {
	return &ReconcileHandler{reconciler: reconciler}
}

// TriggerRun handles POST /api/v1/reconcile. The run executes
// synchronously; the scheduler's request timeout bounds it.
func (h *ReconcileHandler) TriggerRun(c *gin.Context) {
	report, err := h.reconciler.Run(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewReconcileResponse(report))
}

// HealthCheck handles GET /health, verifying every dependency.
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
