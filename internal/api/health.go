package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (dataset loaded, source database reachable when one is used).
type HealthHandler struct {
	checks []func() error
}

// NewHealthHandler constructs a HealthHandler. Every non-nil check must
// succeed for /readyz to report ready.
func NewHealthHandler(checks ...func() error) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Readiness probe
	// @Summary      Readiness probe
	// @Description  Returns ready once the dataset is loaded and its source is reachable
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		for _, check := range h.checks {
			if check == nil {
				continue
			}
			if err := check(); err != nil {
				c.JSON(503, gin.H{"status": "degraded", "reason": err.Error()})
				return
			}
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
