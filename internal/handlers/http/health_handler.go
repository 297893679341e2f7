package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
)

// HealthResponse é o corpo de GET /api/health
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

// HealthHandler responde a liveness; o banco fora do ar não derruba o 200
type HealthHandler struct {
	ping   func(ctx context.Context) error
	logger ports.Logger
	now    func() time.Time
}

func NewHealthHandler(ping func(ctx context.Context) error, logger ports.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, logger: logger, now: time.Now}
}

// Check godoc
// @Summary      Liveness
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	database := "ok"
	if err := h.ping(ctx); err != nil {
		h.logger.Warn("database ping failed", "error", err)
		database = "unavailable"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: h.now().UTC(),
		Database:  database,
	})
}
