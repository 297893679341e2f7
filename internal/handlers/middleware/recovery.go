package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/handlers/dto"
)

// Recovery transforma panics em 500 no formato RFC 7807.
// Em desenvolvimento o valor do panic vai no detail.
func Recovery(logger ports.Logger, reporter ports.ErrorReporter, development bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", recovered)
		}

		logger.Error("panic recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		reporter.CaptureError(err, map[string]string{
			"method": c.Request.Method,
			"route":  c.FullPath(),
			"source": "panic",
		})

		detail := ""
		if development {
			detail = err.Error()
		}
		dto.Abort(c, dto.InternalErrorResponseI18n(c, detail))
	})
}

// RequestLogger registra cada requisição no logger estruturado
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"client_ip", c.ClientIP(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}
