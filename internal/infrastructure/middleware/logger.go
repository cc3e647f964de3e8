package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/media-ingest/internal/pkg/httputil"
)

// Logger writes one access line per request. Webhook calls carry the batch
// they started so the line can be joined with the orchestrator's logs.
// Health probes are logged at debug.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := accessFields(c, time.Since(start))

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("request", fields...)
		case c.Request.URL.Path == "/health":
			logger.Debug("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

func accessFields(c *gin.Context, latency time.Duration) []zap.Field {
	fields := []zap.Field{
		zap.Int("status", c.Writer.Status()),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Duration("latency", latency),
		zap.String("ip", c.ClientIP()),
		zap.Int64("bytes_in", c.Request.ContentLength),
		zap.Int("bytes_out", c.Writer.Size()),
	}

	if query := c.Request.URL.RawQuery; query != "" {
		fields = append(fields, zap.String("query", query))
	}
	for _, key := range []string{RequestIDKey, httputil.BatchIDKey} {
		if v := c.GetString(key); v != "" {
			fields = append(fields, zap.String(key, v))
		}
	}
	if len(c.Errors) > 0 {
		fields = append(fields, zap.String("errors", c.Errors.String()))
	}
	return fields
}
