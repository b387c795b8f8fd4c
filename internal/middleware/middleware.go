package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizza-manager/internal/gateway"
)

// RequestIDKey is the gin context key holding the correlation id of a request
const RequestIDKey = "requestID"

// RequestID tags every request with a correlation id.
// An incoming X-Request-ID header is reused, otherwise a uuid is generated.
// The id is echoed in the response and travels with calls to the pizza backend.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(gateway.RequestIDHeader)
		if id == "" {
			id = gateway.RequestIDFrom(c.Request.Context())
		}

		c.Set(RequestIDKey, id)
		c.Header(gateway.RequestIDHeader, id)
		c.Request = c.Request.WithContext(gateway.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}

// AccessLog writes one structured entry per request once the handler chain finished
func AccessLog(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"client_ip":  c.ClientIP(),
			"request_id": c.GetString(RequestIDKey),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("Request failed")
		case status >= 400:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request handled")
		}
	}
}
