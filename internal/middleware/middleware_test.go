package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscosanchezn/pizza-manager/internal/gateway"
)

func setupRouter(logger *logrus.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), AccessLog(logger))
	router.GET("/echo", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"key":     c.GetString(RequestIDKey),
			"context": gateway.RequestIDFrom(c.Request.Context()),
		})
	})
	router.GET("/broken", func(c *gin.Context) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream"})
	})
	return router
}

func TestRequestIDGeneratedWhenMissing(t *testing.T) {
	router := setupRouter(logrus.New())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/echo", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(gateway.RequestIDHeader)
	assert.Len(t, id, 36)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, id, body["key"])
	assert.Equal(t, id, body["context"])
}

func TestRequestIDReusesIncomingHeader(t *testing.T) {
	router := setupRouter(logrus.New())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set(gateway.RequestIDHeader, "abc-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(gateway.RequestIDHeader))
	assert.Contains(t, w.Body.String(), `"context":"abc-123"`)
}

func TestAccessLogWritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(&buf)

	router := setupRouter(logger)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/broken", nil)
	router.ServeHTTP(w, req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/broken", entry["path"])
	assert.Equal(t, float64(http.StatusBadGateway), entry["status"])
	assert.Equal(t, "error", entry["level"])
	assert.NotEmpty(t, entry["request_id"])
}
