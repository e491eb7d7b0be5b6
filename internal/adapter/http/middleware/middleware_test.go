package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(1, 2)

	r := gin.New()
	r.POST("/v1/requests", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusCreated, send("10.0.0.1"))
	assert.Equal(t, http.StatusCreated, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusCreated, send("10.0.0.2"), "buckets are per client")
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(10, 5)
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.limiter("10.0.0.1")
	now = now.Add(2 * time.Hour)
	rl.limiter("10.0.0.2")
	rl.Cleanup()

	assert.NotContains(t, rl.limiters, "10.0.0.1")
	assert.Contains(t, rl.limiters, "10.0.0.2")
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := gin.New()
	r.Use(RequestLogger(&logger), Recovery(&logger))
	r.GET("/v1/requests/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/v1/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/requests/rq-1", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, buf.String(), `"route":"/v1/requests/:id"`)
	assert.Contains(t, buf.String(), `"status":204`)

	buf.Reset()
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "recovered from panic")
}
