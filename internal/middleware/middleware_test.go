package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda-bff/config"
	"agenda-bff/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestMiddleware(cfg config.Config) Middleware {
	return New(log.NewNop(), &cfg)
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		cfg            config.RateLimitConfig
		requests       int
		expectFailures bool
	}{
		{
			name:           "Allow within limit",
			cfg:            config.RateLimitConfig{RequestsPerSecond: 10, Burst: 20, Enabled: true},
			requests:       10,
			expectFailures: false,
		},
		{
			name:           "Block after burst",
			cfg:            config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1, Enabled: true},
			requests:       5,
			expectFailures: true,
		},
		{
			name:           "Disabled",
			cfg:            config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1, Enabled: false},
			requests:       10,
			expectFailures: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := newTestMiddleware(config.Config{RateLimit: tt.cfg})
			r := gin.New()
			r.Use(mw.RateLimit())
			r.GET("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			failed := false
			for i := 0; i < tt.requests; i++ {
				w := httptest.NewRecorder()
				req, _ := http.NewRequest(http.MethodGet, "/test", nil)
				r.ServeHTTP(w, req)

				if w.Code == http.StatusTooManyRequests {
					failed = true
				}
			}

			assert.Equal(t, tt.expectFailures, failed)
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/test", func(c *gin.Context) {
		seen = log.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(w, req)
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mw := newTestMiddleware(config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}}})
	r := gin.New()
	r.Use(mw.CORS())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://evil.example")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Recovery(log.NewNop()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/panic", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":500`)
}
