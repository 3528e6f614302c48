package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"curling-registry/internal/redis"
	"curling-registry/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	var seen string
	router.GET("/", func(c *gin.Context) {
		seen = logger.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	rec := serve(router, http.MethodGet, "/", nil)

	id := rec.Header().Get(RequestIDHeader)
	assert.Len(t, id, 32)
	assert.Equal(t, id, seen)
}

func TestRequestIDMiddlewareKeepsIncomingID(t *testing.T) {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := serve(router, http.MethodGet, "/", http.Header{RequestIDHeader: {"abc123"}})

	assert.Equal(t, "abc123", rec.Header().Get(RequestIDHeader))
}

func TestCORSAndSecurityHeaders(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware(""), SecurityHeadersMiddleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := serve(router, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "Location")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", rec.Header().Get("X-Frame-Options"))
}

func TestCORSPreflight(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware("https://clubs.example.com"))
	router.POST("/register", func(c *gin.Context) { c.Status(http.StatusCreated) })

	rec := serve(router, http.MethodOptions, "/register", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://clubs.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestErrorHandlerDevelopmentExposesMessage(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler(logger.NewNop(), false))
	router.GET("/", func(c *gin.Context) { _ = c.Error(errors.New("boom")) })

	rec := serve(router, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"boom","message":"boom"}`, rec.Body.String())
}

func TestErrorHandlerProductionHidesMessage(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler(logger.NewNop(), true))
	router.GET("/", func(c *gin.Context) { panic("kaboom") })

	rec := serve(router, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"server error"}}`, rec.Body.String())
}

func TestErrorHandlerLeavesWrittenResponses(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler(logger.NewNop(), false))
	router.GET("/", func(c *gin.Context) {
		_ = c.Error(errors.New("already handled"))
		c.String(http.StatusBadRequest, "bad")
	})

	rec := serve(router, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad", rec.Body.String())
}

func TestLoggingMiddlewarePassesThrough(t *testing.T) {
	for _, production := range []bool{true, false} {
		router := gin.New()
		router.Use(RequestIDMiddleware(), LoggingMiddleware(logger.NewNop(), production))
		router.GET("/user", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

		rec := serve(router, http.MethodGet, "/user", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

type stubLimiter struct {
	result *redis.RateLimitResult
	err    error
	ips    []string
}

func (s *stubLimiter) AllowRegister(_ context.Context, ip string) (*redis.RateLimitResult, error) {
	s.ips = append(s.ips, ip)
	return s.result, s.err
}

func TestRegisterRateLimitAllows(t *testing.T) {
	limiter := &stubLimiter{result: &redis.RateLimitResult{Allowed: true, Remaining: 4, Limit: 5, ResetIn: 30 * time.Second}}
	router := gin.New()
	router.POST("/register", RegisterRateLimitMiddleware(limiter), func(c *gin.Context) { c.Status(http.StatusCreated) })

	rec := serve(router, http.MethodPost, "/register", nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "30", rec.Header().Get("X-RateLimit-Reset"))
	require.Len(t, limiter.ips, 1)
}

func TestRegisterRateLimitRejects(t *testing.T) {
	limiter := &stubLimiter{result: &redis.RateLimitResult{Allowed: false, Limit: 5, ResetIn: 10 * time.Second}}
	router := gin.New()
	router.POST("/register", RegisterRateLimitMiddleware(limiter), func(c *gin.Context) { c.Status(http.StatusCreated) })

	rec := serve(router, http.MethodPost, "/register", nil)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "RATE_LIMITED", body["code"])
	assert.Equal(t, false, body["success"])
}

func TestRegisterRateLimitBackendError(t *testing.T) {
	limiter := &stubLimiter{err: errors.New("redis down")}
	router := gin.New()
	router.POST("/register", RegisterRateLimitMiddleware(limiter), func(c *gin.Context) { c.Status(http.StatusCreated) })

	rec := serve(router, http.MethodPost, "/register", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
