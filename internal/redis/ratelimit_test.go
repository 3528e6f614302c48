package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLimitResultAllowed(t *testing.T) {
	res, err := parseLimitResult([]interface{}{int64(1), int64(19), int64(60)}, 20)
	require.NoError(t, err)

	assert.True(t, res.Allowed)
	assert.Equal(t, 19, res.Remaining)
	assert.Equal(t, 60*time.Second, res.ResetIn)
	assert.Equal(t, 20, res.Limit)
}

func TestParseLimitResultDenied(t *testing.T) {
	res, err := parseLimitResult([]interface{}{int64(0), int64(0), int64(12)}, 20)
	require.NoError(t, err)

	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, 12*time.Second, res.ResetIn)
}

func TestParseLimitResultMalformed(t *testing.T) {
	_, err := parseLimitResult("nope", 20)
	assert.Error(t, err)

	_, err = parseLimitResult([]interface{}{int64(1)}, 20)
	assert.Error(t, err)

	_, err = parseLimitResult([]interface{}{"1", int64(1), int64(1)}, 20)
	assert.Error(t, err)
}

func TestDefaultRateLimitConfig(t *testing.T) {
	cfg := DefaultRateLimitConfig()
	assert.Equal(t, 20, cfg.RegisterLimit)
	assert.Equal(t, time.Minute, cfg.RegisterWindow)
}
