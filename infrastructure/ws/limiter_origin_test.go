package ws

import (
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	req := require.New(t)
	now := time.Now()
	limiter := newRateLimiter(3, time.Second)
	limiter.lastCheck = now
	limiter.now = func() time.Time { return now }

	// Given a full bucket of 3 tokens
	req.True(limiter.allow())
	req.True(limiter.allow())
	req.True(limiter.allow())
	req.False(limiter.allow())

	// When half of the interval elapsed, one token and a half are back
	now = now.Add(time.Second / 2)
	req.True(limiter.allow())
	req.False(limiter.allow())

	// Then the bucket never exceeds its capacity
	now = now.Add(time.Hour)
	for range 3 {
		req.True(limiter.allow())
	}
	req.False(limiter.allow())
}

func TestRateLimiter_Defaults(t *testing.T) {
	req := require.New(t)
	limiter := newRateLimiter(0, 0)

	req.Equal(float64(1), limiter.capacity)
	req.Equal(float64(1), limiter.rate)
}

func TestOriginPolicy(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	policy := NewOriginPolicy(log, []string{" HTTP://Chat.Local ", "https://app.example.com", "not an origin", ""})

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"Exact match", "http://chat.local", true},
		{"Case insensitive", "https://APP.example.com", true},
		{"Path ignored", "https://app.example.com/login", true},
		{"Other scheme", "https://chat.local", false},
		{"Unknown host", "http://evil.local", false},
		{"Missing origin", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/socket", nil)
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			require.Equal(t, tt.want, policy.Check(r))
		})
	}

	t.Run("should allow everything with a wildcard", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/socket", nil)
		require.True(t, NewOriginPolicy(log, []string{"*"}).Check(r))
	})
}
