package main

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Host       string `env:"HOST,default=localhost"`
	Port       int    `env:"PORT,default=8080"`
	HealthPort int    `env:"HEALTH_PORT,default=8081"`
	LogLevel   string `env:"LOG_LEVEL,default=INFO"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`
	MediaDir       string `env:"MEDIA_DIR,default=uploads"`

	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=168h"`
	OTPDuration       time.Duration `env:"OTP_DURATION,default=5m"`
	RequireSocketAuth bool          `env:"REQUIRE_SOCKET_AUTH,default=false"`

	// Comma separated, "*" allows every origin
	AllowedOrigins          string        `env:"ALLOWED_ORIGINS,default=*"`
	MaxFrameSize            int64         `env:"MAX_FRAME_SIZE,default=65536"`
	RateLimitBurst          int           `env:"RATE_LIMIT_BURST,default=20"`
	RateLimitRefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL,default=100ms"`
	SessionBufferSize       int           `env:"SESSION_BUFFER_SIZE,default=64"`
	DispatcherBufferSize    int           `env:"DISPATCHER_BUFFER_SIZE,default=1024"`
	TypingTimeout           time.Duration `env:"TYPING_TIMEOUT,default=3s"`
	StatusTTL               time.Duration `env:"STATUS_TTL,default=24h"`

	CharReplacement string `env:"CHARACTER_REPLACEMENT,default=*"`
	LimitMessages   *int   `env:"LIMIT_MESSAGES"`
	SearchLimit     int    `env:"SEARCH_LIMIT,default=50"`

	TelemetryInterval time.Duration `env:"TELEMETRY_INTERVAL,default=30s"`
	GCInterval        time.Duration `env:"GC_INTERVAL,default=10m"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=1s"`
}

func (c Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
