package resilience

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// CircuitBreakerConfig tunes the breaker in front of an upstream API. Zero
// or negative fields fall back to DefaultCircuitBreakerConfig.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// Normalized returns cfg with out-of-range fields replaced by defaults.
func (cfg CircuitBreakerConfig) Normalized() CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	cfg.FailureThreshold = positiveOr(cfg.FailureThreshold, defaults.FailureThreshold)
	cfg.HalfOpenMaxReq = positiveOr(cfg.HalfOpenMaxReq, defaults.HalfOpenMaxReq)
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	return cfg
}

// Breaker builds the configured breaker, or nil when it is disabled.
func (cfg CircuitBreakerConfig) Breaker(clock clockwork.Clock) *CircuitBreaker {
	if !cfg.Enabled {
		return nil
	}
	return NewCircuitBreaker(cfg, clock)
}

func positiveOr(v, fallback int) int {
	if v < 1 {
		return fallback
	}
	return v
}
