package resilience

import "time"

// CircuitBreakerConfig tunes a CircuitBreaker. Enabled is read by callers
// that want to bypass the breaker entirely.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

var defaultBreaker = CircuitBreakerConfig{
	Enabled:          true,
	FailureThreshold: 5,
	OpenTimeout:      15 * time.Second,
	HalfOpenMaxReq:   2,
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return defaultBreaker
}

// Normalized replaces non-positive limits with defaults and keeps Enabled.
func (c CircuitBreakerConfig) Normalized() CircuitBreakerConfig {
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaultBreaker.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaultBreaker.OpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = defaultBreaker.HalfOpenMaxReq
	}
	return c
}
