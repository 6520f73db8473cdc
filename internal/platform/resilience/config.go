package resilience

import "time"

// CircuitBreakerConfig tunes a breaker. Zero values fall back to DefaultCircuitBreakerConfig.
type CircuitBreakerConfig struct {
	// Enabled=false builds a breaker that admits every call and never changes state.
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
	// IsCallerError marks errors caused by the request rather than the dependency, such as a
	// uniqueness violation. They neither count as failures nor reset the failure streak.
	IsCallerError func(error) bool
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	if cfg.IsCallerError == nil {
		cfg.IsCallerError = func(error) bool { return false }
	}
	return cfg
}
