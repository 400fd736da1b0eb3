package resilience

import (
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"faqhub/src/core/domain"
)

// BreakerSettings configures a failure-rate circuit breaker.
type BreakerSettings struct {
	// VolumeThreshold is the minimum number of calls in the rolling window
	// before the failure ratio is considered.
	VolumeThreshold uint32

	// FailureRatio opens the breaker once crossed.
	FailureRatio float64

	// OpenInterval is how long the breaker short-circuits before moving to
	// half-open.
	OpenInterval time.Duration

	// TrialSuccesses is the number of consecutive half-open successes needed
	// to close again.
	TrialSuccesses uint32
}

// Breaker wraps gobreaker so short-circuited calls surface as overloaded
// failures from the domain taxonomy.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// NewBreaker creates a named breaker. State changes are logged.
func NewBreaker(name string, s BreakerSettings, log *slog.Logger) *Breaker {
	return &Breaker{
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: s.TrialSuccesses,
			Interval:    s.OpenInterval,
			Timeout:     s.OpenInterval,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				if counts.Requests < s.VolumeThreshold {
					return false
				}
				return float64(counts.TotalFailures)/float64(counts.Requests) >= s.FailureRatio
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
			},
		}),
	}
}

// Do runs fn through the breaker. While the breaker is open, or while the
// half-open trial quota is exhausted, the call is rejected without reaching fn.
func (b *Breaker) Do(fn func() error) error {
	_, err := b.cb.Execute(func() (any, error) {
		return nil, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return domain.NewOverloadedError()
	}
	return err
}

// State exposes the current breaker state for diagnostics.
func (b *Breaker) State() string {
	return b.cb.State().String()
}
