package httpclient

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerConfig controls when the circuit opens and how long it stays open.
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// Breaker wraps gobreaker so callers stop hammering a failing collaborator.
type Breaker struct {
	cb *gobreaker.CircuitBreaker[*http.Response]
}

func NewBreaker(name string, cfg BreakerConfig, l *slog.Logger) *Breaker {
	maxRequests := cfg.MaxRequests
	if maxRequests == 0 {
		maxRequests = 3
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: maxRequests,
		Interval:    cfg.Interval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &Breaker{cb: gobreaker.NewCircuitBreaker[*http.Response](settings)}
}

// Execute runs fn through the breaker. When the circuit is open, fn is not
// called and gobreaker.ErrOpenState is returned.
func (b *Breaker) Execute(fn func() (*http.Response, error)) (*http.Response, error) {
	return b.cb.Execute(fn)
}
