// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

package explain

import (
	"context"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/suggestio/internal/logging"
	"github.com/tomtom215/suggestio/internal/metrics"
)

// breakerName identifies the explanation circuit breaker in logs and metrics.
const breakerName = "explainer"

// Breaker wraps an Explainer with a circuit breaker so a degraded language
// model API sheds load quickly instead of stalling every request on its
// timeout. While the breaker is open Explain fails fast and callers fall
// back to Placeholder.
type Breaker struct {
	inner   Explainer
	breaker *gobreaker.CircuitBreaker[map[string]string]
}

// NewBreaker wraps inner with a circuit breaker. The breaker opens when at
// least 10 requests in the rolling interval have a failure ratio of 60% or
// more, and probes with up to 3 requests after the open timeout.
func NewBreaker(inner Explainer) *Breaker {
	settings := gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
		},
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(breakerStateValue(gobreaker.StateClosed))

	return &Breaker{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[map[string]string](settings),
	}
}

// Explain implements Explainer. When the breaker is open it returns
// gobreaker.ErrOpenState without calling the inner explainer.
func (b *Breaker) Explain(ctx context.Context, history, recommended []string) (map[string]string, error) {
	result, err := b.breaker.Execute(func() (map[string]string, error) {
		return b.inner.Explain(ctx, history, recommended)
	})
	if err != nil {
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
		return nil, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
	return result, nil
}

// State returns the current breaker state.
func (b *Breaker) State() gobreaker.State {
	return b.breaker.State()
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
