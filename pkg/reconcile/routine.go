package reconcile

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/skillpath/pkg/toast"
)

type Outcome int

const (
	OutcomeApplied Outcome = iota
	OutcomeFailed
	OutcomeStale
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeFailed:
		return "failed"
	default:
		return "stale"
	}
}

type Poster interface {
	PostJSON(ctx context.Context, url string, payload any) ([]byte, error)
}

// ShapeError reports a well-formed response that lacks the expected fields or
// reports an explicit failure. Its message is shown to the user.
type ShapeError struct {
	Message string
}

func (e *ShapeError) Error() string {
	return "unexpected response shape: " + e.Message
}

func Rejected(message string) error {
	return &ShapeError{Message: message}
}

// Extractor pulls the success value out of a raw response body. It returns a
// *ShapeError when the body parses but is not a success, any other error when
// the body cannot be parsed at all.
type Extractor[T any] func(body []byte) (T, error)

// Routine issues one request and reconciles its result into a View.
type Routine[T any] struct {
	Name           string
	URL            string
	Client         Poster
	Extract        Extractor[T]
	FailureMessage string
}

func (r Routine[T]) Run(ctx context.Context, view *View[T], token Token, body any, sink toast.Sink) Outcome {
	start := time.Now()

	outcome := r.run(ctx, view, token, body, sink)

	observe(r.Name, outcome, time.Since(start))

	return outcome
}

// Start runs the routine on its own goroutine. The channel receives exactly one
// outcome and is never closed.
func (r Routine[T]) Start(ctx context.Context, view *View[T], token Token, body any, sink toast.Sink) <-chan Outcome {
	done := make(chan Outcome, 1)

	go func() {
		done <- r.Run(ctx, view, token, body, sink)
	}()

	return done
}

// Await blocks until the started routine reports or ctx ends. A routine still
// in flight when ctx ends is reported as stale.
func Await(ctx context.Context, done <-chan Outcome) Outcome {
	select {
	case outcome := <-done:
		return outcome
	case <-ctx.Done():
		return OutcomeStale
	}
}

func (r Routine[T]) run(ctx context.Context, view *View[T], token Token, body any, sink toast.Sink) Outcome {
	raw, err := r.Client.PostJSON(ctx, r.URL, body)

	if ctx.Err() != nil || !view.IsLive(token) {
		slog.Debug("discarding result for an inactive view", "routine", r.Name)

		return OutcomeStale
	}

	if err != nil {
		return r.fail(view, token, sink, r.FailureMessage, err)
	}

	value, err := r.Extract(raw)
	if err != nil {
		var shape *ShapeError
		if errors.As(err, &shape) {
			return r.fail(view, token, sink, shape.Message, err)
		}

		return r.fail(view, token, sink, r.FailureMessage, err)
	}

	if !view.Apply(token, value) {
		return OutcomeStale
	}

	return OutcomeApplied
}

func (r Routine[T]) fail(view *View[T], token Token, sink toast.Sink, message string, err error) Outcome {
	if !view.Fail(token) {
		return OutcomeStale
	}

	slog.Warn("fetch failed", "routine", r.Name, "url", r.URL, "error", err)

	if sink != nil {
		sink.Notify(toast.Error(message))
	}

	return OutcomeFailed
}
