package resolver

import (
	"context"
	"errors"
	"time"

	"nexusfile/internal/client"
	"nexusfile/internal/logging"
	"nexusfile/internal/plan"
)

// Resolver turns a natural-language request into a validated plan with a
// single backend call.
type Resolver struct {
	client  client.Client
	timeout time.Duration
}

// New creates a resolver over the given client. A non-positive timeout
// disables the per-request deadline.
func New(c client.Client, timeout time.Duration) *Resolver {
	return &Resolver{client: c, timeout: timeout}
}

// Resolve sends the request to the backend and validates the proposed
// operations against the closed grammar. A response with text but no
// calls produces a plan with commentary and zero operations.
func (r *Resolver) Resolve(ctx context.Context, request string) (*plan.Plan, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	logging.Debug("resolving request", "backend", r.client.Backend(), "request_len", len(request))

	resp, err := r.client.Generate(ctx, SystemInstruction, request, Declarations())
	if err != nil {
		return nil, mapError(err)
	}
	if resp.Empty() {
		return nil, ErrEmptyResponse
	}

	p, err := plan.FromCalls(request, resp.FunctionCalls)
	if err != nil {
		return nil, err
	}
	p.Commentary = resp.Text

	logging.Info("plan resolved", "plan_id", p.ID, "ops", len(p.Ops))
	return p, nil
}

func mapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	if errors.Is(err, context.Canceled) {
		// User cancellation is the caller's clean-interrupt path, not a
		// transport failure.
		return err
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return &RequestFailedError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			Err:        apiErr,
		}
	}

	return &RequestFailedError{Message: err.Error(), Err: err}
}
