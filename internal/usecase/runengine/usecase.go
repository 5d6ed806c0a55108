package runengine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
	"github.com/Victor-armando18/checkout-functions/internal/interfaces"
	"github.com/Victor-armando18/checkout-functions/internal/logging"
)

// UseCase dispatches a raw input to the function registered for a target.
type UseCase struct {
	functions map[domain.Target]interfaces.Function
}

func New(functions ...interfaces.Function) *UseCase {
	u := &UseCase{functions: make(map[domain.Target]interfaces.Function, len(functions))}
	for _, fn := range functions {
		u.functions[fn.Target()] = fn
	}
	return u
}

// Run executes one invocation. Each run gets its own invocation id in the
// logger carried by ctx and in the returned error.
func (u *UseCase) Run(ctx context.Context, target domain.Target, input []byte) (*domain.FunctionResult, error) {
	fn, ok := u.functions[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTarget, target)
	}

	id := uuid.NewString()
	log := logging.WithContext(ctx).With(
		slog.String("invocation_id", id),
		slog.String("target", string(target)),
	)
	ctx = logging.NewContext(ctx, log)

	start := time.Now()
	result, err := fn.Run(ctx, input)
	if err != nil {
		// Logged once by the caller, which owns the exit status or response.
		return nil, fmt.Errorf("invocation %s: %w", id, err)
	}

	log.Debug("function finished",
		slog.Int("operations", len(result.Operations)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}
