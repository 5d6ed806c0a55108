package engine

import (
	"context"
	"fmt"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
)

// Engine evaluates the phases of a rule pack.
type Engine struct {
	Pack     *RulePack
	Executor RuleExecutor
}

// FirstHolding returns the first rule of phase that holds for data, or nil.
func (e *Engine) FirstHolding(ctx context.Context, phase PipelinePhase, data map[string]any) (*Rule, error) {
	for _, r := range e.Pack.Phase(phase) {
		ok, err := e.holds(ctx, r, data)
		if err != nil {
			return nil, err
		}
		if ok {
			return &r, nil
		}
	}
	return nil, nil
}

// AllHold reports whether every rule of phase holds for data. A phase with
// no rules holds vacuously.
func (e *Engine) AllHold(ctx context.Context, phase PipelinePhase, data map[string]any) (bool, error) {
	for _, r := range e.Pack.Phase(phase) {
		ok, err := e.holds(ctx, r, data)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (e *Engine) holds(ctx context.Context, r Rule, data map[string]any) (bool, error) {
	out, err := e.Executor.Execute(ctx, r.Logic, data)
	if err != nil {
		return false, fmt.Errorf("rule %q: %w", r.ID, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w: rule %q must return boolean, got %T", domain.ErrRuleExecutionFailed, r.ID, out)
	}
	return b, nil
}
