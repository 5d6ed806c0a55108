package interfaces

import (
	"context"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
	"github.com/Victor-armando18/checkout-functions/internal/domain/engine"
)

// RulePackLoader loads the rule pack of a function (embedded, from disk, ...).
type RulePackLoader interface {
	Load(ctx context.Context, function string) (*engine.RulePack, error)
}

// RuleExecutor executes JsonLogic with custom operators.
type RuleExecutor interface {
	engine.RuleExecutor
	RegisterCustomOperator(name string, logic func(args ...any) any)
}

// ConfigurationLoader decodes a raw metafield value into cfg. It reports
// false when raw is nil (function not configured).
type ConfigurationLoader interface {
	Load(function string, raw *string, cfg any) (bool, error)
}

// Function is a single decision function: raw host input in, result out.
type Function interface {
	Target() domain.Target
	Run(ctx context.Context, input []byte) (*domain.FunctionResult, error)
}
