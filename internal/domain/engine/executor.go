package engine

import "context"

// RuleExecutor evaluates one JsonLogic expression against rule data.
type RuleExecutor interface {
	Execute(ctx context.Context, logic map[string]any, data map[string]any) (any, error)
}
