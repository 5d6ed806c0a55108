package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
	"github.com/Victor-armando18/checkout-functions/internal/infrastructure/jsonlogic"
	jl "github.com/diegoholiveira/jsonlogic/v3"
)

var (
	// The jsonlogic operator table is package-global and unguarded for reads,
	// so operators are added before any rule is applied.
	operatorsMu      sync.Mutex
	builtinOperators sync.Once
)

type JsonLogicExecutor struct{}

// NewJsonLogicExecutor returns an executor with the checkout operators
// (contains) registered.
func NewJsonLogicExecutor() *JsonLogicExecutor {
	j := &JsonLogicExecutor{}
	builtinOperators.Do(func() {
		j.RegisterCustomOperator("contains", jsonlogic.Contains)
	})
	return j
}

// RegisterCustomOperator adds an operator usable anywhere in a rule, nested
// or not. Arguments arrive already evaluated against the rule data.
// Registration must not race with Execute.
func (j *JsonLogicExecutor) RegisterCustomOperator(name string, logic func(args ...any) any) {
	operatorsMu.Lock()
	defer operatorsMu.Unlock()

	jl.AddOperator(name, func(values, _ any) any {
		args, ok := values.([]any)
		if !ok {
			args = []any{values}
		}
		return logic(args...)
	})
}

func (j *JsonLogicExecutor) Execute(ctx context.Context, ruleData map[string]any, contextVars map[string]any) (any, error) {
	ruleJSON, err := json.Marshal(ruleData)
	if err != nil {
		return nil, fmt.Errorf("%w: encode rule: %v", domain.ErrRuleExecutionFailed, err)
	}
	dataJSON, err := json.Marshal(contextVars)
	if err != nil {
		return nil, fmt.Errorf("%w: encode data: %v", domain.ErrRuleExecutionFailed, err)
	}

	var resultBuffer bytes.Buffer
	if err := jl.Apply(bytes.NewReader(ruleJSON), bytes.NewReader(dataJSON), &resultBuffer); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRuleExecutionFailed, err)
	}

	resultStr := strings.TrimSpace(resultBuffer.String())
	if resultStr == "" || resultStr == "null" {
		return nil, nil
	}

	var res any
	decoder := json.NewDecoder(strings.NewReader(resultStr))
	decoder.UseNumber()
	if err := decoder.Decode(&res); err != nil {
		return nil, fmt.Errorf("%w: decode result: %v", domain.ErrRuleExecutionFailed, err)
	}

	return finalizeValue(res), nil
}

func finalizeValue(val any) any {
	if n, ok := val.(json.Number); ok {
		if f, err := n.Float64(); err == nil {
			return f
		}
	}
	return val
}
