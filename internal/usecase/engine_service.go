package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
	"github.com/Victor-armando18/checkout-functions/internal/domain/engine"
	"github.com/Victor-armando18/checkout-functions/internal/interfaces"
)

// EngineService holds the collaborators shared by the decision functions.
type EngineService struct {
	loader   interfaces.RulePackLoader
	executor interfaces.RuleExecutor
	configs  interfaces.ConfigurationLoader
}

func NewEngineService(loader interfaces.RulePackLoader, executor interfaces.RuleExecutor, configs interfaces.ConfigurationLoader) *EngineService {
	return &EngineService{loader: loader, executor: executor, configs: configs}
}

// Delivery returns the delivery customization function.
func (e *EngineService) Delivery() *DeliveryCustomization {
	return &DeliveryCustomization{svc: e}
}

// Payment returns the payment customization function.
func (e *EngineService) Payment() *PaymentCustomization {
	return &PaymentCustomization{svc: e}
}

// Functions returns every function this service can run.
func (e *EngineService) Functions() []interfaces.Function {
	return []interfaces.Function{e.Delivery(), e.Payment()}
}

// engineFor loads the rule pack of target. The pack is reloaded per
// invocation; nothing is kept between runs.
func (e *EngineService) engineFor(ctx context.Context, target domain.Target) (*engine.Engine, error) {
	pack, err := e.loader.Load(ctx, target.Function())
	if err != nil {
		return nil, err
	}
	return &engine.Engine{Pack: pack, Executor: e.executor}, nil
}

func decodeInput(input []byte, v any) error {
	if err := json.Unmarshal(input, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}
	return nil
}
