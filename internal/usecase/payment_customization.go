package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
	"github.com/Victor-armando18/checkout-functions/internal/domain/engine"
	"github.com/Victor-armando18/checkout-functions/internal/domain/model"
	"github.com/Victor-armando18/checkout-functions/internal/logging"
)

// PaymentCustomization hides the first payment method whose name contains
// the configured text, once the cart total reaches the configured threshold.
type PaymentCustomization struct {
	svc *EngineService
}

func (p *PaymentCustomization) Target() domain.Target {
	return domain.PaymentCustomizationTarget
}

func (p *PaymentCustomization) Run(ctx context.Context, input []byte) (*domain.FunctionResult, error) {
	var in model.PaymentCustomizationInput
	if err := decodeInput(input, &in); err != nil {
		return nil, err
	}
	return p.Evaluate(ctx, &in)
}

// Evaluate runs the function on an already decoded input.
func (p *PaymentCustomization) Evaluate(ctx context.Context, in *model.PaymentCustomizationInput) (*domain.FunctionResult, error) {
	log := logging.WithContext(ctx)

	var cfg model.PaymentConfiguration
	ok, err := p.svc.configs.Load(p.Target().Function(), in.PaymentCustomization.ConfigurationValue(), &cfg)
	if err != nil {
		return nil, err
	}
	if !ok {
		log.Debug("function not configured")
		return domain.NoChanges(), nil
	}

	total, err := decimal.NewFromString(in.Cart.Cost.TotalAmount.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: cart total %q: %v", domain.ErrUnparsableAmount, in.Cart.Cost.TotalAmount.Amount, err)
	}

	eng, err := p.svc.engineFor(ctx, p.Target())
	if err != nil {
		return nil, err
	}

	config := cfg.ToMap()

	// Threshold rules run before any payment method is looked at.
	stop, err := eng.FirstHolding(ctx, engine.Threshold, map[string]any{
		"cart":   map[string]any{"total": total.InexactFloat64()},
		"config": config,
	})
	if err != nil {
		return nil, err
	}
	if stop != nil {
		log.Info(stop.Message, slog.String("rule", stop.ID), slog.String("cart_total", total.String()))
		return domain.NoChanges(), nil
	}

	method, err := p.firstMatch(ctx, eng, config, in.PaymentMethods)
	if err != nil {
		return nil, err
	}
	if method == nil {
		log.Debug("no payment method matched")
		return domain.NoChanges(), nil
	}

	return &domain.FunctionResult{Operations: []domain.Operation{
		domain.HideOperation{PaymentMethodID: method.ID},
	}}, nil
}

func (p *PaymentCustomization) firstMatch(ctx context.Context, eng *engine.Engine, config map[string]any, methods []model.PaymentMethod) (*model.PaymentMethod, error) {
	for i := range methods {
		ok, err := eng.AllHold(ctx, engine.Match, map[string]any{
			"paymentMethod": methods[i].ToMap(),
			"config":        config,
		})
		if err != nil {
			return nil, err
		}
		if ok {
			return &methods[i], nil
		}
	}
	return nil, nil
}
