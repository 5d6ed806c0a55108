package usecase

import (
	"context"
	"log/slog"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
	"github.com/Victor-armando18/checkout-functions/internal/domain/engine"
	"github.com/Victor-armando18/checkout-functions/internal/domain/model"
	"github.com/Victor-armando18/checkout-functions/internal/logging"
)

// DeliveryCustomization appends the configured message to the title of
// every delivery option shipped to the configured zip.
type DeliveryCustomization struct {
	svc *EngineService
}

type deliveryMatch struct {
	option model.DeliveryOption
	title  string
}

func (d *DeliveryCustomization) Target() domain.Target {
	return domain.DeliveryCustomizationTarget
}

func (d *DeliveryCustomization) Run(ctx context.Context, input []byte) (*domain.FunctionResult, error) {
	var in model.DeliveryCustomizationInput
	if err := decodeInput(input, &in); err != nil {
		return nil, err
	}
	return d.Evaluate(ctx, &in)
}

// Evaluate runs the function on an already decoded input.
func (d *DeliveryCustomization) Evaluate(ctx context.Context, in *model.DeliveryCustomizationInput) (*domain.FunctionResult, error) {
	log := logging.WithContext(ctx)

	var cfg model.DeliveryConfiguration
	ok, err := d.svc.configs.Load(d.Target().Function(), in.DeliveryCustomization.ConfigurationValue(), &cfg)
	if err != nil {
		return nil, err
	}
	if !ok {
		log.Debug("function not configured")
		return domain.NoChanges(), nil
	}

	eng, err := d.svc.engineFor(ctx, d.Target())
	if err != nil {
		return nil, err
	}

	matches, err := d.matchOptions(ctx, eng, cfg, in.Cart)
	if err != nil {
		return nil, err
	}

	log.Debug("delivery options matched", slog.Int("count", len(matches)))
	return &domain.FunctionResult{Operations: renameOperations(matches)}, nil
}

// matchOptions walks groups in snapshot order. Every option of a matching
// group is a match, in the group's option order. An option listed in two
// matching groups is matched twice.
func (d *DeliveryCustomization) matchOptions(ctx context.Context, eng *engine.Engine, cfg model.DeliveryConfiguration, cart model.Cart) ([]deliveryMatch, error) {
	config := cfg.ToMap()

	var matches []deliveryMatch
	for _, group := range cart.DeliveryGroups {
		ok, err := eng.AllHold(ctx, engine.Match, map[string]any{
			"group":  group.ToMap(),
			"config": config,
		})
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		for _, option := range group.DeliveryOptions {
			matches = append(matches, deliveryMatch{
				option: option,
				title:  renamedTitle(option.Title, cfg.Message),
			})
		}
	}
	return matches, nil
}

func renamedTitle(title *string, message string) string {
	if title == nil {
		return message
	}
	return *title + " - " + message
}

func renameOperations(matches []deliveryMatch) []domain.Operation {
	ops := make([]domain.Operation, 0, len(matches))
	for _, m := range matches {
		ops = append(ops, domain.RenameOperation{
			DeliveryOptionHandle: m.option.Handle,
			Title:                m.title,
		})
	}
	return ops
}
