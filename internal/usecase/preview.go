package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
	"github.com/Victor-armando18/checkout-functions/internal/domain/model"
	"github.com/Victor-armando18/checkout-functions/internal/infrastructure/diff"
	"github.com/Victor-armando18/checkout-functions/internal/logging"
)

// Preview is a function result together with the checkout it produces.
type Preview struct {
	Result *domain.FunctionResult `json:"result"`
	// Customized is the snapshot after the operations are applied.
	Customized any `json:"customized"`
	// Delta is the merge patch from the original to the customized snapshot.
	Delta json.RawMessage `json:"delta"`
}

// PreviewService runs a function and applies its operations to the input.
type PreviewService struct {
	svc    *EngineService
	differ *diff.Differ
}

func NewPreviewService(svc *EngineService) *PreviewService {
	return &PreviewService{svc: svc, differ: &diff.Differ{}}
}

func (p *PreviewService) Preview(ctx context.Context, target domain.Target, input []byte) (*Preview, error) {
	var (
		result             *domain.FunctionResult
		before, customized any
		err                error
	)

	ctx = logging.NewContext(ctx, logging.WithContext(ctx).With(slog.String("target", string(target))))

	switch target {
	case domain.DeliveryCustomizationTarget:
		var in model.DeliveryCustomizationInput
		if err := decodeInput(input, &in); err != nil {
			return nil, err
		}
		if result, err = p.svc.Delivery().Evaluate(ctx, &in); err != nil {
			return nil, err
		}
		before, customized = in.Cart, applyDeliveryOperations(in.Cart, result.Operations)

	case domain.PaymentCustomizationTarget:
		var in model.PaymentCustomizationInput
		if err := decodeInput(input, &in); err != nil {
			return nil, err
		}
		if result, err = p.svc.Payment().Evaluate(ctx, &in); err != nil {
			return nil, err
		}
		before = paymentView{PaymentMethods: in.PaymentMethods}
		customized = paymentView{PaymentMethods: applyPaymentOperations(in.PaymentMethods, result.Operations)}

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTarget, target)
	}

	delta, err := p.differ.Diff(before, customized)
	if err != nil {
		return nil, err
	}
	return &Preview{Result: result, Customized: customized, Delta: delta}, nil
}

type paymentView struct {
	PaymentMethods []model.PaymentMethod `json:"paymentMethods"`
}

// applyDeliveryOperations returns a copy of cart with renames and moves
// applied to its delivery options. The input cart is not modified.
func applyDeliveryOperations(cart model.Cart, ops []domain.Operation) model.Cart {
	out := cart
	out.DeliveryGroups = make([]model.DeliveryGroup, len(cart.DeliveryGroups))
	for i, g := range cart.DeliveryGroups {
		g.DeliveryOptions = slices.Clone(g.DeliveryOptions)
		out.DeliveryGroups[i] = g
	}

	for _, op := range ops {
		for gi := range out.DeliveryGroups {
			group := &out.DeliveryGroups[gi]
			switch o := op.(type) {
			case domain.RenameOperation:
				for oi := range group.DeliveryOptions {
					if group.DeliveryOptions[oi].Handle == o.DeliveryOptionHandle {
						title := o.Title
						group.DeliveryOptions[oi].Title = &title
					}
				}
			case domain.MoveOperation:
				group.DeliveryOptions = move(group.DeliveryOptions, o.Index, func(opt model.DeliveryOption) bool {
					return opt.Handle == o.Handle
				})
			}
		}
	}
	return out
}

// applyPaymentOperations returns the methods left after hides and moves.
func applyPaymentOperations(methods []model.PaymentMethod, ops []domain.Operation) []model.PaymentMethod {
	out := slices.Clone(methods)
	if out == nil {
		out = []model.PaymentMethod{}
	}
	for _, op := range ops {
		switch o := op.(type) {
		case domain.HideOperation:
			out = slices.DeleteFunc(out, func(m model.PaymentMethod) bool {
				return m.ID == o.PaymentMethodID
			})
		case domain.MoveOperation:
			out = move(out, o.Index, func(m model.PaymentMethod) bool {
				return m.ID == o.Handle
			})
		}
	}
	return out
}

// move relocates the first element matching match to index, clamped to the
// slice bounds.
func move[T any](s []T, index int, match func(T) bool) []T {
	from := slices.IndexFunc(s, match)
	if from < 0 {
		return s
	}
	item := s[from]
	s = slices.Delete(s, from, from+1)
	index = max(0, min(index, len(s)))
	return slices.Insert(s, index, item)
}
