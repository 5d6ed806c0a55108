package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
	"github.com/Victor-armando18/checkout-functions/internal/domain/model"
)

func paymentInput(t *testing.T, total string, cfg any, methods ...model.PaymentMethod) *model.PaymentCustomizationInput {
	t.Helper()

	in := &model.PaymentCustomizationInput{
		Cart:           model.Cart{Cost: model.CartCost{TotalAmount: model.MoneyV2{Amount: total}}},
		PaymentMethods: methods,
	}
	if cfg != nil {
		in.PaymentCustomization = owner(t, cfg)
	}
	return in
}

func TestPaymentCustomization_Evaluate(t *testing.T) {
	t.Parallel()

	methods := []model.PaymentMethod{
		{ID: "gid://1", Name: "Cash on Delivery"},
		{ID: "gid://2", Name: "Card"},
	}

	tests := map[string]struct {
		total string
		cfg   model.PaymentConfiguration
		want  []domain.Operation
	}{
		"below threshold": {
			total: "50.00",
			cfg:   model.PaymentConfiguration{PaymentMethodName: "Cash", CartTotal: 100},
			want:  []domain.Operation{},
		},
		"match hides method": {
			total: "150.00",
			cfg:   model.PaymentConfiguration{PaymentMethodName: "Cash", CartTotal: 100},
			want:  []domain.Operation{domain.HideOperation{PaymentMethodID: "gid://1"}},
		},
		"at threshold is customized": {
			total: "100.00",
			cfg:   model.PaymentConfiguration{PaymentMethodName: "Cash", CartTotal: 100},
			want:  []domain.Operation{domain.HideOperation{PaymentMethodID: "gid://1"}},
		},
		"no match": {
			total: "150.00",
			cfg:   model.PaymentConfiguration{PaymentMethodName: "Bitcoin", CartTotal: 100},
			want:  []domain.Operation{},
		},
		"match is case-sensitive": {
			total: "150.00",
			cfg:   model.PaymentConfiguration{PaymentMethodName: "cash", CartTotal: 100},
			want:  []domain.Operation{},
		},
		"only the first match is hidden": {
			total: "150.00",
			cfg:   model.PaymentConfiguration{PaymentMethodName: "a", CartTotal: 0},
			want:  []domain.Operation{domain.HideOperation{PaymentMethodID: "gid://1"}},
		},
		"fractional threshold": {
			total: "99.99",
			cfg:   model.PaymentConfiguration{PaymentMethodName: "Card", CartTotal: 99.995},
			want:  []domain.Operation{},
		},
	}

	fn := newTestService(t).Payment()
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := fn.Evaluate(context.Background(), paymentInput(t, tc.total, tc.cfg, methods...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Operations)
		})
	}
}

func TestPaymentCustomization_NotConfigured(t *testing.T) {
	t.Parallel()

	fn := newTestService(t).Payment()

	// Total is not looked at when there is nothing to configure.
	got, err := fn.Evaluate(context.Background(), paymentInput(t, "not a number", nil,
		model.PaymentMethod{ID: "gid://1", Name: "Cash"}))
	require.NoError(t, err)
	assert.Empty(t, got.Operations)
}

func TestPaymentCustomization_CaseVariantKeyIgnored(t *testing.T) {
	t.Parallel()

	fn := newTestService(t).Payment()
	in := &model.PaymentCustomizationInput{
		Cart:           model.Cart{Cost: model.CartCost{TotalAmount: model.MoneyV2{Amount: "150"}}},
		PaymentMethods: []model.PaymentMethod{{ID: "gid://1", Name: "Cash on Delivery"}},
		PaymentCustomization: &model.FunctionOwner{Metafield: &model.Metafield{
			Value: `{"paymentMethodName":"Cash","cartTotal":100,"CartTotal":1000}`,
		}},
	}

	got, err := fn.Evaluate(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []domain.Operation{domain.HideOperation{PaymentMethodID: "gid://1"}}, got.Operations)
}

func TestPaymentCustomization_Errors(t *testing.T) {
	t.Parallel()

	fn := newTestService(t).Payment()
	cfg := model.PaymentConfiguration{PaymentMethodName: "Cash", CartTotal: 100}

	_, err := fn.Evaluate(context.Background(), paymentInput(t, "abc", cfg))
	assert.ErrorIs(t, err, domain.ErrUnparsableAmount)

	_, err = fn.Evaluate(context.Background(), paymentInput(t, "", cfg))
	assert.ErrorIs(t, err, domain.ErrUnparsableAmount)

	_, err = fn.Evaluate(context.Background(), paymentInput(t, "150.00", map[string]any{"paymentMethodName": "Cash"}))
	assert.ErrorIs(t, err, domain.ErrConfigurationMalformed)

	_, err = fn.Run(context.Background(), []byte(`not json`))
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}
