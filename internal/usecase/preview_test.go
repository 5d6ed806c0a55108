package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
	"github.com/Victor-armando18/checkout-functions/internal/domain/model"
)

func TestPreviewService_Delivery(t *testing.T) {
	t.Parallel()

	p := NewPreviewService(newTestService(t))
	in := model.DeliveryCustomizationInput{
		Cart: model.Cart{DeliveryGroups: []model.DeliveryGroup{{
			DeliveryAddress: &model.MailingAddress{Zip: ptr("90210")},
			DeliveryOptions: []model.DeliveryOption{{Handle: "A", Title: ptr("Standard")}, {Handle: "B"}},
		}}},
		DeliveryCustomization: owner(t, model.DeliveryConfiguration{Zip: "90210", Message: "Remote"}),
	}

	got, err := p.Preview(context.Background(), domain.DeliveryCustomizationTarget, mustJSON(t, in))
	require.NoError(t, err)
	require.Len(t, got.Result.Operations, 2)

	cart, ok := got.Customized.(model.Cart)
	require.True(t, ok)
	options := cart.DeliveryGroups[0].DeliveryOptions
	assert.Equal(t, "Standard - Remote", *options[0].Title)
	assert.Equal(t, "Remote", *options[1].Title)

	assert.JSONEq(t, `{"deliveryGroups":[{
		"deliveryAddress":{"zip":"90210"},
		"deliveryOptions":[{"handle":"A","title":"Standard - Remote"},{"handle":"B","title":"Remote"}]
	}]}`, string(got.Delta))
}

func TestPreviewService_Payment(t *testing.T) {
	t.Parallel()

	p := NewPreviewService(newTestService(t))
	cfg := model.PaymentConfiguration{PaymentMethodName: "Cash", CartTotal: 100}
	methods := []model.PaymentMethod{
		{ID: "gid://1", Name: "Cash on Delivery"},
		{ID: "gid://2", Name: "Card"},
	}

	got, err := p.Preview(context.Background(), domain.PaymentCustomizationTarget, mustJSON(t, paymentInput(t, "150.00", cfg, methods...)))
	require.NoError(t, err)
	assert.Equal(t, []domain.Operation{domain.HideOperation{PaymentMethodID: "gid://1"}}, got.Result.Operations)
	assert.Equal(t, paymentView{PaymentMethods: methods[1:]}, got.Customized)
	assert.JSONEq(t, `{"paymentMethods":[{"id":"gid://2","name":"Card"}]}`, string(got.Delta))

	got, err = p.Preview(context.Background(), domain.PaymentCustomizationTarget, mustJSON(t, paymentInput(t, "50.00", cfg, methods...)))
	require.NoError(t, err)
	assert.Empty(t, got.Result.Operations)
	assert.JSONEq(t, `{}`, string(got.Delta))
}

func TestPreviewService_Errors(t *testing.T) {
	t.Parallel()

	p := NewPreviewService(newTestService(t))

	_, err := p.Preview(context.Background(), domain.Target("purchase.cart-transform.run"), []byte(`{}`))
	assert.ErrorIs(t, err, domain.ErrUnknownTarget)

	_, err = p.Preview(context.Background(), domain.DeliveryCustomizationTarget, []byte(`[`))
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestApplyPaymentOperations_Move(t *testing.T) {
	t.Parallel()

	methods := paymentMethods([]string{"a", "b", "c"})
	got := applyPaymentOperations(methods, []domain.Operation{
		domain.MoveOperation{Handle: "gid://2", Index: 0},
		domain.MoveOperation{Handle: "gid://0", Index: 99},
		domain.MoveOperation{Handle: "missing", Index: 0},
	})

	ids := make([]string, len(got))
	for i, m := range got {
		ids[i] = m.ID
	}
	assert.Equal(t, []string{"gid://2", "gid://1", "gid://0"}, ids)
	assert.Equal(t, "gid://0", methods[0].ID)
}

func TestApplyDeliveryOperations_Move(t *testing.T) {
	t.Parallel()

	cart := model.Cart{DeliveryGroups: []model.DeliveryGroup{{
		DeliveryOptions: []model.DeliveryOption{{Handle: "A"}, {Handle: "B"}},
	}}}
	got := applyDeliveryOperations(cart, []domain.Operation{domain.MoveOperation{Handle: "B", Index: -1}})

	assert.Equal(t, "B", got.DeliveryGroups[0].DeliveryOptions[0].Handle)
	assert.Equal(t, "A", cart.DeliveryGroups[0].DeliveryOptions[0].Handle)
}
