package model

// DeliveryCustomizationInput is the query result for the delivery function.
type DeliveryCustomizationInput struct {
	Cart                  Cart           `json:"cart"`
	DeliveryCustomization *FunctionOwner `json:"deliveryCustomization"`
}

// PaymentCustomizationInput is the query result for the payment function.
type PaymentCustomizationInput struct {
	Cart                 Cart            `json:"cart"`
	PaymentMethods       []PaymentMethod `json:"paymentMethods"`
	PaymentCustomization *FunctionOwner  `json:"paymentCustomization"`
}

// DeliveryConfiguration is the merchant configuration of the delivery function.
type DeliveryConfiguration struct {
	Zip     string `json:"zip"`
	Message string `json:"message"`
}

// PaymentConfiguration is the merchant configuration of the payment function.
type PaymentConfiguration struct {
	PaymentMethodName string  `json:"paymentMethodName"`
	CartTotal         float64 `json:"cartTotal"`
}

func (c DeliveryConfiguration) ToMap() map[string]any {
	return map[string]any{
		"zip":     c.Zip,
		"message": c.Message,
	}
}

func (c PaymentConfiguration) ToMap() map[string]any {
	return map[string]any{
		"paymentMethodName": c.PaymentMethodName,
		"cartTotal":         c.CartTotal,
	}
}
