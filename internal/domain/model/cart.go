package model

// Cart is the checkout-in-progress snapshot the host hands to a function.
// Only the fields queried by the functions are populated.
type Cart struct {
	Cost           CartCost        `json:"cost"`
	DeliveryGroups []DeliveryGroup `json:"deliveryGroups,omitempty"`
}

type CartCost struct {
	TotalAmount MoneyV2 `json:"totalAmount"`
}

// MoneyV2 carries a decimal amount as a string, as the host encodes it.
type MoneyV2 struct {
	Amount string `json:"amount"`
}

type DeliveryGroup struct {
	DeliveryAddress *MailingAddress  `json:"deliveryAddress"`
	DeliveryOptions []DeliveryOption `json:"deliveryOptions"`
}

type MailingAddress struct {
	Zip *string `json:"zip"`
}

type DeliveryOption struct {
	Handle string  `json:"handle"`
	Title  *string `json:"title"`
}

type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Metafield is the host-managed slot carrying the raw configuration.
type Metafield struct {
	Value string `json:"value"`
}

// FunctionOwner is the customization object the function is attached to.
type FunctionOwner struct {
	Metafield *Metafield `json:"metafield"`
}

// ConfigurationValue returns the raw metafield value, or nil when the
// merchant has not configured the function.
func (o *FunctionOwner) ConfigurationValue() *string {
	if o == nil || o.Metafield == nil {
		return nil
	}
	return &o.Metafield.Value
}

// ToMap projects the group into rule data. A missing address or zip leaves
// the key out so predicates see null.
func (g DeliveryGroup) ToMap() map[string]any {
	address := map[string]any{}
	if g.DeliveryAddress != nil && g.DeliveryAddress.Zip != nil {
		address["zip"] = *g.DeliveryAddress.Zip
	}

	options := make([]any, len(g.DeliveryOptions))
	for i, o := range g.DeliveryOptions {
		option := map[string]any{"handle": o.Handle}
		if o.Title != nil {
			option["title"] = *o.Title
		}
		options[i] = option
	}

	m := map[string]any{"deliveryOptions": options}
	if g.DeliveryAddress != nil {
		m["deliveryAddress"] = address
	}
	return m
}

func (p PaymentMethod) ToMap() map[string]any {
	return map[string]any{
		"id":   p.ID,
		"name": p.Name,
	}
}
