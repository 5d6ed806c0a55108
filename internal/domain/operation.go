package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Operation is a single customization instruction. The set of variants is
// closed: RenameOperation, HideOperation and MoveOperation.
type Operation interface {
	// Kind is the envelope key of the variant ("rename", "hide", "move").
	Kind() string
	operation()
}

// RenameOperation changes the title of a delivery option.
type RenameOperation struct {
	DeliveryOptionHandle string `json:"deliveryOptionHandle"`
	Title                string `json:"title"`
}

// HideOperation removes a payment method from checkout.
type HideOperation struct {
	PaymentMethodID string `json:"paymentMethodId"`
}

// MoveOperation repositions a checkout option. No rule emits it yet.
type MoveOperation struct {
	Handle string `json:"handle"`
	Index  int    `json:"index"`
}

const (
	kindRename = "rename"
	kindHide   = "hide"
	kindMove   = "move"
)

func (RenameOperation) Kind() string { return kindRename }
func (HideOperation) Kind() string   { return kindHide }
func (MoveOperation) Kind() string   { return kindMove }

func (RenameOperation) operation() {}
func (HideOperation) operation()   {}
func (MoveOperation) operation()   {}

func (o RenameOperation) MarshalJSON() ([]byte, error) {
	type body RenameOperation
	return json.Marshal(map[string]body{kindRename: body(o)})
}

func (o HideOperation) MarshalJSON() ([]byte, error) {
	type body HideOperation
	return json.Marshal(map[string]body{kindHide: body(o)})
}

func (o MoveOperation) MarshalJSON() ([]byte, error) {
	type body MoveOperation
	return json.Marshal(map[string]body{kindMove: body(o)})
}

type functionResultJSON struct {
	Operations []json.RawMessage `json:"operations"`
}

// MarshalJSON always emits an operations array, even when empty.
func (r FunctionResult) MarshalJSON() ([]byte, error) {
	out := functionResultJSON{Operations: make([]json.RawMessage, 0, len(r.Operations))}
	for i, op := range r.Operations {
		if op == nil {
			return nil, fmt.Errorf("%w: operation %d is nil", ErrInvalidOperation, i)
		}
		b, err := json.Marshal(op)
		if err != nil {
			return nil, err
		}
		out.Operations = append(out.Operations, b)
	}
	return json.Marshal(out)
}

func (r *FunctionResult) UnmarshalJSON(data []byte) error {
	var in functionResultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	ops := make([]Operation, 0, len(in.Operations))
	for i, raw := range in.Operations {
		op, err := DecodeOperation(raw)
		if err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
		ops = append(ops, op)
	}
	r.Operations = ops
	return nil
}

// DecodeOperation reads one operation envelope. Exactly one non-null variant
// key must be present.
func DecodeOperation(raw []byte) (Operation, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}

	var (
		kind string
		body json.RawMessage
	)
	for k, v := range envelope {
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			continue
		}
		if kind != "" {
			return nil, fmt.Errorf("%w: variants %q and %q both set", ErrInvalidOperation, kind, k)
		}
		kind, body = k, v
	}

	switch kind {
	case kindRename:
		var op RenameOperation
		type plain RenameOperation
		err := json.Unmarshal(body, (*plain)(&op))
		return op, err
	case kindHide:
		var op HideOperation
		type plain HideOperation
		err := json.Unmarshal(body, (*plain)(&op))
		return op, err
	case kindMove:
		var op MoveOperation
		type plain MoveOperation
		err := json.Unmarshal(body, (*plain)(&op))
		return op, err
	case "":
		return nil, fmt.Errorf("%w: no variant set", ErrInvalidOperation)
	}
	return nil, fmt.Errorf("%w: unknown variant %q", ErrInvalidOperation, kind)
}
