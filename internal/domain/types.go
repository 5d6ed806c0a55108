package domain

import (
	"errors"
	"fmt"
)

// --- Targets ---

// Target identifies the host extension point a function runs for.
type Target string

const (
	DeliveryCustomizationTarget Target = "purchase.delivery-customization.run"
	PaymentCustomizationTarget  Target = "purchase.payment-customization.run"
)

// Function returns the short function name used for rule packs and schemas.
func (t Target) Function() string {
	switch t {
	case DeliveryCustomizationTarget:
		return "delivery-customization"
	case PaymentCustomizationTarget:
		return "payment-customization"
	}
	return ""
}

// ParseTarget accepts either the full target name or the short function name.
func ParseTarget(s string) (Target, error) {
	for _, t := range []Target{DeliveryCustomizationTarget, PaymentCustomizationTarget} {
		if s == string(t) || s == t.Function() {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTarget, s)
}

// --- Function Result ---

// FunctionResult is the ordered set of operations returned to the host.
// Operations keep the order in which their targets appear in the snapshot.
type FunctionResult struct {
	Operations []Operation
}

// NoChanges is the empty, successful result.
func NoChanges() *FunctionResult {
	return &FunctionResult{Operations: []Operation{}}
}

// --- Errors ---

var (
	// ErrConfigurationMalformed means the metafield value could not be decoded
	// into the function configuration.
	ErrConfigurationMalformed = errors.New("configuration malformed")

	// ErrUnparsableAmount means a decimal field of the snapshot is not a number.
	ErrUnparsableAmount = errors.New("unparsable amount")

	// ErrMalformedInput means the host input does not match the input shape.
	ErrMalformedInput = errors.New("malformed function input")

	ErrRuleExecutionFailed = errors.New("rule execution failed")
	ErrInvalidRulePack     = errors.New("invalid rule pack")
	ErrUnknownTarget       = errors.New("unknown function target")
	ErrInvalidOperation    = errors.New("invalid operation")
)
