package engine

import (
	"github.com/Victor-armando18/checkout-functions/internal/domain"
	"github.com/Victor-armando18/checkout-functions/internal/usecase"
)

// Aliases so callers outside the module can name results without importing
// internal packages.
type (
	Target          = domain.Target
	FunctionResult  = domain.FunctionResult
	Operation       = domain.Operation
	RenameOperation = domain.RenameOperation
	HideOperation   = domain.HideOperation
	MoveOperation   = domain.MoveOperation
	Preview         = usecase.Preview
)

const (
	DeliveryCustomization = domain.DeliveryCustomizationTarget
	PaymentCustomization  = domain.PaymentCustomizationTarget
)

var (
	ErrConfigurationMalformed = domain.ErrConfigurationMalformed
	ErrUnparsableAmount       = domain.ErrUnparsableAmount
	ErrMalformedInput         = domain.ErrMalformedInput
	ErrRuleExecutionFailed    = domain.ErrRuleExecutionFailed
	ErrInvalidRulePack        = domain.ErrInvalidRulePack
	ErrUnknownTarget          = domain.ErrUnknownTarget
)

// ParseTarget accepts a full target name or a short function name.
func ParseTarget(s string) (Target, error) {
	return domain.ParseTarget(s)
}
