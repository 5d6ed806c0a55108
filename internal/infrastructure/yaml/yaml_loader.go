package yaml

import (
	"bytes"
	"fmt"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
	"github.com/Victor-armando18/checkout-functions/internal/domain/engine"

	"gopkg.in/yaml.v3"
)

// DecodeRulePack parses a YAML rule pack. Unknown fields are rejected so a
// typo in a phase or logic key does not silently disable a rule.
func DecodeRulePack(data []byte) (*engine.RulePack, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var pack engine.RulePack
	if err := dec.Decode(&pack); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRulePack, err)
	}
	return &pack, nil
}
