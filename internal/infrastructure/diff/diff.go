package diff

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

type Differ struct{}

// Diff returns the RFC 7386 merge patch turning before into after. Equal
// documents produce "{}".
func (d *Differ) Diff(before, after any) (json.RawMessage, error) {
	b, err := json.Marshal(before)
	if err != nil {
		return nil, fmt.Errorf("encode original: %w", err)
	}
	a, err := json.Marshal(after)
	if err != nil {
		return nil, fmt.Errorf("encode customized: %w", err)
	}

	patch, err := jsonpatch.CreateMergePatch(b, a)
	if err != nil {
		return nil, fmt.Errorf("create merge patch: %w", err)
	}
	return patch, nil
}
