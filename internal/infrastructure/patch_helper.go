package infrastructure

import (
	"bytes"
	"fmt"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
	jsonpatch "github.com/evanphx/json-patch/v5"
)

// ApplyInputPatch applies an RFC 6902 patch to a raw function input and
// returns the patched document. An empty or null patch returns input unchanged.
func ApplyInputPatch(input, patchData []byte) ([]byte, error) {
	if trimmed := bytes.TrimSpace(patchData); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return input, nil
	}

	patch, err := jsonpatch.DecodePatch(patchData)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode patch: %v", domain.ErrMalformedInput, err)
	}

	modified, err := patch.Apply(input)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to apply patch: %v", domain.ErrMalformedInput, err)
	}
	return modified, nil
}
