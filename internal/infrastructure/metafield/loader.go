// Package metafield turns the raw metafield value attached to a function
// owner into a typed configuration.
//
// Values are validated against an embedded JSON schema per function before
// decoding, so a missing or mistyped key fails the invocation instead of
// decoding to a zero value.
package metafield

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
)

const schemaBaseURL = "https://checkout-functions.local/schemas/"

//go:embed schemas/*.json
var schemaFS embed.FS

// Loader validates and decodes metafield values.
type Loader struct {
	schemas map[string]*jsonschema.Schema
}

// NewLoader compiles every embedded configuration schema.
func NewLoader() (*Loader, error) {
	entries, err := fs.ReadDir(schemaFS, "schemas")
	if err != nil {
		return nil, fmt.Errorf("read schemas: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		f, err := schemaFS.Open("schemas/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("open schema %s: %w", e.Name(), err)
		}
		doc, err := jsonschema.UnmarshalJSON(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("unmarshal schema %s: %w", e.Name(), err)
		}
		if err := compiler.AddResource(schemaBaseURL+e.Name(), doc); err != nil {
			return nil, fmt.Errorf("add schema resource %s: %w", e.Name(), err)
		}
		names = append(names, e.Name())
	}

	l := &Loader{schemas: make(map[string]*jsonschema.Schema, len(names))}
	for _, name := range names {
		sch, err := compiler.Compile(schemaBaseURL + name)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		l.schemas[strings.TrimSuffix(name, ".json")] = sch
	}
	return l, nil
}

// MustNewLoader is NewLoader for package-level wiring; the schemas are
// embedded, so failure is a build defect.
func MustNewLoader() *Loader {
	l, err := NewLoader()
	if err != nil {
		panic(err)
	}
	return l
}

// Load decodes raw into cfg. It returns false, nil when raw is nil: the
// merchant has not configured the function.
func (l *Loader) Load(function string, raw *string, cfg any) (bool, error) {
	if raw == nil {
		return false, nil
	}

	sch, ok := l.schemas[function]
	if !ok {
		return false, fmt.Errorf("%w: %q", domain.ErrUnknownTarget, function)
	}

	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(*raw))
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrConfigurationMalformed, err)
	}
	if err := sch.Validate(inst); err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrConfigurationMalformed, err)
	}

	// encoding/json folds key case; decode only the exact schema keys so a
	// "CartTotal" next to "cartTotal" is ignored rather than applied.
	known, err := json.Marshal(recognized(sch, inst))
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrConfigurationMalformed, err)
	}
	if err := json.Unmarshal(known, cfg); err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrConfigurationMalformed, err)
	}
	return true, nil
}

// recognized keeps the members of a validated object whose key is declared
// in the schema properties, compared byte for byte.
func recognized(sch *jsonschema.Schema, inst any) map[string]any {
	obj, _ := inst.(map[string]any)
	out := make(map[string]any, len(sch.Properties))
	for key := range sch.Properties {
		if v, ok := obj[key]; ok {
			out[key] = v
		}
	}
	return out
}
