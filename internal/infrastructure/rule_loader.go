package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
	"github.com/Victor-armando18/checkout-functions/internal/domain/engine"
	"github.com/Victor-armando18/checkout-functions/internal/infrastructure/rulepacks"
	"github.com/Victor-armando18/checkout-functions/internal/infrastructure/yaml"
	"github.com/Victor-armando18/checkout-functions/internal/interfaces"
)

var ruleExtensions = []string{".yaml", ".yml", ".json"}

// FileRuleLoader reads <function>.{yaml,yml,json} from a file system. When
// Fallback is set and no file exists, the fallback loader is used.
type FileRuleLoader struct {
	FS       fs.FS
	Fallback interfaces.RulePackLoader
}

// NewEmbeddedRuleLoader loads the rule packs compiled into the binary.
func NewEmbeddedRuleLoader() interfaces.RulePackLoader {
	return &FileRuleLoader{FS: rulepacks.FS}
}

// NewFileRuleLoader loads rule packs from dir, falling back to the embedded
// packs for functions the directory does not override. An empty dir returns
// the embedded loader.
func NewFileRuleLoader(dir string) interfaces.RulePackLoader {
	if dir == "" {
		return NewEmbeddedRuleLoader()
	}
	return &FileRuleLoader{FS: os.DirFS(dir), Fallback: NewEmbeddedRuleLoader()}
}

func (l *FileRuleLoader) Load(ctx context.Context, function string) (*engine.RulePack, error) {
	for _, ext := range ruleExtensions {
		name := function + ext
		data, err := fs.ReadFile(l.FS, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read rule file %s: %w", name, err)
		}

		pack, err := decodeRulePack(name, data)
		if err != nil {
			return nil, fmt.Errorf("rule file %s: %w", name, err)
		}
		if pack.Function != function {
			return nil, fmt.Errorf("%w: rule file %s declares function %q", domain.ErrInvalidRulePack, name, pack.Function)
		}
		if err := pack.Validate(); err != nil {
			return nil, fmt.Errorf("rule file %s: %w", name, err)
		}
		return pack, nil
	}

	if l.Fallback != nil {
		return l.Fallback.Load(ctx, function)
	}
	return nil, fmt.Errorf("%w: no rule pack for %q", domain.ErrInvalidRulePack, function)
}

func decodeRulePack(name string, data []byte) (*engine.RulePack, error) {
	if path.Ext(name) != ".json" {
		return yaml.DecodeRulePack(data)
	}

	var pack engine.RulePack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRulePack, err)
	}
	return &pack, nil
}
