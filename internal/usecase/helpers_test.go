package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Victor-armando18/checkout-functions/internal/domain/model"
	"github.com/Victor-armando18/checkout-functions/internal/infrastructure"
	"github.com/Victor-armando18/checkout-functions/internal/infrastructure/metafield"
)

func newTestService(t *testing.T) *EngineService {
	t.Helper()

	loader, err := metafield.NewLoader()
	require.NoError(t, err)

	return NewEngineService(
		infrastructure.NewEmbeddedRuleLoader(),
		infrastructure.NewJsonLogicExecutor(),
		loader,
	)
}

func ptr(s string) *string { return &s }

func owner(t *testing.T, cfg any) *model.FunctionOwner {
	t.Helper()

	raw, err := json.Marshal(cfg)
	require.NoError(t, err)
	return &model.FunctionOwner{Metafield: &model.Metafield{Value: string(raw)}}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
