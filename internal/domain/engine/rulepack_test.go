package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
)

func TestRulePack_Validate(t *testing.T) {
	t.Parallel()

	logic := map[string]any{"==": []any{1, 1}}

	tests := map[string]struct {
		pack    RulePack
		wantErr bool
	}{
		"valid": {
			pack: RulePack{Function: "f", Rules: []Rule{
				{ID: "t", Phase: Threshold, Logic: logic},
				{ID: "m", Phase: Match, Logic: logic},
			}},
		},
		"no function": {
			pack:    RulePack{Rules: []Rule{{ID: "m", Phase: Match, Logic: logic}}},
			wantErr: true,
		},
		"no match rule": {
			pack:    RulePack{Function: "f", Rules: []Rule{{ID: "t", Phase: Threshold, Logic: logic}}},
			wantErr: true,
		},
		"unknown phase": {
			pack: RulePack{Function: "f", Rules: []Rule{
				{ID: "m", Phase: Match, Logic: logic},
				{ID: "g", Phase: "guards", Logic: logic},
			}},
			wantErr: true,
		},
		"missing id": {
			pack:    RulePack{Function: "f", Rules: []Rule{{Phase: Match, Logic: logic}}},
			wantErr: true,
		},
		"duplicate id": {
			pack: RulePack{Function: "f", Rules: []Rule{
				{ID: "m", Phase: Match, Logic: logic},
				{ID: "m", Phase: Match, Logic: logic},
			}},
			wantErr: true,
		},
		"empty logic": {
			pack:    RulePack{Function: "f", Rules: []Rule{{ID: "m", Phase: Match}}},
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := tc.pack.Validate()
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidRulePack)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRulePack_PhaseKeepsOrder(t *testing.T) {
	t.Parallel()

	p := RulePack{Rules: []Rule{
		{ID: "m1", Phase: Match},
		{ID: "t1", Phase: Threshold},
		{ID: "m2", Phase: Match},
	}}

	got := p.Phase(Match)
	require.Len(t, got, 2)
	assert.Equal(t, "m1", got[0].ID)
	assert.Equal(t, "m2", got[1].ID)
}
