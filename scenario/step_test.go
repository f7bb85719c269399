package scenario_test

import (
	"gregoryjjb/cyclecursor/scenario"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStep(t *testing.T) {
	tests := []struct {
		raw  string
		want scenario.Step
	}{
		{"next", scenario.Step{Op: scenario.OpNext}},
		{"  prev ", scenario.Step{Op: scenario.OpPrev}},
		{"seek -3", scenario.Step{Op: scenario.OpSeek, Arg: -3}},
		{"peek 2 = 4", scenario.Step{Op: scenario.OpPeek, Arg: 2, Expect: scenario.Expectation{Kind: scenario.ExpectValue, Value: 4}}},
		{"peek 2=none", scenario.Step{Op: scenario.OpPeek, Arg: 2, Expect: scenario.Expectation{Kind: scenario.ExpectNone}}},
		{"get = -1", scenario.Step{Op: scenario.OpGet, Expect: scenario.Expectation{Kind: scenario.ExpectValue, Value: -1}}},
		{"get = stale", scenario.Step{Op: scenario.OpGet, Expect: scenario.Expectation{Kind: scenario.ExpectStale}}},
		{"position = unset", scenario.Step{Op: scenario.OpPosition, Expect: scenario.Expectation{Kind: scenario.ExpectNone}}},
		{"remove 0", scenario.Step{Op: scenario.OpRemove}},
		{"push 9", scenario.Step{Op: scenario.OpPush, Arg: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := scenario.ParseStep(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStepErrors(t *testing.T) {
	bad := []string{
		"",
		"jump",
		"next 1",
		"seek",
		"seek x",
		"get",
		"peek 1",
		"next = 1",
		"get = maybe",
		"peek 1 = stale",
		"position = none",
	}
	for _, raw := range bad {
		t.Run(raw, func(t *testing.T) {
			_, err := scenario.ParseStep(raw)
			assert.ErrorIs(t, err, scenario.ErrSyntax)
		})
	}
}

func TestStepString(t *testing.T) {
	for _, raw := range []string{"next", "seek -3", "peek 2 = 4", "peek 1 = none", "get = stale", "position = unset", "push 5"} {
		step, err := scenario.ParseStep(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, step.String())
	}
}
