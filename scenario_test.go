package cyclecursor_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"gregoryjjb/cyclecursor/scenario"
)

func TestScenarios(t *testing.T) {
	scenarios, err := scenario.Load(afero.NewOsFs(), "testdata/scenarios.toml")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			require.NoError(t, scenario.Run(s))
		})
	}
}
