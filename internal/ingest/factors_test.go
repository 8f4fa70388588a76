package ingest_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/lcafocus/internal/ingest"
	"github.com/rshade/lcafocus/internal/lca"
)

const factorsJSON = `{
  "steel": {
    "production": {"carbon_impact": 1.8, "energy_impact": 20, "water_impact": 150}
  },
  "aluminum": {
    "production": {"carbon_impact": 8.2},
    "end-of-life": {"carbon_impact": -0.5}
  }
}`

const factorsYAML = `
steel:
  production:
    carbon_impact: 1.8
    energy_impact: 20
    water_impact: 150
aluminum:
  production:
    carbon_impact: 8.2
  end-of-life:
    carbon_impact: -0.5
`

func TestReadFactors_JSONAndYAMLAgree(t *testing.T) {
	ctx := context.Background()

	fromJSON, err := ingest.ReadFactors(ctx, writeFile(t, "factors.json", factorsJSON))
	require.NoError(t, err)
	fromYAML, err := ingest.ReadFactors(ctx, writeFile(t, "factors.yaml", factorsYAML))
	require.NoError(t, err)
	fromYML, err := ingest.ReadFactors(ctx, writeFile(t, "factors.yml", factorsYAML))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
	assert.Equal(t, fromJSON, fromYML)
	assert.InDelta(t, 1.8, fromJSON["steel"]["production"]["carbon_impact"], 1e-9)
}

func TestReadFactors_FeedsFactorTable(t *testing.T) {
	src, err := ingest.ReadFactors(context.Background(), writeFile(t, "factors.json", factorsJSON))
	require.NoError(t, err)

	ft := lca.LoadFactors(src)
	assert.Equal(t, 3, ft.Len())

	entry, ok := ft.Lookup("Aluminum", "End-of-Life")
	require.True(t, ok)
	assert.InDelta(t, -0.5, entry.CarbonImpact, 1e-9)
	assert.Zero(t, entry.WaterImpact)
}

func TestReadFactors_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "factors.json") },
			wantErr: ingest.ErrFileNotFound,
		},
		{
			name:    "csv is not a factor format",
			path:    func(t *testing.T) string { return writeFile(t, "factors.csv", "a,b\n") },
			wantErr: ingest.ErrUnsupportedFormat,
		},
		{
			name: "malformed json",
			path: func(t *testing.T) string { return writeFile(t, "factors.json", `{"steel": [`) },
		},
		{
			name: "non-numeric impact",
			path: func(t *testing.T) string {
				return writeFile(t, "factors.json", `{"steel": {"production": {"carbon_impact": "heavy"}}}`)
			},
		},
		{
			name: "wrong shape",
			path: func(t *testing.T) string { return writeFile(t, "factors.json", `{"steel": 3}`) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ingest.ReadFactors(ctx, tt.path(t))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
		})
	}
}

func TestParseFactors_Empty(t *testing.T) {
	src, err := ingest.ParseFactorsJSON([]byte(" "))
	require.NoError(t, err)
	assert.Empty(t, src)

	src, err = ingest.ParseFactorsYAML([]byte(""))
	require.NoError(t, err)
	assert.NotNil(t, src)
	assert.Empty(t, src)
}

func TestParseFactors_ExtraFieldsIgnored(t *testing.T) {
	tests := []struct {
		name  string
		parse func([]byte) (lca.FactorSource, error)
		doc   string
	}{
		{
			name:  "json",
			parse: ingest.ParseFactorsJSON,
			doc: `{
			  "steel": {
			    "production": {"carbon_impact": 1.5, "unit": "kg", "source": "ecoinvent", "notes": null},
			    "use": null
			  },
			  "glass": null
			}`,
		},
		{
			name:  "yaml",
			parse: ingest.ParseFactorsYAML,
			doc: `
steel:
  production:
    carbon_impact: 1.5
    unit: kg
    source: ecoinvent
    notes:
  use:
glass:
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := tt.parse([]byte(tt.doc))
			require.NoError(t, err)

			assert.Equal(t, map[string]float64{lca.ColCarbonImpact: 1.5}, src["steel"]["production"])

			ft := lca.LoadFactors(src)
			assert.Equal(t, 2, ft.Len())
			entry, ok := ft.Lookup("Steel", "Use")
			require.True(t, ok)
			assert.Zero(t, entry.CarbonImpact)
		})
	}
}
