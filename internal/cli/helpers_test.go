package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/lcafocus/internal/cli"
	"github.com/rshade/lcafocus/internal/config"
)

const productsCSV = `product_id,product_name,life_cycle_stage,material_type,quantity_kg,energy_consumption_kwh,transport_distance_km,transport_mode,waste_generated_kg,recycling_rate,landfill_rate,incineration_rate,carbon_footprint_kg_co2e,water_usage_liters
P001,Widget,Production,Steel,100,20,150,truck,3.5,0.6,0.3,0.1,50,0
P001,Widget,End-of-Life,Steel,100,0,0,,0,0.8,0.2,0,0,0
P002,Gadget,Production,Aluminum,10,5,0,,0,0,0,0,0,12.5
`

const factorsDoc = `{
  "steel": {"production": {"carbon_impact": 1.8, "energy_impact": 20, "water_impact": 150}},
  "aluminum": {"production": {"carbon_impact": 8.2}}
}`

// fixture holds paths to the input files of one test.
type fixture struct {
	dir     string
	data    string
	factors string
}

// setupCLITest isolates configuration and returns fixture files.
func setupCLITest(t *testing.T) fixture {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvProjectDir, "")
	t.Setenv(config.EnvFactors, "")
	t.Setenv(config.EnvOutputFormat, "")
	t.Cleanup(func() {
		config.ResetGlobalConfigForTest()
		config.SetResolvedProjectDir("")
	})

	dir := t.TempDir()
	f := fixture{
		dir:     dir,
		data:    filepath.Join(dir, "products.csv"),
		factors: filepath.Join(dir, "factors.json"),
	}
	require.NoError(t, os.WriteFile(f.data, []byte(productsCSV), 0o600))
	require.NoError(t, os.WriteFile(f.factors, []byte(factorsDoc), 0o600))
	return f
}

// execute runs the root command and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
