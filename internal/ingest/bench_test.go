package ingest_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rshade/lcafocus/internal/ingest"
	"github.com/rshade/lcafocus/internal/lca"
)

// generateCSV builds an input table with count rows over a few products.
func generateCSV(count int) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(lca.RequiredColumns(), ","))
	sb.WriteByte('\n')
	for i := range count {
		fmt.Fprintf(&sb, "P%03d,Product %d,Production,Steel,%d,20,150,truck,3.5,0.6,0.3,0.1,50,12\n",
			i%50, i%50, i+1)
	}
	return sb.String()
}

// generateJSON builds the same rows as generateCSV in records orientation.
func generateJSON(count int) string {
	rows := make([]string, count)
	for i := range count {
		rows[i] = fmt.Sprintf(`{"product_id":"P%03d","product_name":"Product %d","life_cycle_stage":"Production",`+
			`"material_type":"Steel","quantity_kg":%d,"energy_consumption_kwh":20,"transport_distance_km":150,`+
			`"transport_mode":"truck","waste_generated_kg":3.5,"recycling_rate":0.6,"landfill_rate":0.3,`+
			`"incineration_rate":0.1,"carbon_footprint_kg_co2e":50,"water_usage_liters":12}`, i%50, i%50, i+1)
	}
	return "[" + strings.Join(rows, ",") + "]"
}

// BenchmarkParseCSV_LargeTable benchmarks parsing a 10k-row CSV table.
func BenchmarkParseCSV_LargeTable(b *testing.B) {
	b.ReportAllocs()
	data := generateCSV(10000)

	b.ResetTimer()
	for range b.N {
		if _, err := ingest.ParseCSV(strings.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParseJSON_LargeTable benchmarks parsing a 10k-row JSON table.
func BenchmarkParseJSON_LargeTable(b *testing.B) {
	b.ReportAllocs()
	data := generateJSON(10000)

	b.ResetTimer()
	for range b.N {
		if _, err := ingest.ParseJSON(strings.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
