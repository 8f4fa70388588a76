// Package lca computes life-cycle-assessment impacts for products.
//
// Input tables describe products as per-stage, per-material records. The
// package validates those tables, joins them against a material/stage factor
// table, derives per-row carbon, energy and water impacts, and rolls the
// results up into per-product totals, normalized views and relative
// comparisons.
//
// Every operation is a pure function of its inputs. A FactorTable is
// read-only after construction and may be shared across goroutines.
package lca

// Column names of the input schema. Downstream consumers address columns by
// these exact names.
const (
	ColProductID         = "product_id"
	ColProductName       = "product_name"
	ColLifeCycleStage    = "life_cycle_stage"
	ColMaterialType      = "material_type"
	ColQuantityKg        = "quantity_kg"
	ColEnergyKwh         = "energy_consumption_kwh"
	ColTransportKm       = "transport_distance_km"
	ColTransportMode     = "transport_mode"
	ColWasteKg           = "waste_generated_kg"
	ColRecyclingRate     = "recycling_rate"
	ColLandfillRate      = "landfill_rate"
	ColIncinerationRate  = "incineration_rate"
	ColCarbonFootprintKg = "carbon_footprint_kg_co2e"
	ColWaterLiters       = "water_usage_liters"
)

// Computed impact columns.
const (
	ColCarbonImpact = "carbon_impact"
	ColEnergyImpact = "energy_impact"
	ColWaterImpact  = "water_impact"
)

// RelativeSuffix is appended to a metric name to form its comparison column.
const RelativeSuffix = "_relative"

// RequiredColumns returns the fixed 14-column input schema in canonical order.
func RequiredColumns() []string {
	return []string{
		ColProductID, ColProductName, ColLifeCycleStage, ColMaterialType,
		ColQuantityKg, ColEnergyKwh, ColTransportKm, ColTransportMode,
		ColWasteKg, ColRecyclingRate, ColLandfillRate, ColIncinerationRate,
		ColCarbonFootprintKg, ColWaterLiters,
	}
}

// NumericColumns returns the nine columns that must coerce to numbers.
func NumericColumns() []string {
	return []string{
		ColQuantityKg, ColEnergyKwh, ColTransportKm,
		ColWasteKg, ColRecyclingRate, ColLandfillRate,
		ColIncinerationRate, ColCarbonFootprintKg, ColWaterLiters,
	}
}

// ImpactMetrics returns the three derived impact columns.
func ImpactMetrics() []string {
	return []string{ColCarbonImpact, ColEnergyImpact, ColWaterImpact}
}

// Table is a raw, untyped input table as produced by an ingest adapter.
//
// Cells hold whatever the source produced: strings from CSV and XLSX,
// json.Number or strings from JSON. Rows missing a column simply lack the key.
type Table struct {
	Columns []string
	Rows    []map[string]any
}

// HasColumn reports whether the table declares the named column.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Record is one typed row of the input table.
type Record struct {
	ProductID         string  `json:"product_id"`
	ProductName       string  `json:"product_name"`
	LifeCycleStage    string  `json:"life_cycle_stage"`
	MaterialType      string  `json:"material_type"`
	QuantityKg        float64 `json:"quantity_kg"`
	EnergyKwh         float64 `json:"energy_consumption_kwh"`
	TransportKm       float64 `json:"transport_distance_km"`
	TransportMode     string  `json:"transport_mode"`
	WasteKg           float64 `json:"waste_generated_kg"`
	RecyclingRate     float64 `json:"recycling_rate"`
	LandfillRate      float64 `json:"landfill_rate"`
	IncinerationRate  float64 `json:"incineration_rate"`
	CarbonFootprintKg float64 `json:"carbon_footprint_kg_co2e"`
	WaterLiters       float64 `json:"water_usage_liters"`
}

// EndOfLifeSum returns recycling + landfill + incineration.
func (r Record) EndOfLifeSum() float64 {
	return r.RecyclingRate + r.LandfillRate + r.IncinerationRate
}

// ImpactRow is a Record extended with its derived impacts.
type ImpactRow struct {
	Record

	CarbonImpact float64 `json:"carbon_impact"`
	EnergyImpact float64 `json:"energy_impact"`
	WaterImpact  float64 `json:"water_impact"`
}

// Metric returns the value of a named numeric column of the row, covering
// both derived impacts and the numeric input fields.
func (r ImpactRow) Metric(name string) (float64, bool) {
	switch name {
	case ColCarbonImpact:
		return r.CarbonImpact, true
	case ColEnergyImpact:
		return r.EnergyImpact, true
	case ColWaterImpact:
		return r.WaterImpact, true
	case ColQuantityKg:
		return r.QuantityKg, true
	case ColEnergyKwh:
		return r.EnergyKwh, true
	case ColTransportKm:
		return r.TransportKm, true
	case ColWasteKg:
		return r.WasteKg, true
	case ColRecyclingRate:
		return r.RecyclingRate, true
	case ColLandfillRate:
		return r.LandfillRate, true
	case ColIncinerationRate:
		return r.IncinerationRate, true
	case ColCarbonFootprintKg:
		return r.CarbonFootprintKg, true
	case ColWaterLiters:
		return r.WaterLiters, true
	default:
		return 0, false
	}
}

// Dimension returns the value of a named string column of the row.
func (r ImpactRow) Dimension(name string) (string, bool) {
	switch name {
	case ColProductID:
		return r.ProductID, true
	case ColProductName:
		return r.ProductName, true
	case ColLifeCycleStage:
		return r.LifeCycleStage, true
	case ColMaterialType:
		return r.MaterialType, true
	case ColTransportMode:
		return r.TransportMode, true
	default:
		return "", false
	}
}

// ProductTotal holds the summed impacts of one product across all its rows.
type ProductTotal struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	CarbonImpact float64 `json:"carbon_impact"`
	EnergyImpact float64 `json:"energy_impact"`
	WaterImpact  float64 `json:"water_impact"`
	WasteKg      float64 `json:"waste_generated_kg"`
}

// Metric returns the named total.
func (p ProductTotal) Metric(name string) (float64, bool) {
	switch name {
	case ColCarbonImpact:
		return p.CarbonImpact, true
	case ColEnergyImpact:
		return p.EnergyImpact, true
	case ColWaterImpact:
		return p.WaterImpact, true
	case ColWasteKg:
		return p.WasteKg, true
	default:
		return 0, false
	}
}

// ComparisonRow holds one compared product's impact totals and, per metric,
// the percentage above the minimum of the compared set.
type ComparisonRow struct {
	ProductID      string  `json:"product_id"`
	ProductName    string  `json:"product_name"`
	CarbonImpact   float64 `json:"carbon_impact"`
	EnergyImpact   float64 `json:"energy_impact"`
	WaterImpact    float64 `json:"water_impact"`
	CarbonRelative float64 `json:"carbon_impact_relative"`
	EnergyRelative float64 `json:"energy_impact_relative"`
	WaterRelative  float64 `json:"water_impact_relative"`
}

// Metric returns a named absolute or relative value of the row.
func (c ComparisonRow) Metric(name string) (float64, bool) {
	switch name {
	case ColCarbonImpact:
		return c.CarbonImpact, true
	case ColEnergyImpact:
		return c.EnergyImpact, true
	case ColWaterImpact:
		return c.WaterImpact, true
	case ColCarbonImpact + RelativeSuffix:
		return c.CarbonRelative, true
	case ColEnergyImpact + RelativeSuffix:
		return c.EnergyRelative, true
	case ColWaterImpact + RelativeSuffix:
		return c.WaterRelative, true
	default:
		return 0, false
	}
}
