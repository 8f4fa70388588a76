package lca

import (
	"github.com/rs/zerolog"
)

// Calculator joins input records against a FactorTable and derives impacts.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	factors *FactorTable
	logger  zerolog.Logger
}

// CalculatorOption configures a Calculator.
type CalculatorOption func(*Calculator)

// WithLogger attaches a logger used for debug diagnostics.
func WithLogger(l zerolog.Logger) CalculatorOption {
	return func(c *Calculator) {
		c.logger = l
	}
}

// NewCalculator returns a Calculator over factors. A nil table behaves as an
// empty one: every row contributes only its directly reported fields.
func NewCalculator(factors *FactorTable, opts ...CalculatorOption) *Calculator {
	c := &Calculator{factors: factors, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Factors returns the table the calculator joins against.
func (c *Calculator) Factors() *FactorTable {
	return c.factors
}

// Calculate derives the impacts of every record.
//
// Each record is matched on lower-cased (material_type, life_cycle_stage).
// Unmatched records use zero factors. For every row:
//
//	carbon_impact = quantity_kg * carbon factor + carbon_footprint_kg_co2e
//	energy_impact = quantity_kg * energy factor + energy_consumption_kwh
//	water_impact  = quantity_kg * water factor  + water_usage_liters
//
// No row is dropped and records keep their original casing. The input
// slice is not modified.
func (c *Calculator) Calculate(records []Record) []ImpactRow {
	out := make([]ImpactRow, len(records))
	unmatched := 0

	for i, rec := range records {
		f, ok := c.factors.Lookup(rec.MaterialType, rec.LifeCycleStage)
		if !ok {
			unmatched++
		}
		out[i] = ImpactRow{
			Record:       rec,
			CarbonImpact: rec.QuantityKg*f.CarbonImpact + rec.CarbonFootprintKg,
			EnergyImpact: rec.QuantityKg*f.EnergyImpact + rec.EnergyKwh,
			WaterImpact:  rec.QuantityKg*f.WaterImpact + rec.WaterLiters,
		}
	}

	c.logger.Debug().
		Str("component", "lca").
		Str("operation", "calculate").
		Int("row_count", len(records)).
		Int("unmatched_count", unmatched).
		Msg("impacts calculated")

	return out
}

// CalculateTable decodes t and calculates its impacts. t is expected to have
// passed Validate.
func (c *Calculator) CalculateTable(t Table) []ImpactRow {
	return c.Calculate(Records(t))
}
