package greenops

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/rshade/lcafocus/internal/lca"
)

// FromTotals sums per-product totals into a single footprint.
func FromTotals(totals []lca.ProductTotal) Footprint {
	var fp Footprint
	for _, t := range totals {
		fp.CarbonKg += t.CarbonImpact
		fp.EnergyKwh += t.EnergyImpact
		fp.WaterLiters += t.WaterImpact
	}
	return fp
}

// Calculate computes everyday equivalencies for a footprint.
//
// Each impact category is handled on its own: a category that is negative
// (a net credit) or below its display threshold contributes no results.
// When no category qualifies the output is empty. NaN or infinite inputs
// return ErrCalculationOverflow.
func Calculate(fp Footprint) (EquivalencyOutput, error) {
	for _, v := range []float64{fp.CarbonKg, fp.EnergyKwh, fp.WaterLiters} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return EquivalencyOutput{Input: fp, IsEmpty: true}, ErrCalculationOverflow
		}
	}

	out := EquivalencyOutput{Input: fp}
	var sentences, compact []string

	if fp.CarbonKg >= MinCarbonThresholdKg {
		miles := result(EquivalencyMilesDriven, fp.CarbonKg/EPAMilesDrivenFactor, "miles driven")
		phones := result(EquivalencySmartphonesCharged, fp.CarbonKg/EPASmartphoneChargeFactor, "smartphones charged")
		trees := result(EquivalencyTreeSeedlings, fp.CarbonKg/EPATreeSeedlingFactor, "tree seedlings grown for 10 years")
		out.Results = append(out.Results, miles, phones, trees)

		sentences = append(sentences, fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones.",
			miles.FormattedValue, phones.FormattedValue))
		compact = append(compact, miles.FormattedValue+" mi", phones.FormattedValue+" phones")
	}

	if fp.EnergyKwh >= MinEnergyThresholdKwh {
		days := result(EquivalencyHomeDays, fp.EnergyKwh/HomeElectricityKwhPerDay, "days of home electricity")
		out.Results = append(out.Results, days)
		sentences = append(sentences, fmt.Sprintf("Energy use matches ~%s days of household electricity.",
			days.FormattedValue))
		compact = append(compact, days.FormattedValue+" home-days")
	}

	if fp.WaterLiters >= MinWaterThresholdLiter {
		showers := result(EquivalencyShowers, fp.WaterLiters/ShowerLiters, "showers")
		out.Results = append(out.Results, showers)
		sentences = append(sentences, fmt.Sprintf("Water use matches ~%s showers.", showers.FormattedValue))
		compact = append(compact, showers.FormattedValue+" showers")
	}

	if len(out.Results) == 0 {
		log.Debug().
			Str("component", "greenops").
			Float64("carbon_kg", fp.CarbonKg).
			Float64("energy_kwh", fp.EnergyKwh).
			Float64("water_liters", fp.WaterLiters).
			Msg("footprint below equivalency thresholds")
		out.IsEmpty = true
		return out, nil
	}

	out.DisplayText = strings.Join(sentences, " ")
	out.CompactText = "(≈ " + strings.Join(compact, ", ") + ")"
	return out, nil
}

func result(kind EquivalencyType, v float64, label string) EquivalencyResult {
	return EquivalencyResult{
		Type:           kind,
		Value:          v,
		FormattedValue: formatEquivalencyValue(v),
		Label:          label,
	}
}

// formatEquivalencyValue rounds to a whole number with separators, switching
// to million/billion scaling for large values.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
