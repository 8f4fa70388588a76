// Package greenops turns LCA impact totals into everyday equivalencies.
//
// Carbon is expressed as miles driven, smartphones charged and tree
// seedlings grown; energy as days of household electricity; water as
// showers taken. Factors come from EPA and EIA published averages.
package greenops

import "fmt"

// EquivalencyType represents a category of equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven converts CO2e to miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged converts CO2e to smartphone full charges.
	EquivalencySmartphonesCharged

	// EquivalencyTreeSeedlings converts CO2e to tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings

	// EquivalencyHomeDays converts kWh to days of average US home electricity use.
	EquivalencyHomeDays

	// EquivalencyShowers converts liters of water to average showers.
	EquivalencyShowers
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencyHomeDays:
		return "HomeDays"
	case EquivalencyShowers:
		return "Showers"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// Footprint is an aggregate impact in the units the calculator produces.
type Footprint struct {
	CarbonKg    float64 `json:"carbon_kg_co2e"`
	EnergyKwh   float64 `json:"energy_kwh"`
	WaterLiters float64 `json:"water_liters"`
}

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	Input Footprint `json:"input"`

	// Results are ordered carbon first, then energy, then water.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose form, one sentence per impact category.
	// Example: "Equivalent to driving ~781 miles or charging ~18,248 smartphones."
	DisplayText string `json:"display_text"`

	// CompactText is the abbreviated form for table footers.
	// Example: "(≈ 781 mi, 18,248 phones, 12 home-days, 40 showers)"
	CompactText string `json:"compact_text"`

	IsEmpty bool `json:"is_empty"`
}
