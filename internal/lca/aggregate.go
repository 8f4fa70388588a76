package lca

import (
	"sort"
)

type productKey struct {
	id   string
	name string
}

// Totals sums carbon, energy and water impact and waste per
// (product_id, product_name) across every stage and material.
//
// Groups are returned sorted by product_id, then product_name.
func Totals(rows []ImpactRow) []ProductTotal {
	idx := make(map[productKey]int)
	var out []ProductTotal

	for _, r := range rows {
		k := productKey{id: r.ProductID, name: r.ProductName}
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, ProductTotal{ProductID: r.ProductID, ProductName: r.ProductName})
		}
		out[i].CarbonImpact += r.CarbonImpact
		out[i].EnergyImpact += r.EnergyImpact
		out[i].WaterImpact += r.WaterImpact
		out[i].WasteKg += r.WasteKg
	}

	sortTotals(out)
	return out
}

func sortTotals(out []ProductTotal) {
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].ProductName < out[j].ProductName
	})
}

// Normalize scales carbon, energy and water impact column-wise by each
// column's maximum, so the largest value of a column becomes 1. A column
// whose maximum is not positive is left unchanged. Waste is not scaled.
// The input slice is not modified.
func Normalize(totals []ProductTotal) []ProductTotal {
	out := make([]ProductTotal, len(totals))
	copy(out, totals)
	if len(out) == 0 {
		return out
	}

	var maxCarbon, maxEnergy, maxWater float64
	for i, t := range totals {
		if i == 0 || t.CarbonImpact > maxCarbon {
			maxCarbon = t.CarbonImpact
		}
		if i == 0 || t.EnergyImpact > maxEnergy {
			maxEnergy = t.EnergyImpact
		}
		if i == 0 || t.WaterImpact > maxWater {
			maxWater = t.WaterImpact
		}
	}

	for i := range out {
		if maxCarbon > 0 {
			out[i].CarbonImpact /= maxCarbon
		}
		if maxEnergy > 0 {
			out[i].EnergyImpact /= maxEnergy
		}
		if maxWater > 0 {
			out[i].WaterImpact /= maxWater
		}
	}
	return out
}

// Compare sums carbon, energy and water impact for the selected products and
// expresses each value as a percentage above the minimum of that metric
// within the selection:
//
//	relative = 0                         if min == 0
//	relative = (value - min) / min * 100 otherwise
//
// The baseline depends on the selection, so comparing a different subset
// changes the relative values of the same products. An empty selection, or
// one matching no rows, yields an empty result.
func Compare(rows []ImpactRow, productIDs []string) []ComparisonRow {
	if len(productIDs) == 0 {
		return []ComparisonRow{}
	}

	selected := make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		selected[id] = true
	}

	filtered := make([]ImpactRow, 0, len(rows))
	for _, r := range rows {
		if selected[r.ProductID] {
			filtered = append(filtered, r)
		}
	}
	totals := Totals(filtered)

	out := make([]ComparisonRow, len(totals))
	if len(totals) == 0 {
		return out
	}

	minCarbon, minEnergy, minWater := totals[0].CarbonImpact, totals[0].EnergyImpact, totals[0].WaterImpact
	for _, t := range totals[1:] {
		minCarbon = min(minCarbon, t.CarbonImpact)
		minEnergy = min(minEnergy, t.EnergyImpact)
		minWater = min(minWater, t.WaterImpact)
	}

	for i, t := range totals {
		out[i] = ComparisonRow{
			ProductID:      t.ProductID,
			ProductName:    t.ProductName,
			CarbonImpact:   t.CarbonImpact,
			EnergyImpact:   t.EnergyImpact,
			WaterImpact:    t.WaterImpact,
			CarbonRelative: relativeToMin(t.CarbonImpact, minCarbon),
			EnergyRelative: relativeToMin(t.EnergyImpact, minEnergy),
			WaterRelative:  relativeToMin(t.WaterImpact, minWater),
		}
	}
	return out
}

const percent = 100

func relativeToMin(v, lowest float64) float64 {
	if lowest == 0 {
		return 0
	}
	return (v - lowest) / lowest * percent
}
