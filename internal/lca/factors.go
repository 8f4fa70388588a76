package lca

import (
	"sort"
	"strings"
)

// FactorSource is the nested factor document: material -> stage -> impact
// name -> per-kg multiplier.
type FactorSource map[string]map[string]map[string]float64

// FactorEntry is one flattened row of the factor table.
type FactorEntry struct {
	MaterialType   string  `json:"material_type"`
	LifeCycleStage string  `json:"life_cycle_stage"`
	CarbonImpact   float64 `json:"carbon_impact"`
	EnergyImpact   float64 `json:"energy_impact"`
	WaterImpact    float64 `json:"water_impact"`
}

type factorKey struct {
	material string
	stage    string
}

func newFactorKey(material, stage string) factorKey {
	return factorKey{material: strings.ToLower(material), stage: strings.ToLower(stage)}
}

// FactorTable is the flattened lookup of impact factors keyed by
// (material_type, life_cycle_stage). It is immutable after LoadFactors.
type FactorTable struct {
	index map[factorKey]FactorEntry
	rows  []FactorEntry
}

// LoadFactors flattens src into a FactorTable.
//
// Keys are lower-cased. Impact names other than carbon_impact, energy_impact
// and water_impact are ignored, and a missing name reads as zero. Values are
// not range checked: negative factors model credits such as recycling
// offsets. If two source keys collapse to the same lower-cased pair, the one
// sorting last in the source wins.
func LoadFactors(src FactorSource) *FactorTable {
	ft := &FactorTable{index: make(map[factorKey]FactorEntry)}

	materials := make([]string, 0, len(src))
	for m := range src {
		materials = append(materials, m)
	}
	sort.Strings(materials)

	for _, m := range materials {
		stages := make([]string, 0, len(src[m]))
		for s := range src[m] {
			stages = append(stages, s)
		}
		sort.Strings(stages)

		for _, s := range stages {
			impacts := src[m][s]
			key := newFactorKey(m, s)
			ft.index[key] = FactorEntry{
				MaterialType:   key.material,
				LifeCycleStage: key.stage,
				CarbonImpact:   impacts[ColCarbonImpact],
				EnergyImpact:   impacts[ColEnergyImpact],
				WaterImpact:    impacts[ColWaterImpact],
			}
		}
	}

	ft.rows = make([]FactorEntry, 0, len(ft.index))
	for _, e := range ft.index {
		ft.rows = append(ft.rows, e)
	}
	sort.Slice(ft.rows, func(i, j int) bool {
		if ft.rows[i].MaterialType != ft.rows[j].MaterialType {
			return ft.rows[i].MaterialType < ft.rows[j].MaterialType
		}
		return ft.rows[i].LifeCycleStage < ft.rows[j].LifeCycleStage
	})

	return ft
}

// Lookup returns the factor for a material/stage pair, matched
// case-insensitively. A nil table has no entries.
func (ft *FactorTable) Lookup(material, stage string) (FactorEntry, bool) {
	if ft == nil {
		return FactorEntry{}, false
	}
	e, ok := ft.index[newFactorKey(material, stage)]
	return e, ok
}

// Rows returns a copy of the flattened table sorted by material then stage.
func (ft *FactorTable) Rows() []FactorEntry {
	if ft == nil {
		return nil
	}
	out := make([]FactorEntry, len(ft.rows))
	copy(out, ft.rows)
	return out
}

// Len returns the number of material/stage pairs.
func (ft *FactorTable) Len() int {
	if ft == nil {
		return 0
	}
	return len(ft.rows)
}
