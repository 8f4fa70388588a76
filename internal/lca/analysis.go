package lca

import (
	"fmt"
	"math"
	"sort"
)

// BreakdownRow is one group of a Breakdown.
type BreakdownRow struct {
	Group string  `json:"group"`
	Value float64 `json:"value"`
	Share float64 `json:"share"`
}

// Breakdown sums metric grouped by the dimension column and reports each
// group's share of the grand total. Shares are zero when the total is zero.
// Groups are sorted by value, largest first, then by name.
func Breakdown(rows []ImpactRow, dimension, metric string) ([]BreakdownRow, error) {
	if len(rows) == 0 {
		return []BreakdownRow{}, nil
	}
	if _, ok := rows[0].Dimension(dimension); !ok {
		return nil, fmt.Errorf("unknown breakdown dimension %q", dimension)
	}
	if _, ok := rows[0].Metric(metric); !ok {
		return nil, fmt.Errorf("unknown breakdown metric %q", metric)
	}

	idx := make(map[string]int)
	var out []BreakdownRow
	total := 0.0
	for _, r := range rows {
		g, _ := r.Dimension(dimension)
		v, _ := r.Metric(metric)
		i, ok := idx[g]
		if !ok {
			i = len(out)
			idx[g] = i
			out = append(out, BreakdownRow{Group: g})
		}
		out[i].Value += v
		total += v
	}

	for i := range out {
		if total != 0 {
			out[i].Share = out[i].Value / total
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Group < out[j].Group
	})
	return out, nil
}

// StageTotal holds one life-cycle stage's impacts for a single product.
type StageTotal struct {
	LifeCycleStage string  `json:"life_cycle_stage"`
	CarbonImpact   float64 `json:"carbon_impact"`
	EnergyImpact   float64 `json:"energy_impact"`
	WaterImpact    float64 `json:"water_impact"`
	WasteKg        float64 `json:"waste_generated_kg"`
}

// StageProfile sums the impacts of one product per life-cycle stage. Stages
// are returned in order of first appearance.
func StageProfile(rows []ImpactRow, productID string) []StageTotal {
	idx := make(map[string]int)
	out := []StageTotal{}
	for _, r := range rows {
		if r.ProductID != productID {
			continue
		}
		i, ok := idx[r.LifeCycleStage]
		if !ok {
			i = len(out)
			idx[r.LifeCycleStage] = i
			out = append(out, StageTotal{LifeCycleStage: r.LifeCycleStage})
		}
		out[i].CarbonImpact += r.CarbonImpact
		out[i].EnergyImpact += r.EnergyImpact
		out[i].WaterImpact += r.WaterImpact
		out[i].WasteKg += r.WasteKg
	}
	return out
}

// EndOfLifeRow is the end-of-life disposition of one input row.
type EndOfLifeRow struct {
	LifeCycleStage   string  `json:"life_cycle_stage"`
	MaterialType     string  `json:"material_type"`
	RecyclingRate    float64 `json:"recycling_rate"`
	LandfillRate     float64 `json:"landfill_rate"`
	IncinerationRate float64 `json:"incineration_rate"`
}

// EndOfLife returns the rate triple of every row of one product.
func EndOfLife(rows []ImpactRow, productID string) []EndOfLifeRow {
	out := []EndOfLifeRow{}
	for _, r := range rows {
		if r.ProductID != productID {
			continue
		}
		out = append(out, EndOfLifeRow{
			LifeCycleStage:   r.LifeCycleStage,
			MaterialType:     r.MaterialType,
			RecyclingRate:    r.RecyclingRate,
			LandfillRate:     r.LandfillRate,
			IncinerationRate: r.IncinerationRate,
		})
	}
	return out
}

// CorrelationMetrics returns the columns covered by Correlation, in order.
func CorrelationMetrics() []string {
	return []string{ColCarbonImpact, ColEnergyImpact, ColWaterImpact, ColWasteKg}
}

// CorrelationMatrix is a symmetric Pearson correlation matrix.
type CorrelationMatrix struct {
	Metrics []string    `json:"metrics"`
	Values  [][]float64 `json:"values"`
}

// Correlation computes pairwise Pearson correlation of the impact columns
// and waste across rows. A pair involving a zero-variance column, or fewer
// than two rows, is NaN.
func Correlation(rows []ImpactRow) CorrelationMatrix {
	metrics := CorrelationMetrics()
	cols := make([][]float64, len(metrics))
	for m, name := range metrics {
		cols[m] = make([]float64, len(rows))
		for i, r := range rows {
			cols[m][i], _ = r.Metric(name)
		}
	}

	values := make([][]float64, len(metrics))
	for i := range metrics {
		values[i] = make([]float64, len(metrics))
		for j := range metrics {
			values[i][j] = pearson(cols[i], cols[j])
		}
	}
	return CorrelationMatrix{Metrics: metrics, Values: values}
}

func pearson(x, y []float64) float64 {
	n := len(x)
	if n < 2 {
		return math.NaN()
	}
	var meanX, meanY float64
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= float64(n)
	meanY /= float64(n)

	var cov, varX, varY float64
	for i := range x {
		dx, dy := x[i]-meanX, y[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varX*varY)
}
