package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rshade/lcafocus/internal/cli/pagination"
	"github.com/rshade/lcafocus/internal/greenops"
	"github.com/rshade/lcafocus/internal/lca"
)

// Impacts renders per-row impacts: the input columns followed by the three
// derived impact columns.
func (r *Renderer) Impacts(rows []lca.ImpactRow) error {
	switch r.opts.Format {
	case FormatJSON:
		return r.writeJSON(nonNil(rows))
	case FormatNDJSON:
		return writeNDJSON(r.w, rows)
	}

	t := table{headers: append(lca.RequiredColumns(), lca.ImpactMetrics()...)}
	for _, row := range rows {
		t.rows = append(t.rows, []string{
			row.ProductID, row.ProductName, row.LifeCycleStage, row.MaterialType,
			r.num(row.QuantityKg), r.num(row.EnergyKwh), r.num(row.TransportKm), row.TransportMode,
			r.num(row.WasteKg), r.num(row.RecyclingRate), r.num(row.LandfillRate), r.num(row.IncinerationRate),
			r.num(row.CarbonFootprintKg), r.num(row.WaterLiters),
			r.num(row.CarbonImpact), r.num(row.EnergyImpact), r.num(row.WaterImpact),
		})
	}
	return r.writeTable(t)
}

// TotalsReport is the payload of the totals view.
type TotalsReport struct {
	Totals      []lca.ProductTotal          `json:"totals"`
	Normalized  bool                        `json:"normalized"`
	Equivalency *greenops.EquivalencyOutput `json:"equivalency,omitempty"`
	Pagination  *pagination.Meta            `json:"pagination,omitempty"`
}

// Totals renders per-product totals. In table form the equivalency sentence
// and page position are printed under the table.
func (r *Renderer) Totals(rep TotalsReport) error {
	switch r.opts.Format {
	case FormatJSON:
		rep.Totals = nonNil(rep.Totals)
		return r.writeJSON(rep)
	case FormatNDJSON:
		return writeNDJSON(r.w, rep.Totals)
	}

	t := table{headers: []string{
		lca.ColProductID, lca.ColProductName,
		lca.ColCarbonImpact, lca.ColEnergyImpact, lca.ColWaterImpact, lca.ColWasteKg,
	}}
	for _, p := range rep.Totals {
		t.rows = append(t.rows, []string{
			p.ProductID, p.ProductName,
			r.num(p.CarbonImpact), r.num(p.EnergyImpact), r.num(p.WaterImpact), r.num(p.WasteKg),
		})
	}
	if rep.Normalized {
		t.footer = append(t.footer, "Values normalized to the largest product per column.")
	}
	if rep.Equivalency != nil && !rep.Equivalency.IsEmpty {
		t.footer = append(t.footer, rep.Equivalency.DisplayText)
	}
	if line := pageLine(rep.Pagination); line != "" {
		t.footer = append(t.footer, line)
	}
	return r.writeTable(t)
}

// ComparisonReport is the payload of the comparison view.
type ComparisonReport struct {
	Products   []lca.ComparisonRow `json:"products"`
	Pagination *pagination.Meta    `json:"pagination,omitempty"`
}

// Comparison renders compared products with each metric's percentage above
// the lowest selected product.
func (r *Renderer) Comparison(rep ComparisonReport) error {
	switch r.opts.Format {
	case FormatJSON:
		rep.Products = nonNil(rep.Products)
		return r.writeJSON(rep)
	case FormatNDJSON:
		return writeNDJSON(r.w, rep.Products)
	}

	headers := []string{lca.ColProductID, lca.ColProductName}
	for _, m := range lca.ImpactMetrics() {
		headers = append(headers, m, m+lca.RelativeSuffix)
	}
	t := table{headers: headers}
	for _, c := range rep.Products {
		row := []string{c.ProductID, c.ProductName}
		for _, m := range lca.ImpactMetrics() {
			v, _ := c.Metric(m)
			rel, _ := c.Metric(m + lca.RelativeSuffix)
			row = append(row, r.num(v), r.num(rel)+"%")
		}
		t.rows = append(t.rows, row)
	}
	if line := pageLine(rep.Pagination); line != "" {
		t.footer = append(t.footer, line)
	}
	return r.writeTable(t)
}

// Breakdown renders a metric grouped by a dimension with each group's share.
func (r *Renderer) Breakdown(rows []lca.BreakdownRow, dimension, metric string) error {
	switch r.opts.Format {
	case FormatJSON:
		return r.writeJSON(breakdownJSON{Dimension: dimension, Metric: metric, Groups: nonNil(rows)})
	case FormatNDJSON:
		return writeNDJSON(r.w, rows)
	}

	t := table{headers: []string{dimension, metric, "share"}}
	for _, b := range rows {
		t.rows = append(t.rows, []string{b.Group, r.num(b.Value), r.percent(b.Share)})
	}
	return r.writeTable(t)
}

type breakdownJSON struct {
	Dimension string             `json:"dimension"`
	Metric    string             `json:"metric"`
	Groups    []lca.BreakdownRow `json:"groups"`
}

// Stages renders one product's per-stage impact profile.
func (r *Renderer) Stages(productID string, rows []lca.StageTotal) error {
	switch r.opts.Format {
	case FormatJSON:
		return r.writeJSON(struct {
			ProductID string           `json:"product_id"`
			Stages    []lca.StageTotal `json:"stages"`
		}{productID, nonNil(rows)})
	case FormatNDJSON:
		return writeNDJSON(r.w, rows)
	}

	t := table{headers: []string{
		lca.ColLifeCycleStage, lca.ColCarbonImpact, lca.ColEnergyImpact, lca.ColWaterImpact, lca.ColWasteKg,
	}}
	for _, s := range rows {
		t.rows = append(t.rows, []string{
			s.LifeCycleStage, r.num(s.CarbonImpact), r.num(s.EnergyImpact), r.num(s.WaterImpact), r.num(s.WasteKg),
		})
	}
	if len(rows) == 0 {
		t.footer = append(t.footer, fmt.Sprintf("No rows for product %q.", productID))
	}
	return r.writeTable(t)
}

// EndOfLife renders one product's per-row disposition rates.
func (r *Renderer) EndOfLife(productID string, rows []lca.EndOfLifeRow) error {
	switch r.opts.Format {
	case FormatJSON:
		return r.writeJSON(struct {
			ProductID string             `json:"product_id"`
			Rows      []lca.EndOfLifeRow `json:"rows"`
		}{productID, nonNil(rows)})
	case FormatNDJSON:
		return writeNDJSON(r.w, rows)
	}

	t := table{headers: []string{
		lca.ColLifeCycleStage, lca.ColMaterialType,
		lca.ColRecyclingRate, lca.ColLandfillRate, lca.ColIncinerationRate,
	}}
	for _, e := range rows {
		t.rows = append(t.rows, []string{
			e.LifeCycleStage, e.MaterialType,
			r.percent(e.RecyclingRate), r.percent(e.LandfillRate), r.percent(e.IncinerationRate),
		})
	}
	if len(rows) == 0 {
		t.footer = append(t.footer, fmt.Sprintf("No rows for product %q.", productID))
	}
	return r.writeTable(t)
}

// correlationLine is one matrix row. Undefined coefficients encode as null.
type correlationLine struct {
	Metric string              `json:"metric"`
	Values map[string]*float64 `json:"values"`
}

// Correlation renders the correlation matrix. Undefined coefficients print
// as "n/a" in tables and null in JSON.
func (r *Renderer) Correlation(m lca.CorrelationMatrix) error {
	lines := make([]correlationLine, len(m.Metrics))
	for i, name := range m.Metrics {
		lines[i] = correlationLine{Metric: name, Values: make(map[string]*float64, len(m.Metrics))}
		for j, other := range m.Metrics {
			v := m.Values[i][j]
			if math.IsNaN(v) {
				lines[i].Values[other] = nil
				continue
			}
			lines[i].Values[other] = &v
		}
	}

	switch r.opts.Format {
	case FormatJSON:
		return r.writeJSON(nonNil(lines))
	case FormatNDJSON:
		return writeNDJSON(r.w, lines)
	}

	t := table{headers: append([]string{"metric"}, m.Metrics...)}
	for i, name := range m.Metrics {
		row := []string{name}
		for j := range m.Metrics {
			v := m.Values[i][j]
			if math.IsNaN(v) {
				row = append(row, "n/a")
				continue
			}
			row = append(row, strconv.FormatFloat(v, 'f', max(r.opts.Precision, 2), 64))
		}
		t.rows = append(t.rows, row)
	}
	return r.writeTable(t)
}

// Factors renders the flattened factor table.
func (r *Renderer) Factors(entries []lca.FactorEntry) error {
	switch r.opts.Format {
	case FormatJSON:
		return r.writeJSON(nonNil(entries))
	case FormatNDJSON:
		return writeNDJSON(r.w, entries)
	}

	t := table{headers: []string{
		lca.ColMaterialType, lca.ColLifeCycleStage, lca.ColCarbonImpact, lca.ColEnergyImpact, lca.ColWaterImpact,
	}}
	for _, e := range entries {
		t.rows = append(t.rows, []string{
			e.MaterialType, e.LifeCycleStage, r.num(e.CarbonImpact), r.num(e.EnergyImpact), r.num(e.WaterImpact),
		})
	}
	t.footer = append(t.footer, fmt.Sprintf("%d material/stage pairs.", len(entries)))
	return r.writeTable(t)
}

// ValidationResult is the outcome of validating an input table.
type ValidationResult struct {
	Path    string `json:"path"`
	Valid   bool   `json:"valid"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
	Error   string `json:"error,omitempty"`
}

// Validation renders a validation outcome.
func (r *Renderer) Validation(res ValidationResult) error {
	switch r.opts.Format {
	case FormatJSON:
		return r.writeJSON(res)
	case FormatNDJSON:
		return writeNDJSON(r.w, []ValidationResult{res})
	}

	status := "valid"
	if !res.Valid {
		status = "invalid"
	}
	t := table{
		headers: []string{"path", "status", "rows", "columns"},
		rows: [][]string{{
			res.Path, status, greenops.FormatNumber(int64(res.Rows)), strconv.Itoa(res.Columns),
		}},
	}
	if res.Error != "" {
		t.footer = append(t.footer, res.Error)
	}
	return r.writeTable(t)
}

func pageLine(meta *pagination.Meta) string {
	if meta == nil || meta.TotalPages <= 1 {
		return ""
	}
	return fmt.Sprintf("Page %d of %d (%d products).", meta.CurrentPage, meta.TotalPages, meta.TotalItems)
}
