package lca

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analysisRows() []ImpactRow {
	return []ImpactRow{
		{
			Record: Record{
				ProductID: "P001", MaterialType: "steel", LifeCycleStage: "production", TransportMode: "truck",
				WasteKg: 2, RecyclingRate: 0.7, LandfillRate: 0.2, IncinerationRate: 0.1,
			},
			CarbonImpact: 60, EnergyImpact: 10, WaterImpact: 3,
		},
		{
			Record:       Record{ProductID: "P001", MaterialType: "plastic", LifeCycleStage: "production", WasteKg: 1},
			CarbonImpact: 20, EnergyImpact: 5, WaterImpact: 1,
		},
		{
			Record: Record{
				ProductID: "P001", MaterialType: "steel", LifeCycleStage: "transport", TransportMode: "rail",
				WasteKg: 0,
			},
			CarbonImpact: 20, EnergyImpact: 2, WaterImpact: 0,
		},
		{
			Record:       Record{ProductID: "P002", MaterialType: "wood", LifeCycleStage: "production", WasteKg: 4},
			CarbonImpact: 100, EnergyImpact: 30, WaterImpact: 8,
		},
	}
}

func TestBreakdown(t *testing.T) {
	got, err := Breakdown(analysisRows(), ColMaterialType, ColCarbonImpact)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "wood", got[0].Group)
	assert.Equal(t, 100.0, got[0].Value)
	assert.Equal(t, "steel", got[1].Group)
	assert.Equal(t, 80.0, got[1].Value)
	assert.Equal(t, "plastic", got[2].Group)

	sum := 0.0
	for _, r := range got {
		sum += r.Share
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.InDelta(t, 0.5, got[0].Share, 1e-12)
}

func TestBreakdown_Errors(t *testing.T) {
	_, err := Breakdown(analysisRows(), "colour", ColCarbonImpact)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension")

	_, err = Breakdown(analysisRows(), ColMaterialType, "noise")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metric")

	got, err := Breakdown(nil, "anything", "anything")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBreakdown_ZeroTotal(t *testing.T) {
	zero := []ImpactRow{{Record: Record{MaterialType: "a"}}, {Record: Record{MaterialType: "b"}}}
	got, err := Breakdown(zero, ColMaterialType, ColWaterImpact)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, 0.0, r.Share)
	}
	assert.Equal(t, "a", got[0].Group, "ties are ordered by name")
}

func TestBreakdown_ByTransportMode(t *testing.T) {
	got, err := Breakdown(analysisRows(), ColTransportMode, ColRecyclingRate)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "truck", got[0].Group)
	assert.InDelta(t, 1.0, got[0].Share, 1e-12)
}

func TestStageProfile(t *testing.T) {
	got := StageProfile(analysisRows(), "P001")
	assert.Equal(t, []StageTotal{
		{LifeCycleStage: "production", CarbonImpact: 80, EnergyImpact: 15, WaterImpact: 4, WasteKg: 3},
		{LifeCycleStage: "transport", CarbonImpact: 20, EnergyImpact: 2, WaterImpact: 0, WasteKg: 0},
	}, got)

	assert.Empty(t, StageProfile(analysisRows(), "P404"))
}

func TestEndOfLife(t *testing.T) {
	got := EndOfLife(analysisRows(), "P001")
	require.Len(t, got, 3)
	assert.Equal(t, EndOfLifeRow{
		LifeCycleStage: "production", MaterialType: "steel",
		RecyclingRate: 0.7, LandfillRate: 0.2, IncinerationRate: 0.1,
	}, got[0])
	assert.Len(t, EndOfLife(analysisRows(), "P002"), 1)
	assert.Empty(t, EndOfLife(analysisRows(), "P404"))
}

func TestCorrelation(t *testing.T) {
	m := Correlation(analysisRows())
	require.Equal(t, CorrelationMetrics(), m.Metrics)
	require.Len(t, m.Values, 4)

	for i := range m.Metrics {
		assert.InDelta(t, 1.0, m.Values[i][i], 1e-9, "diagonal for %s", m.Metrics[i])
		for j := range m.Metrics {
			assert.InDelta(t, m.Values[i][j], m.Values[j][i], 1e-12, "symmetry")
			assert.LessOrEqual(t, math.Abs(m.Values[i][j]), 1.0+1e-9)
		}
	}
}

func TestCorrelation_Degenerate(t *testing.T) {
	single := Correlation(analysisRows()[:1])
	assert.True(t, math.IsNaN(single.Values[0][1]))

	flat := []ImpactRow{
		{CarbonImpact: 1, EnergyImpact: 1},
		{CarbonImpact: 2, EnergyImpact: 1},
	}
	m := Correlation(flat)
	assert.True(t, math.IsNaN(m.Values[0][1]), "zero variance energy column")
	assert.InDelta(t, 1.0, m.Values[0][0], 1e-12)
}
