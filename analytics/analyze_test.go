package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeNoDataShortCircuit(t *testing.T) {
	got := Analyze("業績サマリー", nil, mustDate(t, "2024-06-01"), "")

	assert.Nil(t, got.Visualization)
	assert.NotEmpty(t, got.NarrativeText)
	assert.Equal(t, NoDataResponse(), got)

	// Same response regardless of the query; classification never runs.
	other := Analyze("来月の売上予測は？", []DailyRecord{}, mustDate(t, "2024-06-01"), "")
	assert.Equal(t, got, other)
}

func TestAnalyzeSummaryScenario(t *testing.T) {
	records := []DailyRecord{
		{Date: "2024-06-01", StoreID: "A", StoreName: "本店", Sales: 100000, PurchaseCost: 40000, LaborCost: 20000},
	}
	got := Analyze("業績サマリー", records, mustDate(t, "2024-06-01"), "")

	if got.Visualization == nil {
		t.Fatal("expected a visualization")
	}
	assert.Equal(t, VizMetrics, got.Visualization.Type)
	assert.True(t, strings.Contains(got.NarrativeText, "¥100,000"), "narrative: %s", got.NarrativeText)
	assert.True(t, strings.Contains(got.NarrativeText, "¥60,000"), "narrative: %s", got.NarrativeText)
	assert.True(t, strings.Contains(got.NarrativeText, "¥40,000"), "narrative: %s", got.NarrativeText)
	assert.True(t, strings.Contains(got.NarrativeText, "40.0%"), "narrative: %s", got.NarrativeText)
	assert.GreaterOrEqual(t, len(got.Suggestions), 3)
	assert.LessOrEqual(t, len(got.Suggestions), 5)
}

func TestAnalyzeStoreComparison(t *testing.T) {
	records := []DailyRecord{
		{Date: "2024-06-01", StoreID: "A", StoreName: "本店", Sales: 500000, PurchaseCost: 375000},
		{Date: "2024-06-01", StoreID: "B", StoreName: "駅前店", Sales: 300000, PurchaseCost: 270000},
	}
	got := Analyze("店舗ごとの売上を比較して", records, mustDate(t, "2024-06-15"), "")

	if got.Visualization == nil || got.Visualization.Comparison == nil {
		t.Fatal("expected a comparison visualization")
	}
	assert.Equal(t, VizComparison, got.Visualization.Type)
	rankings := got.Visualization.Comparison.Rankings
	assert.Equal(t, "本店", rankings[0].StoreLabel)
	assert.Equal(t, "駅前店", rankings[1].StoreLabel)
	assert.True(t, strings.Contains(got.Visualization.Comparison.Note, "駅前店"))
	assert.True(t, strings.Contains(got.NarrativeText, "本店"))
}

func TestAnalyzeForecast(t *testing.T) {
	records := []DailyRecord{
		{Date: "2024-06-05", StoreID: "A", Sales: 100},
		{Date: "2024-06-12", StoreID: "A", Sales: 110},
		{Date: "2024-06-19", StoreID: "A", Sales: 120},
		{Date: "2024-06-26", StoreID: "A", Sales: 130},
	}
	got := Analyze("来月の売上予測は？", records, mustDate(t, "2024-06-30"), "")

	if got.Visualization == nil || got.Visualization.Prediction == nil {
		t.Fatal("expected a prediction visualization")
	}
	p := got.Visualization.Prediction
	assert.InDelta(t, 125.0, p.Forecast.NextWeekSales, 1e-9)
	assert.InDelta(t, 541.25, p.Forecast.NextMonthSales, 1e-9)

	// Timeline is the four observed weeks plus one forecast bucket.
	assert.Len(t, p.Timeline, 5)
	last := p.Timeline[len(p.Timeline)-1]
	assert.True(t, last.IsForecast)
	if last.ConfidencePercent == nil {
		t.Fatal("forecast bucket should carry a confidence")
	}
	for _, b := range p.Timeline[:4] {
		assert.False(t, b.IsForecast)
	}
}

func TestAnalyzeStoreFilter(t *testing.T) {
	records := []DailyRecord{
		{Date: "2024-06-01", StoreID: "A", StoreName: "本店", Sales: 100000},
		{Date: "2024-06-01", StoreID: "B", StoreName: "駅前店", Sales: 999999},
	}
	got := Analyze("業績サマリー", records, mustDate(t, "2024-06-01"), "A")

	assert.True(t, strings.Contains(got.NarrativeText, "¥100,000"), "narrative: %s", got.NarrativeText)
	assert.False(t, strings.Contains(got.NarrativeText, "¥1,099,999"), "filter must exclude store B")
}

func TestAnalyzeDefaultCategoryAlwaysAnswers(t *testing.T) {
	records := []DailyRecord{
		{Date: "2024-06-01", StoreID: "A", StoreName: "本店", Sales: 50000},
	}
	got := Analyze("こんにちは", records, mustDate(t, "2024-06-01"), "")

	assert.NotEmpty(t, got.NarrativeText)
	assert.Nil(t, got.Visualization)
	assert.NotEmpty(t, got.Suggestions)
}

func TestAnalyzeExpenseBreakdown(t *testing.T) {
	records := []DailyRecord{
		{Date: "2024-06-01", StoreID: "A", Sales: 100000, PurchaseCost: 30000, LaborCost: 45000, UtilityCost: 5000},
	}
	got := Analyze("経費の内訳を教えて", records, mustDate(t, "2024-06-15"), "")

	if got.Visualization == nil || got.Visualization.Chart == nil {
		t.Fatal("expected a chart visualization")
	}
	assert.Equal(t, VizChart, got.Visualization.Type)
	assert.Len(t, got.Visualization.Chart.Points, 8)
	assert.True(t, strings.Contains(got.NarrativeText, "人件費"), "heaviest component should be named: %s", got.NarrativeText)
}

func TestAnalyzeGoalTracking(t *testing.T) {
	records := []DailyRecord{
		{Date: "2024-06-01", StoreID: "A", Sales: 1500000},
	}
	got := Analyze("目標の達成状況は？", records, mustDate(t, "2024-06-15"), "")

	if got.Visualization == nil || got.Visualization.Metrics == nil {
		t.Fatal("expected a metrics visualization")
	}
	assert.InDelta(t, 50.0, got.Visualization.Metrics.ProgressPercent, 1e-9)
}
