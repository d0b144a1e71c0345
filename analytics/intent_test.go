package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		query string
		want  Category
	}{
		{"業績サマリー", CategorySummary},
		{"今月のまとめを見せて", CategorySummary},
		{"店舗ごとの売上を比較して", CategoryStoreComparison},
		{"来月の売上予測は？", CategoryForecast},
		{"利益率を改善するには？", CategoryImprovement},
		{"目標の達成状況は？", CategoryGoalTracking},
		{"経費の内訳を教えて", CategoryExpenseBreakdown},
		{"show me a sales FORECAST", CategoryForecast},
		{"こんにちは", CategoryDefault},
		{"", CategoryDefault},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.query), "query: %q", tc.query)
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Queries matching multiple categories resolve to the highest
	// priority one, regardless of keyword position in the string.
	cases := []struct {
		query string
		want  Category
	}{
		{"店舗を改善したい", CategoryStoreComparison},          // comparison beats improvement
		{"予測とサマリーを見せて", CategorySummary},              // summary beats forecast
		{"サマリーと予測を見せて", CategorySummary},              // same, keywords swapped
		{"経費を改善するアドバイスは？", CategoryImprovement},       // improvement beats expense
		{"目標とコストについて", CategoryGoalTracking},           // goal beats expense
		{"store comparison and forecast", CategoryStoreComparison},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.query), "query: %q", tc.query)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("SUMMARY please"), Classify("summary please"))
	assert.Equal(t, CategorySummary, Classify("Business SUMMARY"))
}
