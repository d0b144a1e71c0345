package analytics

import (
	"fmt"
	"strconv"
)

// AnalysisResponse is the single object handed back to the chat surface.
// NarrativeText is pre-formatted and must be rendered as-is; the
// visualization is nil for text-only answers.
type AnalysisResponse struct {
	NarrativeText string         `json:"narrative_text"`
	Visualization *Visualization `json:"visualization"`
	Suggestions   []string       `json:"suggestions"`
}

// Visualization is a tagged union over the chart families the frontend
// can render. Type selects the variant; exactly one of the payload
// fields is set. Renderers must treat unknown Type values defensively.
type Visualization struct {
	Type            string              `json:"type"`
	Chart           *ChartData          `json:"chart,omitempty"`
	Comparison      *ComparisonData     `json:"comparison,omitempty"`
	Prediction      *PredictionData     `json:"prediction,omitempty"`
	Recommendations *RecommendationData `json:"recommendations,omitempty"`
	Metrics         *MetricsData        `json:"metrics,omitempty"`
}

// Visualization type tags.
const (
	VizChart           = "chart"
	VizComparison      = "comparison"
	VizPrediction      = "prediction"
	VizRecommendations = "recommendations"
	VizMetrics         = "metrics"
)

// ChartPoint is one labelled value in a series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartData carries a labelled series for bar/pie style charts.
type ChartData struct {
	Title  string       `json:"title"`
	Points []ChartPoint `json:"points"`
}

// ComparisonData carries the store ranking table.
type ComparisonData struct {
	Rankings []StoreRanking `json:"rankings"`
	Note     string         `json:"note,omitempty"`
}

// PredictionData carries the weekly timeline including the synthesized
// forecast bucket, plus the raw forecast figures.
type PredictionData struct {
	Timeline []WeeklyBucket `json:"timeline"`
	Forecast ForecastResult `json:"forecast"`
}

// RecommendationData carries the improvement-plan items.
type RecommendationData struct {
	Items []string `json:"items"`
}

// Metric is one KPI row.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// MetricsData carries the KPI list and, for goal tracking, the progress
// toward the monthly sales goal.
type MetricsData struct {
	Items           []Metric `json:"items"`
	ProgressPercent float64  `json:"progress_percent,omitempty"`
}

// ComposeInput bundles the pre-computed pieces a category may need.
// Fields not used by the selected category stay zero.
type ComposeInput struct {
	Today           PeriodAggregate
	Month           PeriodAggregate
	MonthLabel      string
	MonthRecords    []DailyRecord
	Buckets         []WeeklyBucket
	Forecast        *ForecastResult
	Rankings        []StoreRanking
	RemediationNote string
}

// defaultMonthlySalesGoal is the goal-tracking target until per-store
// goals become configurable.
const defaultMonthlySalesGoal = 3000000

// Qualitative margin bands. Fixed product constants.
const (
	marginBandGood    = 20
	marginBandNeutral = 15
)

var suggestionSets = map[Category][]string{
	CategorySummary: {
		"店舗ごとの比較を見せて",
		"来月の売上予測は？",
		"経費の内訳を教えて",
	},
	CategoryStoreComparison: {
		"今月の業績サマリーを見せて",
		"利益率を改善するには？",
		"売上の予測を教えて",
	},
	CategoryForecast: {
		"今月の業績サマリーを見せて",
		"店舗ごとの売上を比較して",
		"目標の達成状況は？",
	},
	CategoryImprovement: {
		"経費の内訳を教えて",
		"店舗ごとの利益率を比較して",
		"今月の業績サマリーを見せて",
		"来月の売上予測は？",
	},
	CategoryGoalTracking: {
		"来月の売上予測は？",
		"今月の業績サマリーを見せて",
		"利益率を改善するには？",
	},
	CategoryExpenseBreakdown: {
		"利益率を改善するには？",
		"今月の業績サマリーを見せて",
		"店舗ごとの経費を比較して",
	},
	CategoryDefault: {
		"今月の業績サマリーを見せて",
		"店舗ごとの売上を比較して",
		"来月の売上予測は？",
		"経費の内訳を教えて",
	},
}

var noDataSuggestions = []string{
	"日次報告の入力方法を教えて",
	"店舗の登録方法は？",
	"このアシスタントでできることは？",
}

// expense component labels, in the fixed display order.
var expenseLabels = []string{"仕入", "人件費", "水道光熱費", "販促費", "清掃費", "雑費", "通信費", "その他"}

func expenseComponents(records []DailyRecord) []ChartPoint {
	totals := make([]float64, len(expenseLabels))
	for _, r := range records {
		totals[0] += r.PurchaseCost
		totals[1] += r.LaborCost
		totals[2] += r.UtilityCost
		totals[3] += r.PromotionCost
		totals[4] += r.CleaningCost
		totals[5] += r.MiscCost
		totals[6] += r.CommunicationCost
		totals[7] += r.OtherCost
	}
	points := make([]ChartPoint, len(expenseLabels))
	for i, label := range expenseLabels {
		points[i] = ChartPoint{Label: label, Value: totals[i]}
	}
	return points
}

// formatYen renders an amount as "¥1,234,567", rounding to whole yen.
func formatYen(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatFloat(amount, 'f', 0, 64)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-¥" + s
	}
	return "¥" + s
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func marginRemark(margin float64) string {
	switch {
	case margin >= marginBandGood:
		return "利益率は非常に良好です。"
	case margin >= marginBandNeutral:
		return "利益率はおおむね健全な水準です。"
	default:
		return "利益率が低めです。経費の見直しを検討しましょう。"
	}
}

// NoDataResponse is the distinguished answer returned when there are no
// records to analyze at all. It bypasses classification entirely.
func NoDataResponse() AnalysisResponse {
	return AnalysisResponse{
		NarrativeText: "まだ分析できるデータがありません。日次報告を登録すると、売上や利益の分析ができるようになります。",
		Visualization: nil,
		Suggestions:   noDataSuggestions,
	}
}

// Compose assembles the final response for a category from the numeric
// outputs of the other components. Pure assembly: no recomputation
// beyond string formatting.
func Compose(category Category, in ComposeInput) AnalysisResponse {
	switch category {
	case CategorySummary:
		return composeSummary(in)
	case CategoryStoreComparison:
		return composeComparison(in)
	case CategoryForecast:
		return composeForecast(in)
	case CategoryImprovement:
		return composeImprovement(in)
	case CategoryGoalTracking:
		return composeGoalTracking(in)
	case CategoryExpenseBreakdown:
		return composeExpenseBreakdown(in)
	default:
		return composeDefault(in)
	}
}

func composeSummary(in ComposeInput) AnalysisResponse {
	m := in.Month
	narrative := fmt.Sprintf("%sの売上は%s、経費は%s、利益は%s（利益率%s）です。",
		in.MonthLabel, formatYen(m.Sales), formatYen(m.Expenses), formatYen(m.Profit), formatPercent(m.ProfitMargin()))
	if in.Today.RecordCount > 0 {
		narrative += fmt.Sprintf("本日の売上は%sです。", formatYen(in.Today.Sales))
	}
	narrative += marginRemark(m.ProfitMargin())

	viz := &Visualization{
		Type: VizMetrics,
		Metrics: &MetricsData{
			Items: []Metric{
				{Label: "売上", Value: formatYen(m.Sales)},
				{Label: "経費", Value: formatYen(m.Expenses)},
				{Label: "利益", Value: formatYen(m.Profit)},
				{Label: "利益率", Value: formatPercent(m.ProfitMargin())},
			},
		},
	}
	return AnalysisResponse{NarrativeText: narrative, Visualization: viz, Suggestions: suggestionSets[CategorySummary]}
}

func composeComparison(in ComposeInput) AnalysisResponse {
	if len(in.Rankings) == 0 {
		return AnalysisResponse{
			NarrativeText: "比較できる店舗データがありません。",
			Suggestions:   suggestionSets[CategoryStoreComparison],
		}
	}
	top := in.Rankings[0]
	narrative := fmt.Sprintf("%d店舗を比較しました。売上トップは%sで%s（利益率%s）です。",
		len(in.Rankings), top.StoreLabel, formatYen(top.Sales), formatPercent(top.ProfitMarginPercent))
	if in.RemediationNote != "" {
		narrative += in.RemediationNote
	}
	viz := &Visualization{
		Type:       VizComparison,
		Comparison: &ComparisonData{Rankings: in.Rankings, Note: in.RemediationNote},
	}
	return AnalysisResponse{NarrativeText: narrative, Visualization: viz, Suggestions: suggestionSets[CategoryStoreComparison]}
}

func composeForecast(in ComposeInput) AnalysisResponse {
	f := *in.Forecast
	confidence := f.ConfidencePercent
	timeline := append(append([]WeeklyBucket{}, in.Buckets...), WeeklyBucket{
		Label:             "来週(予測)",
		Sales:             f.NextWeekSales,
		IsForecast:        true,
		ConfidencePercent: &confidence,
	})
	trendWord := "横ばい"
	if f.TrendSlope > 0 {
		trendWord = "上昇傾向"
	} else if f.TrendSlope < 0 {
		trendWord = "下降傾向"
	}
	narrative := fmt.Sprintf("直近の売上は%sです。来週の売上は%s、来月は%sと予測されます（信頼度%s）。",
		trendWord, formatYen(f.NextWeekSales), formatYen(f.NextMonthSales), formatPercent(f.ConfidencePercent))
	viz := &Visualization{
		Type:       VizPrediction,
		Prediction: &PredictionData{Timeline: timeline, Forecast: f},
	}
	return AnalysisResponse{NarrativeText: narrative, Visualization: viz, Suggestions: suggestionSets[CategoryForecast]}
}

func composeImprovement(in ComposeInput) AnalysisResponse {
	m := in.Month
	items := []string{
		"売上構成を見直し、粗利の高いメニューの販売比率を上げる",
		"シフトを見直し、アイドルタイムの人件費を抑える",
		"仕入先の相見積もりでロス率と原価を下げる",
		"販促費の費用対効果を週次で確認する",
	}
	// Lead with the heaviest cost component when we have the breakdown.
	points := expenseComponents(in.MonthRecords)
	var heaviest ChartPoint
	for _, p := range points {
		if p.Value > heaviest.Value {
			heaviest = p
		}
	}
	narrative := fmt.Sprintf("%sの利益率は%sです。%s", in.MonthLabel, formatPercent(m.ProfitMargin()), marginRemark(m.ProfitMargin()))
	if heaviest.Value > 0 {
		narrative += fmt.Sprintf("最も大きい経費は%s（%s）です。ここから着手するのが効果的です。",
			heaviest.Label, formatYen(heaviest.Value))
	}
	viz := &Visualization{
		Type:            VizRecommendations,
		Recommendations: &RecommendationData{Items: items},
	}
	return AnalysisResponse{NarrativeText: narrative, Visualization: viz, Suggestions: suggestionSets[CategoryImprovement]}
}

func composeGoalTracking(in ComposeInput) AnalysisResponse {
	m := in.Month
	progress := m.Sales / defaultMonthlySalesGoal * 100
	narrative := fmt.Sprintf("%sの売上は%sで、月間目標%sに対して%sの進捗です。",
		in.MonthLabel, formatYen(m.Sales), formatYen(defaultMonthlySalesGoal), formatPercent(progress))
	if progress >= 100 {
		narrative += "目標を達成しました！"
	}
	viz := &Visualization{
		Type: VizMetrics,
		Metrics: &MetricsData{
			Items: []Metric{
				{Label: "今月の売上", Value: formatYen(m.Sales)},
				{Label: "月間目標", Value: formatYen(defaultMonthlySalesGoal)},
				{Label: "進捗率", Value: formatPercent(progress)},
			},
			ProgressPercent: progress,
		},
	}
	return AnalysisResponse{NarrativeText: narrative, Visualization: viz, Suggestions: suggestionSets[CategoryGoalTracking]}
}

func composeExpenseBreakdown(in ComposeInput) AnalysisResponse {
	m := in.Month
	points := expenseComponents(in.MonthRecords)
	var heaviest ChartPoint
	for _, p := range points {
		if p.Value > heaviest.Value {
			heaviest = p
		}
	}
	narrative := fmt.Sprintf("%sの経費合計は%sです。", in.MonthLabel, formatYen(m.Expenses))
	if heaviest.Value > 0 && m.Expenses > 0 {
		narrative += fmt.Sprintf("最も大きいのは%sの%s（経費全体の%s）です。",
			heaviest.Label, formatYen(heaviest.Value), formatPercent(heaviest.Value/m.Expenses*100))
	}
	viz := &Visualization{
		Type:  VizChart,
		Chart: &ChartData{Title: in.MonthLabel + "の経費内訳", Points: points},
	}
	return AnalysisResponse{NarrativeText: narrative, Visualization: viz, Suggestions: suggestionSets[CategoryExpenseBreakdown]}
}

func composeDefault(in ComposeInput) AnalysisResponse {
	m := in.Month
	narrative := "ご質問ありがとうございます。業績サマリー、店舗比較、売上予測、改善アドバイス、目標の進捗、経費の内訳についてお答えできます。"
	if m.RecordCount > 0 {
		narrative += fmt.Sprintf("ちなみに%sの売上は%sです。", in.MonthLabel, formatYen(m.Sales))
	}
	return AnalysisResponse{NarrativeText: narrative, Visualization: nil, Suggestions: suggestionSets[CategoryDefault]}
}
