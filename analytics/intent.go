package analytics

import "strings"

// Category labels the analysis path selected for a query.
type Category string

const (
	CategorySummary          Category = "summary"
	CategoryStoreComparison  Category = "storeComparison"
	CategoryForecast         Category = "forecast"
	CategoryImprovement      Category = "improvement"
	CategoryGoalTracking     Category = "goalTracking"
	CategoryExpenseBreakdown Category = "expenseBreakdown"
	CategoryDefault          Category = "default"
)

// intentRules is evaluated top to bottom and the first rule with any
// matching keyword wins. The order is load-bearing: a query mentioning
// both stores and improvement resolves to the comparison because it is
// listed first. Matching is case-insensitive substring containment, in
// Japanese and English.
var intentRules = []struct {
	category Category
	keywords []string
}{
	{CategorySummary, []string{
		"サマリー", "summary", "まとめ", "概要", "業績", "overview",
	}},
	{CategoryStoreComparison, []string{
		"店舗", "比較", "ランキング", "store", "compar", "ranking",
	}},
	{CategoryForecast, []string{
		"予測", "予想", "見込み", "来週", "来月", "トレンド", "forecast", "trend",
	}},
	{CategoryImprovement, []string{
		"改善", "アドバイス", "対策", "どうすれば", "improve", "advice",
	}},
	{CategoryGoalTracking, []string{
		"目標", "達成", "進捗", "goal", "target",
	}},
	{CategoryExpenseBreakdown, []string{
		"経費", "費用", "コスト", "内訳", "expense", "cost", "breakdown",
	}},
}

// Classify maps free-form query text onto exactly one category. Queries
// matching nothing fall through to CategoryDefault, which still yields a
// complete response downstream.
func Classify(query string) Category {
	q := strings.ToLower(query)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return rule.category
			}
		}
	}
	return CategoryDefault
}
