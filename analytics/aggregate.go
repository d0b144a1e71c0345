package analytics

// PeriodAggregate is the reduced financial summary of a set of daily
// records. Aggregates are additive: aggregating the union of two disjoint
// record sets equals the field-wise sum of their aggregates.
type PeriodAggregate struct {
	Sales       float64 `json:"sales"`
	Expenses    float64 `json:"expenses"`
	Profit      float64 `json:"profit"`
	RecordCount int     `json:"record_count"`
}

// ProfitMargin returns the aggregate profit margin in percent, or 0 when
// the aggregate has no sales.
func (a PeriodAggregate) ProfitMargin() float64 {
	if a.Sales <= 0 {
		return 0
	}
	return a.Profit / a.Sales * 100
}

// Aggregate folds a record set into a PeriodAggregate. An empty input
// yields the zero aggregate. The input slice is never modified.
func Aggregate(records []DailyRecord) PeriodAggregate {
	var agg PeriodAggregate
	for _, r := range records {
		expenses := r.TotalExpenses()
		agg.Sales += r.Sales
		agg.Expenses += expenses
		agg.Profit += r.Sales - expenses
		agg.RecordCount++
	}
	return agg
}
