// Package analytics implements the deterministic analytics and forecasting
// engine behind the chat surface. Everything in this package is a pure
// function over in-memory daily report records: callers supply the records
// and the reference time, and the engine never touches the database, the
// clock, or the Gemini API.
package analytics

// DailyRecord is one store's financial report for one business day.
// The date is kept as an ISO "YYYY-MM-DD" string so that lexicographic
// ordering matches calendar ordering.
type DailyRecord struct {
	Date      string  `json:"date"`
	StoreID   string  `json:"store_id"`
	StoreName string  `json:"store_name"`
	Sales     float64 `json:"sales"`

	PurchaseCost      float64 `json:"purchase_cost"`
	LaborCost         float64 `json:"labor_cost"`
	UtilityCost       float64 `json:"utility_cost"`
	PromotionCost     float64 `json:"promotion_cost"`
	CleaningCost      float64 `json:"cleaning_cost"`
	MiscCost          float64 `json:"misc_cost"`
	CommunicationCost float64 `json:"communication_cost"`
	OtherCost         float64 `json:"other_cost"`
}

// TotalExpenses returns the sum of the eight expense components.
// It is recomputed on every call rather than cached on the record.
func (r DailyRecord) TotalExpenses() float64 {
	return r.PurchaseCost + r.LaborCost + r.UtilityCost + r.PromotionCost +
		r.CleaningCost + r.MiscCost + r.CommunicationCost + r.OtherCost
}

// Profit returns sales minus total expenses. May be negative.
func (r DailyRecord) Profit() float64 {
	return r.Sales - r.TotalExpenses()
}

// ProfitMargin returns the profit margin in percent, or 0 when there
// were no sales that day.
func (r DailyRecord) ProfitMargin() float64 {
	if r.Sales <= 0 {
		return 0
	}
	return r.Profit() / r.Sales * 100
}
