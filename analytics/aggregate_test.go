package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleRecords() []DailyRecord {
	return []DailyRecord{
		{Date: "2024-06-01", StoreID: "A", StoreName: "本店", Sales: 100000, PurchaseCost: 40000, LaborCost: 20000},
		{Date: "2024-06-02", StoreID: "A", StoreName: "本店", Sales: 120000, PurchaseCost: 45000, LaborCost: 25000, UtilityCost: 5000},
		{Date: "2024-06-02", StoreID: "B", StoreName: "駅前店", Sales: 80000, PurchaseCost: 30000, LaborCost: 20000, MiscCost: 2000},
		{Date: "2024-06-03", StoreID: "B", StoreName: "駅前店", Sales: 0, CleaningCost: 3000},
	}
}

func TestAggregateEmpty(t *testing.T) {
	agg := Aggregate(nil)
	assert.Equal(t, PeriodAggregate{}, agg)
	assert.Equal(t, 0.0, agg.ProfitMargin())
}

func TestAggregateProfitIdentity(t *testing.T) {
	records := sampleRecords()
	agg := Aggregate(records)

	var wantSales, wantExpenses float64
	for _, r := range records {
		wantSales += r.Sales
		wantExpenses += r.TotalExpenses()
	}
	assert.Equal(t, wantSales, agg.Sales)
	assert.Equal(t, wantExpenses, agg.Expenses)
	assert.Equal(t, agg.Sales-agg.Expenses, agg.Profit)
	assert.Equal(t, len(records), agg.RecordCount)
}

func TestAggregateAdditivity(t *testing.T) {
	records := sampleRecords()
	whole := Aggregate(records)
	left := Aggregate(records[:2])
	right := Aggregate(records[2:])

	assert.InDelta(t, whole.Sales, left.Sales+right.Sales, 1e-9)
	assert.InDelta(t, whole.Expenses, left.Expenses+right.Expenses, 1e-9)
	assert.InDelta(t, whole.Profit, left.Profit+right.Profit, 1e-9)
	assert.Equal(t, whole.RecordCount, left.RecordCount+right.RecordCount)
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := records[0]
	Aggregate(records)
	assert.Equal(t, before, records[0])
}

func TestProfitMarginZeroSales(t *testing.T) {
	r := DailyRecord{Date: "2024-06-03", Sales: 0, CleaningCost: 3000}
	assert.Equal(t, 0.0, r.ProfitMargin())

	agg := Aggregate([]DailyRecord{r})
	assert.Equal(t, 0.0, agg.ProfitMargin())
	assert.Equal(t, -3000.0, agg.Profit)
}

func TestRecordDerivedFields(t *testing.T) {
	r := DailyRecord{
		Sales: 100000, PurchaseCost: 40000, LaborCost: 20000,
	}
	assert.Equal(t, 60000.0, r.TotalExpenses())
	assert.Equal(t, 40000.0, r.Profit())
	assert.Equal(t, 40.0, r.ProfitMargin())
}
