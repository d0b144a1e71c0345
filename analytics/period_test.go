package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestByExactDate(t *testing.T) {
	sel := NewSelector(sampleRecords(), mustDate(t, "2024-06-03"))
	got := sel.ByExactDate("2024-06-02")
	assert.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "2024-06-02", r.Date)
	}
}

func TestByMonthPrefixIsStringPrefix(t *testing.T) {
	records := []DailyRecord{
		{Date: "2024-06-01", Sales: 100},
		{Date: "2024-07-01", Sales: 200},
		// Differently formatted dates silently miss the prefix filter.
		{Date: "2024/06/02", Sales: 300},
	}
	sel := NewSelector(records, mustDate(t, "2024-06-30"))
	got := sel.ByMonthPrefix("2024-06")
	assert.Len(t, got, 1)
	assert.Equal(t, 100.0, got[0].Sales)
}

func TestByStore(t *testing.T) {
	sel := NewSelector(sampleRecords(), mustDate(t, "2024-06-03"))
	got := sel.ByStore("B")
	assert.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "B", r.StoreID)
	}
}

func TestLastNDaysInclusiveBounds(t *testing.T) {
	records := []DailyRecord{
		{Date: "2024-06-23", Sales: 1}, // one day before the window
		{Date: "2024-06-24", Sales: 2}, // lower bound
		{Date: "2024-06-27", Sales: 3},
		{Date: "2024-06-30", Sales: 4}, // upper bound (reference day)
		{Date: "2024-07-01", Sales: 5}, // future
	}
	sel := NewSelector(records, mustDate(t, "2024-06-30"))
	got := sel.LastNDays(6)
	assert.Len(t, got, 3)
	assert.Equal(t, 9.0, Aggregate(got).Sales)
}

func TestWeeklyBucketsChronological(t *testing.T) {
	records := []DailyRecord{
		{Date: "2024-06-05", Sales: 100}, // week of 6/3-6/9
		{Date: "2024-06-12", Sales: 110}, // week of 6/10-6/16
		{Date: "2024-06-19", Sales: 120}, // week of 6/17-6/23
		{Date: "2024-06-26", Sales: 130}, // week of 6/24-6/30
	}
	sel := NewSelector(records, mustDate(t, "2024-06-30"))
	buckets := sel.WeeklyBuckets(4)

	if len(buckets) != 4 {
		t.Fatalf("expected 4 buckets, got %d", len(buckets))
	}
	want := []float64{100, 110, 120, 130}
	for i, b := range buckets {
		assert.Equal(t, want[i], b.Sales, "bucket %d", i)
		assert.False(t, b.IsForecast)
	}
}

func TestWeeklyBucketsSparseHistory(t *testing.T) {
	// Only one week of data; the older buckets degrade to zero.
	records := []DailyRecord{{Date: "2024-06-28", Sales: 500}}
	sel := NewSelector(records, mustDate(t, "2024-06-30"))
	buckets := sel.WeeklyBuckets(4)

	assert.Len(t, buckets, 4)
	assert.Equal(t, 0.0, buckets[0].Sales)
	assert.Equal(t, 0.0, buckets[1].Sales)
	assert.Equal(t, 0.0, buckets[2].Sales)
	assert.Equal(t, 500.0, buckets[3].Sales)
}
