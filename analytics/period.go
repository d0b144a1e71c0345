package analytics

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Selector derives record subsets from the full record list relative to a
// fixed reference date. The reference date is injected by the caller so
// that every derived window is reproducible.
type Selector struct {
	records []DailyRecord
	now     time.Time
}

// NewSelector wraps a record list and a reference date. The record slice
// is treated as immutable.
func NewSelector(records []DailyRecord, now time.Time) Selector {
	return Selector{records: records, now: now}
}

// ByExactDate returns the records for a single business day.
func (s Selector) ByExactDate(date string) []DailyRecord {
	var out []DailyRecord
	for _, r := range s.records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

// ByMonthPrefix returns records whose date starts with the given
// "YYYY-MM" string. This is a plain prefix match, not a calendar
// comparison; records with dates in any other format fall through
// silently.
func (s Selector) ByMonthPrefix(month string) []DailyRecord {
	var out []DailyRecord
	for _, r := range s.records {
		if strings.HasPrefix(r.Date, month) {
			out = append(out, r)
		}
	}
	return out
}

// ByStore returns records belonging to one store.
func (s Selector) ByStore(storeID string) []DailyRecord {
	var out []DailyRecord
	for _, r := range s.records {
		if r.StoreID == storeID {
			out = append(out, r)
		}
	}
	return out
}

// LastNDays returns records inside the inclusive window
// [now - n days, now]. Comparison is date-only; time of day on the
// reference timestamp is ignored.
func (s Selector) LastNDays(n int) []DailyRecord {
	upper := s.now.Format(dateLayout)
	lower := s.now.AddDate(0, 0, -n).Format(dateLayout)
	var out []DailyRecord
	for _, r := range s.records {
		if r.Date >= lower && r.Date <= upper {
			out = append(out, r)
		}
	}
	return out
}

// WeeklyBuckets partitions the trailing n weeks into contiguous 7-day
// windows, each aggregated independently, returned in chronological
// order. Days with no records simply contribute nothing, so a sparse
// history degrades to zero-sales buckets rather than an error.
func (s Selector) WeeklyBuckets(n int) []WeeklyBucket {
	buckets := make([]WeeklyBucket, 0, n)
	for i := 0; i < n; i++ {
		end := s.now.AddDate(0, 0, -7*i)
		start := end.AddDate(0, 0, -6)
		upper := end.Format(dateLayout)
		lower := start.Format(dateLayout)

		var window []DailyRecord
		for _, r := range s.records {
			if r.Date >= lower && r.Date <= upper {
				window = append(window, r)
			}
		}
		agg := Aggregate(window)
		buckets = append(buckets, WeeklyBucket{
			Label: start.Format("1/2") + "週",
			Sales: agg.Sales,
		})
	}
	// Built most-recent-first; flip into chronological order.
	for i, j := 0, len(buckets)-1; i < j; i, j = i+1, j-1 {
		buckets[i], buckets[j] = buckets[j], buckets[i]
	}
	return buckets
}
