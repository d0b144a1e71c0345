package analytics

import (
	"fmt"
	"time"
)

// trendWeeks is how many weekly buckets feed the forecaster.
const trendWeeks = 4

// Analyze is the engine's sole entry point. It classifies the query,
// runs the analysis path for the selected category over the supplied
// records, and assembles the response. The caller passes the reference
// time explicitly; the engine never reads the wall clock.
//
// Records must already be scoped to the caller's authorization boundary.
// An optional storeFilter narrows the analysis to one store; pass the
// empty string for all stores. Analyze never fails: degenerate input
// degrades to the no-data response or to zeroed figures.
func Analyze(query string, records []DailyRecord, referenceDate time.Time, storeFilter string) AnalysisResponse {
	if len(records) == 0 {
		return NoDataResponse()
	}

	scoped := records
	if storeFilter != "" {
		scoped = NewSelector(records, referenceDate).ByStore(storeFilter)
	}

	sel := NewSelector(scoped, referenceDate)
	monthPrefix := referenceDate.Format("2006-01")
	monthRecords := sel.ByMonthPrefix(monthPrefix)

	in := ComposeInput{
		Today:        Aggregate(sel.ByExactDate(referenceDate.Format(dateLayout))),
		Month:        Aggregate(monthRecords),
		MonthLabel:   fmt.Sprintf("%d年%d月", referenceDate.Year(), int(referenceDate.Month())),
		MonthRecords: monthRecords,
	}

	category := Classify(query)
	switch category {
	case CategoryStoreComparison:
		in.Rankings = Rank(scoped)
		if note, ok := RemediationNote(in.Rankings); ok {
			in.RemediationNote = note
		}
	case CategoryForecast:
		in.Buckets = sel.WeeklyBuckets(trendWeeks)
		f := Forecast(in.Buckets)
		in.Forecast = &f
	}

	return Compose(category, in)
}
