package analytics

import "math"

// WeeklyBucket is one point on the trend timeline. Forecast buckets are
// synthesized by the forecaster and never originate from real records.
type WeeklyBucket struct {
	Label             string   `json:"label"`
	Sales             float64  `json:"sales"`
	IsForecast        bool     `json:"is_forecast"`
	ConfidencePercent *float64 `json:"confidence_percent,omitempty"`
}

// ForecastResult holds the projected sales figures and the confidence of
// the projection.
type ForecastResult struct {
	NextWeekSales     float64 `json:"next_week_sales"`
	NextMonthSales    float64 `json:"next_month_sales"`
	TrendSlope        float64 `json:"trend_slope"`
	ConfidencePercent float64 `json:"confidence_percent"`
}

// weeksPerMonth converts a weekly projection to a monthly one.
const weeksPerMonth = 4.33

const (
	confidenceFloor = 65
	confidenceCeil  = 90
)

// Forecast projects next-week and next-month sales from weekly totals
// using a two-point linear trend: the slope is taken between the first
// and last bucket and added to the mean. This is a deliberately coarse
// heuristic, not a statistical model; it ignores seasonality and every
// bucket between the endpoints.
//
// Confidence shrinks as the slope grows relative to the average and is
// clamped to [65, 90]. A zero-average history pins confidence at the
// floor so the division never happens. Forecast never fails; degenerate
// input degrades to zeros.
func Forecast(buckets []WeeklyBucket) ForecastResult {
	var sum float64
	for _, b := range buckets {
		sum += b.Sales
	}
	var average float64
	if len(buckets) > 0 {
		average = sum / float64(len(buckets))
	}

	var slope float64
	if len(buckets) > 1 {
		slope = (buckets[len(buckets)-1].Sales - buckets[0].Sales) / float64(len(buckets)-1)
	}

	nextWeek := average + slope

	confidence := float64(confidenceFloor)
	if average > 0 {
		confidence = confidenceCeil - math.Abs(slope)/average*50
		if confidence < confidenceFloor {
			confidence = confidenceFloor
		}
		if confidence > confidenceCeil {
			confidence = confidenceCeil
		}
	}

	return ForecastResult{
		NextWeekSales:     nextWeek,
		NextMonthSales:    nextWeek * weeksPerMonth,
		TrendSlope:        slope,
		ConfidencePercent: confidence,
	}
}
