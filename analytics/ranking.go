package analytics

import (
	"fmt"
	"sort"
)

// StoreRanking is one row of the store comparison table.
type StoreRanking struct {
	StoreLabel          string  `json:"store_label"`
	Sales               float64 `json:"sales"`
	Profit              float64 `json:"profit"`
	ProfitMarginPercent float64 `json:"profit_margin_percent"`
}

// marginGapThreshold is the profit-margin spread, in absolute percentage
// points, above which the worst store gets called out.
const marginGapThreshold = 5

// Rank groups records by store, aggregates each group, and returns the
// groups sorted by sales, highest first. The sort is stable so that
// stores with identical sales keep their first-seen order.
func Rank(records []DailyRecord) []StoreRanking {
	byStore := make(map[string][]DailyRecord)
	var order []string
	for _, r := range records {
		if _, seen := byStore[r.StoreID]; !seen {
			order = append(order, r.StoreID)
		}
		byStore[r.StoreID] = append(byStore[r.StoreID], r)
	}

	rankings := make([]StoreRanking, 0, len(order))
	for _, id := range order {
		group := byStore[id]
		agg := Aggregate(group)
		label := group[0].StoreName
		if label == "" {
			label = id
		}
		rankings = append(rankings, StoreRanking{
			StoreLabel:          label,
			Sales:               agg.Sales,
			Profit:              agg.Profit,
			ProfitMarginPercent: agg.ProfitMargin(),
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Sales > rankings[j].Sales
	})
	return rankings
}

// RemediationNote compares the best and worst profit margins in a
// ranking and, when the gap exceeds the fixed threshold, names the
// worst performer. With fewer than two stores there is nothing to
// compare and no note is produced.
func RemediationNote(rankings []StoreRanking) (string, bool) {
	if len(rankings) < 2 {
		return "", false
	}
	top := rankings[0]
	bottom := rankings[len(rankings)-1]
	gap := top.ProfitMarginPercent - bottom.ProfitMarginPercent
	if gap <= marginGapThreshold {
		return "", false
	}
	note := fmt.Sprintf("%sの利益率は%.1f%%で、%sより%.1fポイント低くなっています。コスト構造の見直しをおすすめします。",
		bottom.StoreLabel, bottom.ProfitMarginPercent, top.StoreLabel, gap)
	return note, true
}
