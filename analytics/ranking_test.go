package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankSortsBySalesDescending(t *testing.T) {
	records := []DailyRecord{
		// Store A: sales 500000, expenses 375000 -> margin 25%
		{Date: "2024-06-01", StoreID: "A", StoreName: "本店", Sales: 500000, PurchaseCost: 375000},
		// Store B: sales 300000, expenses 270000 -> margin 10%
		{Date: "2024-06-01", StoreID: "B", StoreName: "駅前店", Sales: 300000, PurchaseCost: 270000},
	}
	rankings := Rank(records)

	if len(rankings) != 2 {
		t.Fatalf("expected 2 rankings, got %d", len(rankings))
	}
	assert.Equal(t, "本店", rankings[0].StoreLabel)
	assert.Equal(t, "駅前店", rankings[1].StoreLabel)
	assert.InDelta(t, 25.0, rankings[0].ProfitMarginPercent, 1e-9)
	assert.InDelta(t, 10.0, rankings[1].ProfitMarginPercent, 1e-9)

	note, ok := RemediationNote(rankings)
	assert.True(t, ok, "margin gap of 15 points should produce a note")
	assert.True(t, strings.Contains(note, "駅前店"), "note should name the worst performer: %s", note)
}

func TestRankStableOnTiedSales(t *testing.T) {
	records := []DailyRecord{
		{Date: "2024-06-01", StoreID: "X", StoreName: "X店", Sales: 100000},
		{Date: "2024-06-01", StoreID: "Y", StoreName: "Y店", Sales: 100000},
	}
	rankings := Rank(records)
	assert.Equal(t, "X店", rankings[0].StoreLabel)
	assert.Equal(t, "Y店", rankings[1].StoreLabel)
}

func TestRankSumsDuplicateDays(t *testing.T) {
	records := []DailyRecord{
		{Date: "2024-06-01", StoreID: "A", StoreName: "本店", Sales: 100},
		{Date: "2024-06-01", StoreID: "A", StoreName: "本店", Sales: 200},
	}
	rankings := Rank(records)
	assert.Len(t, rankings, 1)
	assert.Equal(t, 300.0, rankings[0].Sales)
}

func TestRemediationNoteRequiresTwoGroups(t *testing.T) {
	rankings := Rank([]DailyRecord{
		{Date: "2024-06-01", StoreID: "A", StoreName: "本店", Sales: 100000, PurchaseCost: 90000},
	})
	_, ok := RemediationNote(rankings)
	assert.False(t, ok)
}

func TestRemediationNoteThreshold(t *testing.T) {
	// Gap of exactly 5 points does not trigger a note.
	rankings := []StoreRanking{
		{StoreLabel: "A", Sales: 200, ProfitMarginPercent: 20},
		{StoreLabel: "B", Sales: 100, ProfitMarginPercent: 15},
	}
	_, ok := RemediationNote(rankings)
	assert.False(t, ok)

	rankings[1].ProfitMarginPercent = 14.9
	_, ok = RemediationNote(rankings)
	assert.True(t, ok)
}

func TestRankFallsBackToStoreID(t *testing.T) {
	rankings := Rank([]DailyRecord{{Date: "2024-06-01", StoreID: "S-42", Sales: 10}})
	assert.Equal(t, "S-42", rankings[0].StoreLabel)
}
