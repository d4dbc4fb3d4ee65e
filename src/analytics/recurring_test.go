package analytics

import (
	"testing"
	"time"

	"fintrack-server/src/models"
)

func TestDetectRecurringClustersByDescriptionAndAmount(t *testing.T) {
	txns := []models.Transaction{
		{Description: "Netflix Subscription", Amount: 49.99, Type: models.TypeExpense, Date: date(2025, 4, 5)},
		{Description: "Netflix Subscription", Amount: 49.99, Type: models.TypeExpense, Date: date(2025, 5, 5)},
		{Description: "Netflix Subscription", Amount: 49.99, Type: models.TypeExpense, Date: date(2025, 6, 5)},
		// Same description, different amount: must not join the cluster.
		{Description: "Netflix Subscription", Amount: 39.99, Type: models.TypeExpense, Date: date(2025, 3, 5)},
	}

	got := DetectRecurring(txns, MinRecurringOccurrences, RecurringTopN)
	if len(got) != 1 {
		t.Fatalf("got %d clusters, want 1", len(got))
	}
	c := got[0]
	if c.Occurrences != 3 {
		t.Errorf("occurrences = %d, want 3", c.Occurrences)
	}
	if c.Amount != 49.99 {
		t.Errorf("amount = %v, want 49.99", c.Amount)
	}
	if !c.LastDate.Equal(date(2025, 6, 5)) {
		t.Errorf("last date = %v, want 2025-06-05", c.LastDate)
	}
}

func TestDetectRecurringNormalizesDescriptions(t *testing.T) {
	txns := []models.Transaction{
		{Description: "  Spotify Premium ", Amount: 26.99, Type: models.TypeExpense, Date: date(2025, 5, 1)},
		{Description: "spotify premium", Amount: 26.99, Type: models.TypeExpense, Date: date(2025, 6, 1)},
	}
	got := DetectRecurring(txns, 2, 10)
	if len(got) != 1 {
		t.Fatalf("got %d clusters, want 1 (case and whitespace folded)", len(got))
	}
	if got[0].Description != "Spotify Premium" {
		t.Errorf("description = %q, want first-seen raw text", got[0].Description)
	}
}

func TestDetectRecurringUnsortedInput(t *testing.T) {
	// Latest date must be found even when the feed is not date-ordered.
	txns := []models.Transaction{
		{Description: "Gym", Amount: 100, Type: models.TypeExpense, Date: date(2025, 6, 1)},
		{Description: "Gym", Amount: 100, Type: models.TypeExpense, Date: date(2025, 4, 1)},
		{Description: "Gym", Amount: 100, Type: models.TypeExpense, Date: date(2025, 5, 1)},
	}
	got := DetectRecurring(txns, 2, 10)
	if len(got) != 1 || !got[0].LastDate.Equal(date(2025, 6, 1)) {
		t.Fatalf("last date tracking failed: %+v", got)
	}
}

func TestDetectRecurringSkipsNonCandidates(t *testing.T) {
	txns := []models.Transaction{
		{Description: "", Amount: 10, Type: models.TypeExpense, Date: date(2025, 6, 1)},
		{Description: "", Amount: 10, Type: models.TypeExpense, Date: date(2025, 5, 1)},
		{Description: "Salary", Amount: 5000, Type: models.TypeIncome, Date: date(2025, 6, 1)},
		{Description: "Salary", Amount: 5000, Type: models.TypeIncome, Date: date(2025, 5, 1)},
		{Description: "One-off", Amount: 33, Type: models.TypeExpense, Date: date(2025, 6, 1)},
	}
	if got := DetectRecurring(txns, 2, 10); len(got) != 0 {
		t.Errorf("expected no clusters, got %+v", got)
	}
}

func TestDetectRecurringSortAndCap(t *testing.T) {
	var txns []models.Transaction
	add := func(desc string, n int) {
		for i := 0; i < n; i++ {
			txns = append(txns, models.Transaction{
				Description: desc,
				Amount:      10,
				Type:        models.TypeExpense,
				Date:        time.Date(2025, 1, 1+i, 0, 0, 0, 0, time.UTC),
			})
		}
	}
	for i := 0; i < 12; i++ {
		add(string(rune('a'+i))+" charge", 2+i)
	}

	got := DetectRecurring(txns, 2, 10)
	if len(got) != 10 {
		t.Fatalf("got %d clusters, want capped 10", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Occurrences < got[i].Occurrences {
			t.Errorf("clusters not sorted by occurrences desc at %d", i)
		}
	}
	if got[0].Occurrences != 13 {
		t.Errorf("top cluster occurrences = %d, want 13", got[0].Occurrences)
	}
}
