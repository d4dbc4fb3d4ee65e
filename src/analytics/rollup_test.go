package analytics

import (
	"reflect"
	"testing"
	"time"

	"fintrack-server/src/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyRollupZeroFillsEmptyMonths(t *testing.T) {
	now := date(2025, 6, 15)

	got := MonthlyRollup(nil, now, 4)
	if len(got) != 4 {
		t.Fatalf("got %d buckets, want 4", len(got))
	}
	wantKeys := []string{"2025-03", "2025-04", "2025-05", "2025-06"}
	for i, m := range got {
		if m.Month != wantKeys[i] {
			t.Errorf("bucket[%d].Month = %q, want %q", i, m.Month, wantKeys[i])
		}
		if m.Expenses != 0 || m.Income != 0 {
			t.Errorf("bucket[%d] not zero: %+v", i, m)
		}
	}
}

func TestMonthlyRollupBucketsByTypeAndMonth(t *testing.T) {
	now := date(2025, 6, 15)
	txns := []models.Transaction{
		{Amount: 100.555, Type: models.TypeExpense, Date: date(2025, 6, 1)},
		{Amount: 50, Type: models.TypeExpense, Date: date(2025, 6, 14)},
		{Amount: 2000, Type: models.TypeIncome, Date: date(2025, 6, 2)},
		{Amount: 75, Type: models.TypeExpense, Date: date(2025, 5, 20)},
		// Outside the window: ignored.
		{Amount: 999, Type: models.TypeExpense, Date: date(2024, 12, 1)},
	}

	got := MonthlyRollup(txns, now, 3)
	if len(got) != 3 {
		t.Fatalf("got %d buckets, want 3", len(got))
	}
	may, june := got[1], got[2]
	if may.Expenses != 75 {
		t.Errorf("may expenses = %v, want 75", may.Expenses)
	}
	if june.Expenses != 150.56 {
		t.Errorf("june expenses = %v, want 150.56", june.Expenses)
	}
	if june.Income != 2000 {
		t.Errorf("june income = %v, want 2000", june.Income)
	}
}

func TestMonthlyRollupIdempotent(t *testing.T) {
	now := date(2025, 6, 15)
	txns := []models.Transaction{
		{Amount: 10.10, Type: models.TypeExpense, Date: date(2025, 6, 1)},
		{Amount: 20.20, Type: models.TypeIncome, Date: date(2025, 5, 1)},
	}
	first := MonthlyRollup(txns, now, 6)
	second := MonthlyRollup(txns, now, 6)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("rollup not idempotent: %+v vs %+v", first, second)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	from, to := MonthBounds(2025, time.June)
	txns := []models.Transaction{
		{CategoryID: "food", CategoryName: "Food", CategoryIcon: "F", Amount: 120, Type: models.TypeExpense, Date: date(2025, 6, 3)},
		{CategoryID: "rent", CategoryName: "Rent", CategoryIcon: "R", Amount: 900, Type: models.TypeExpense, Date: date(2025, 6, 1)},
		{CategoryID: "food", CategoryName: "Food", CategoryIcon: "F", Amount: 80, Type: models.TypeExpense, Date: date(2025, 6, 20)},
		// Income and out-of-window rows must not contribute.
		{CategoryID: "salary", Amount: 5000, Type: models.TypeIncome, Date: date(2025, 6, 5)},
		{CategoryID: "food", Amount: 55, Type: models.TypeExpense, Date: date(2025, 5, 30)},
	}

	got := CategoryBreakdown(txns, from, to)
	if len(got) != 2 {
		t.Fatalf("got %d categories, want 2", len(got))
	}
	if got[0].CategoryID != "rent" || got[0].Amount != 900 {
		t.Errorf("top category = %+v, want rent/900", got[0])
	}
	if got[1].CategoryID != "food" || got[1].Amount != 200 {
		t.Errorf("second category = %+v, want food/200", got[1])
	}
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	from, to := MonthBounds(2025, time.June)
	got := CategoryBreakdown(nil, from, to)
	if len(got) != 0 {
		t.Errorf("expected empty breakdown, got %+v", got)
	}
}

func TestSpendByCategory(t *testing.T) {
	txns := []models.Transaction{
		{CategoryID: "a", Amount: 10, Type: models.TypeExpense},
		{CategoryID: "a", Amount: 15, Type: models.TypeExpense},
		{CategoryID: "b", Amount: 7, Type: models.TypeExpense},
		{CategoryID: "a", Amount: 1000, Type: models.TypeIncome},
	}
	got := SpendByCategory(txns)
	if got["a"] != 25 {
		t.Errorf("spend[a] = %v, want 25", got["a"])
	}
	if got["b"] != 7 {
		t.Errorf("spend[b] = %v, want 7", got["b"])
	}
	if _, ok := got["c"]; ok {
		t.Errorf("unexpected category c")
	}
}
