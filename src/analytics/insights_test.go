package analytics

import (
	"strings"
	"testing"
)

func countType(insights []Insight, typ string) int {
	n := 0
	for _, in := range insights {
		if in.Type == typ {
			n++
		}
	}
	return n
}

func TestGenerateInsightsCategoryDeltas(t *testing.T) {
	current := []CategoryTotal{
		{CategoryID: "a", Name: "Food", Amount: 130},
		{CategoryID: "b", Name: "Transport", Amount: 110},
		{CategoryID: "c", Name: "Fun", Amount: 40},
	}
	prior := []CategoryTotal{
		{CategoryID: "a", Name: "Food", Amount: 100},
		{CategoryID: "b", Name: "Transport", Amount: 100},
		{CategoryID: "c", Name: "Fun", Amount: 100},
	}

	got := GenerateInsights(current, prior, 0, 0, "RON")

	var up, down []Insight
	for _, in := range got {
		switch in.Type {
		case InsightUp:
			up = append(up, in)
		case InsightDown:
			down = append(down, in)
		}
	}
	// a: +30% -> up; b: +10% -> silent; c: -60% -> down.
	if len(up) != 1 || !strings.Contains(up[0].Message, "Food") {
		t.Errorf("up insights = %+v, want one for Food", up)
	}
	if !strings.Contains(up[0].Message, "30%") {
		t.Errorf("up message missing rounded delta: %q", up[0].Message)
	}
	if len(down) != 1 || !strings.Contains(down[0].Message, "Fun") {
		t.Errorf("down insights = %+v, want one for Fun", down)
	}
}

func TestGenerateInsightsSkipsMissingBaseline(t *testing.T) {
	current := []CategoryTotal{{CategoryID: "new", Name: "New", Amount: 500}}
	got := GenerateInsights(current, nil, 0, 0, "EUR")
	if countType(got, InsightUp) != 0 && countType(got, InsightDown) != 0 {
		t.Errorf("category absent from prior month must not trigger a delta: %+v", got)
	}
}

func TestGenerateInsightsTopCategory(t *testing.T) {
	current := []CategoryTotal{
		{CategoryID: "a", Name: "Food", Amount: 200},
		{CategoryID: "b", Name: "Rent", Amount: 900},
	}
	got := GenerateInsights(current, nil, 0, 0, "RON")
	found := false
	for _, in := range got {
		if in.Type == InsightInfo && strings.Contains(in.Message, "Rent is your top spending category") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing top-category insight in %+v", got)
	}
}

func TestGenerateInsightsSavingsRate(t *testing.T) {
	t.Run("positive rate", func(t *testing.T) {
		got := GenerateInsights(nil, nil, 4000, 3000, "RON")
		if len(got) != 1 || got[0].Type != InsightInfo {
			t.Fatalf("got %+v", got)
		}
		if !strings.Contains(got[0].Message, "25%") {
			t.Errorf("rate not rounded into message: %q", got[0].Message)
		}
	})

	t.Run("overspend", func(t *testing.T) {
		got := GenerateInsights(nil, nil, 1000, 1400, "RON")
		if len(got) != 1 || got[0].Type != InsightUp {
			t.Fatalf("got %+v", got)
		}
		if !strings.Contains(got[0].Message, "400 RON") {
			t.Errorf("deficit amount missing: %q", got[0].Message)
		}
	})

	t.Run("zero income emits nothing", func(t *testing.T) {
		got := GenerateInsights(nil, nil, 0, 500, "RON")
		if len(got) != 0 {
			t.Errorf("zero income must not emit a savings-rate insight: %+v", got)
		}
	})
}

func TestGenerateInsightsEmptyMonth(t *testing.T) {
	got := GenerateInsights(nil, nil, 0, 0, "RON")
	if len(got) != 0 {
		t.Errorf("empty month should emit no insights, got %+v", got)
	}
}
