package core

import (
	"testing"
	"time"
)

func TestMonthRange(t *testing.T) {
	cases := []struct {
		now       time.Time
		wantStart string
		wantEnd   string
	}{
		{time.Date(2025, 8, 21, 15, 4, 5, 0, time.UTC), "2025-08-01", "2025-09-01"},
		{time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), "2025-12-01", "2026-01-01"},
		{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "2025-01-01", "2025-02-01"},
		{time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), "2024-02-01", "2024-03-01"},
	}
	for _, tc := range cases {
		start, end := MonthRange(tc.now)
		if start != tc.wantStart || end != tc.wantEnd {
			t.Fatalf("MonthRange(%v) = (%q, %q), want (%q, %q)",
				tc.now, start, end, tc.wantStart, tc.wantEnd)
		}
	}
}

func TestMonthLabel(t *testing.T) {
	got := MonthLabel(time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC))
	if got != "August 2025" {
		t.Fatalf("MonthLabel = %q, want %q", got, "August 2025")
	}
}

func TestMonthSummaryTopCategory(t *testing.T) {
	empty := MonthSummary{}
	if top := empty.TopCategory(); top != "" {
		t.Fatalf("empty summary top category = %q, want empty", top)
	}

	s := MonthSummary{
		TotalSpent:   300,
		ExpenseCount: 3,
		ByCategory: []CategoryTotal{
			{Category: "Food", Total: 200},
			{Category: "Bills", Total: 100},
		},
	}
	if top := s.TopCategory(); top != "Food" {
		t.Fatalf("top category = %q, want Food", top)
	}
}
