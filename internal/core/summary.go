package core

import "time"

// CategoryTotal is an amount aggregated by category name.
type CategoryTotal struct {
	Category string
	Total    float64
}

// MonthSummary aggregates one calendar month of spending.
// ByCategory is ordered by total descending.
type MonthSummary struct {
	TotalSpent   float64
	ExpenseCount int
	ByCategory   []CategoryTotal
}

// TopCategory returns the category with the highest spend, or "" when the
// month has no expenses.
func (s MonthSummary) TopCategory() string {
	if len(s.ByCategory) == 0 {
		return ""
	}
	return s.ByCategory[0].Category
}

// MonthRange returns the YYYY-MM-DD bounds of the month containing t:
// the first day of the month and the first day of the next month.
func MonthRange(t time.Time) (start, end string) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	next := first.AddDate(0, 1, 0)
	return first.Format(dateLayout), next.Format(dateLayout)
}

// MonthLabel renders t's month for humans, e.g. "August 2026".
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}
