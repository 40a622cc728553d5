package core

import "fmt"

// Spend at or above this fraction of the budget triggers a warning.
const warningThreshold = 0.8

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Alert flags a budgeted category whose current-month spend is near or over
// its limit.
type Alert struct {
	Category   string   `json:"category"`
	Budget     float64  `json:"budget"`
	Spent      float64  `json:"spent"`
	ExceededBy float64  `json:"exceeded_by"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
}

// ComputeAlerts compares spend per category against configured budgets.
// Categories without a budget never alert; spend defaults to zero for
// budgeted categories with no recorded expenses. Alerts come out in the
// order of the budgets slice.
func ComputeAlerts(budgets []Budget, spentByCategory map[string]float64) []Alert {
	if len(budgets) == 0 {
		return []Alert{}
	}

	alerts := []Alert{}
	for _, b := range budgets {
		spent := spentByCategory[b.Category]
		switch {
		case spent > b.Budget:
			exceededBy := Round2(spent - b.Budget)
			alerts = append(alerts, Alert{
				Category:   b.Category,
				Budget:     b.Budget,
				Spent:      spent,
				ExceededBy: exceededBy,
				Severity:   SeverityDanger,
				Message: fmt.Sprintf("%s budget exceeded by %.0f (spent %.0f / budget %.0f)",
					b.Category, exceededBy, spent, b.Budget),
			})
		case spent >= warningThreshold*b.Budget:
			alerts = append(alerts, Alert{
				Category:   b.Category,
				Budget:     b.Budget,
				Spent:      spent,
				ExceededBy: 0,
				Severity:   SeverityWarning,
				Message: fmt.Sprintf("%s is at %.0f%% of budget (%.0f / %.0f)",
					b.Category, spent/b.Budget*100, spent, b.Budget),
			})
		}
	}

	return alerts
}
