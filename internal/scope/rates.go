package scope

import (
	"github.com/shopspring/decimal"

	"buildpro/internal/model"
)

var hundred = decimal.NewFromInt(100)

// TaskCompletionRate returns the share of completed tasks as a percentage in
// [0,100]. An empty slice rates as 0, not a division error.
func TaskCompletionRate(tasks []model.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Status == model.TaskStatusCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(tasks)) * 100
}

// BudgetUtilization returns spent as a percentage of budget. A nil project or
// a zero budget rates as 0.
func BudgetUtilization(p *model.Project) float64 {
	if p == nil || p.Budget.IsZero() {
		return 0
	}
	ratio, _ := p.Spent.Div(p.Budget).Mul(hundred).Float64()
	return ratio
}
