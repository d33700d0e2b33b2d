package entity

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ComputeProgress returns the completion percentage of g in [0, 100].
//
// A metric pair with a positive target wins. Otherwise the share of completed
// direct subgoals is used, and a leaf goal falls back to its own status.
// Only the statuses of the direct subgoals are read.
func ComputeProgress(g *Goal, subgoals []*Goal) float64 {
	if g.Metric != nil && g.Metric.Target.IsPositive() {
		pct := g.Metric.Current.Div(g.Metric.Target).Mul(hundred)
		return clampPercent(pct.InexactFloat64())
	}

	if len(subgoals) > 0 {
		completed := 0
		for _, sub := range subgoals {
			if sub.Status == GoalStatusCompleted {
				completed++
			}
		}
		return clampPercent(float64(completed) / float64(len(subgoals)) * 100)
	}

	return StatusProgress(g.Status)
}

// StatusProgress maps a status to its fixed progress value.
func StatusProgress(s GoalStatus) float64 {
	switch s {
	case GoalStatusCompleted:
		return 100
	case GoalStatusInProgress:
		return 50
	default:
		return 0
	}
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
