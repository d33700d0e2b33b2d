package goal

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
)

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", domainerror.NewGoalError(
			domainerror.ErrCodeEmptyGoalTitle,
			"title is required",
			domainerror.ErrEmptyGoalTitle,
		)
	}
	return title, nil
}

func validateTimeframe(t entity.Timeframe) error {
	if !t.IsValid() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTimeframe,
			"timeframe must be one of ANNUAL, QUARTERLY, MONTHLY, WEEKLY",
			domainerror.ErrInvalidTimeframe,
		)
	}
	return nil
}

func validateStatus(s entity.GoalStatus) error {
	if !s.IsValid() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalStatus,
			"status must be one of TODO, IN_PROGRESS, COMPLETED, CANCELED",
			domainerror.ErrInvalidGoalStatus,
		)
	}
	return nil
}

func validatePriority(p entity.GoalPriority) error {
	if !p.IsValid() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalPriority,
			"priority must be one of HIGH, MEDIUM, LOW",
			domainerror.ErrInvalidGoalPriority,
		)
	}
	return nil
}

func validateDateRange(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeEndBeforeStart,
			"end date before start date",
			domainerror.ErrEndBeforeStart,
		)
	}
	return nil
}

func invalidMetric(message string) error {
	return domainerror.NewGoalError(domainerror.ErrCodeInvalidMetric, message, domainerror.ErrInvalidMetric)
}

// resolveMetric applies a target/current patch on top of the existing pair.
// A target must be positive and a current value cannot be negative or exist without a target.
func resolveMetric(existing *entity.MetricPair, target, current *decimal.Decimal, clear bool) (*entity.MetricPair, error) {
	if clear {
		if target != nil || current != nil {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeContradictoryPatch,
				"cannot clear and set metric values in the same request",
				domainerror.ErrContradictoryGoalPatch,
			)
		}
		return nil, nil
	}
	if target == nil && current == nil {
		return existing, nil
	}

	var next entity.MetricPair
	switch {
	case target != nil:
		next.Target = *target
		if existing != nil {
			next.Current = existing.Current
		}
	case existing != nil:
		next = *existing
	default:
		return nil, invalidMetric("current value requires a target value")
	}
	if current != nil {
		next.Current = *current
	}

	if !next.Target.IsPositive() {
		return nil, invalidMetric("target value must be greater than zero")
	}
	if next.Current.IsNegative() {
		return nil, invalidMetric("current value cannot be negative")
	}
	return &next, nil
}
