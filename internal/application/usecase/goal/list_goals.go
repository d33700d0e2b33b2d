// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
// Every filter is optional.
type ListGoalsInput struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	ParentID   *uuid.UUID
	TopLevel   bool // Only goals without a parent; ignored when ParentID is set
	Timeframe  *entity.Timeframe
	Status     *entity.GoalStatus
}

// GoalSummary is one row of the goal list.
type GoalSummary struct {
	Goal         *entity.Goal
	Progress     float64
	SubgoalCount int
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalSummary
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	if input.Timeframe != nil {
		if err := validateTimeframe(*input.Timeframe); err != nil {
			return nil, err
		}
	}
	if input.Status != nil {
		if err := validateStatus(*input.Status); err != nil {
			return nil, err
		}
	}

	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	forest := entity.NewGoalForest(goals)

	matched := make([]*entity.Goal, 0, len(goals))
	for _, g := range goals {
		if matches(g, input) {
			matched = append(matched, g)
		}
	}
	entity.SortGoals(matched)

	output := &ListGoalsOutput{
		Goals: make([]*GoalSummary, 0, len(matched)),
	}
	for _, g := range matched {
		children := forest.Children(g.ID)
		output.Goals = append(output.Goals, &GoalSummary{
			Goal:         g,
			Progress:     entity.ComputeProgress(g, children),
			SubgoalCount: len(children),
		})
	}

	return output, nil
}

func matches(g *entity.Goal, input ListGoalsInput) bool {
	if input.CategoryID != nil && (g.CategoryID == nil || *g.CategoryID != *input.CategoryID) {
		return false
	}
	switch {
	case input.ParentID != nil:
		if g.ParentID == nil || *g.ParentID != *input.ParentID {
			return false
		}
	case input.TopLevel:
		if !g.IsTopLevel() {
			return false
		}
	}
	if input.Timeframe != nil && g.Timeframe != *input.Timeframe {
		return false
	}
	if input.Status != nil && g.Status != *input.Status {
		return false
	}
	return true
}
