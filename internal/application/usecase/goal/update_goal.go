// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update.
// Nil fields keep their stored value.
type UpdateGoalInput struct {
	GoalID        uuid.UUID
	UserID        uuid.UUID
	Title         *string
	Description   *string
	Timeframe     *entity.Timeframe
	StartDate     *time.Time
	EndDate       *time.Time
	ClearEndDate  bool
	Status        *entity.GoalStatus
	Priority      *entity.GoalPriority
	TargetValue   *decimal.Decimal
	CurrentValue  *decimal.Decimal
	ClearMetric   bool
	CategoryID    *uuid.UUID
	ClearCategory bool
	ParentID      *uuid.UUID
	ClearParent   bool
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal     *entity.Goal
	Progress float64
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo     adapter.GoalRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, categoryRepo adapter.CategoryRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	// Work on a copy so a rejected patch leaves the loaded record untouched.
	next := *goal

	if input.Title != nil {
		title, err := normalizeTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		next.Title = title
	}
	if input.Description != nil {
		next.Description = *input.Description
	}
	if input.Timeframe != nil {
		if err := validateTimeframe(*input.Timeframe); err != nil {
			return nil, err
		}
		next.Timeframe = *input.Timeframe
	}
	if input.Status != nil {
		if err := validateStatus(*input.Status); err != nil {
			return nil, err
		}
		next.Status = *input.Status
	}
	if input.Priority != nil {
		if err := validatePriority(*input.Priority); err != nil {
			return nil, err
		}
		next.Priority = *input.Priority
	}

	if input.StartDate != nil {
		next.StartDate = *input.StartDate
	}
	switch {
	case input.ClearEndDate && input.EndDate != nil:
		return nil, contradictoryPatch("end date")
	case input.ClearEndDate:
		next.EndDate = nil
	case input.EndDate != nil:
		end := *input.EndDate
		next.EndDate = &end
	}
	if err := validateDateRange(next.StartDate, next.EndDate); err != nil {
		return nil, err
	}

	next.Metric, err = resolveMetric(goal.Metric, input.TargetValue, input.CurrentValue, input.ClearMetric)
	if err != nil {
		return nil, err
	}

	categoryLocked, err := uc.applyParent(ctx, &next, input)
	if err != nil {
		return nil, err
	}
	if !categoryLocked {
		if err := uc.applyCategory(ctx, &next, input); err != nil {
			return nil, err
		}
	}

	next.UpdatedAt = time.Now().UTC()
	if err := uc.goalRepo.Update(ctx, &next); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	subgoals, err := uc.goalRepo.FindByParentID(ctx, next.ID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subgoals: %w", err)
	}

	return &UpdateGoalOutput{
		Goal:     &next,
		Progress: entity.ComputeProgress(&next, subgoals),
	}, nil
}

// applyParent handles a parent change. It reports whether the category was
// copied from the new parent, which takes precedence over the patch.
func (uc *UpdateGoalUseCase) applyParent(ctx context.Context, goal *entity.Goal, input UpdateGoalInput) (bool, error) {
	if input.ClearParent {
		if input.ParentID != nil {
			return false, contradictoryPatch("parent")
		}
		goal.ParentID = nil
		return false, nil
	}
	if input.ParentID == nil {
		return false, nil
	}
	if goal.ParentID != nil && *goal.ParentID == *input.ParentID {
		return false, nil
	}

	if *input.ParentID == goal.ID {
		return false, domainerror.NewGoalError(
			domainerror.ErrCodeSelfParent,
			"a goal cannot be its own parent",
			domainerror.ErrSelfParent,
		)
	}

	parent, err := findParent(ctx, uc.goalRepo, *input.ParentID, input.UserID)
	if err != nil {
		return false, err
	}
	if err := ensureNoCycle(ctx, uc.goalRepo, goal.ID, parent); err != nil {
		return false, err
	}

	goal.ParentID = &parent.ID
	if parent.CategoryID == nil {
		return false, nil
	}
	inherited := *parent.CategoryID
	goal.CategoryID = &inherited
	return true, nil
}

func (uc *UpdateGoalUseCase) applyCategory(ctx context.Context, goal *entity.Goal, input UpdateGoalInput) error {
	if input.ClearCategory {
		if input.CategoryID != nil {
			return contradictoryPatch("category")
		}
		goal.CategoryID = nil
		return nil
	}
	if input.CategoryID == nil {
		return nil
	}
	if goal.CategoryID != nil && *goal.CategoryID == *input.CategoryID {
		return nil
	}

	category, err := findCategory(ctx, uc.categoryRepo, *input.CategoryID, input.UserID)
	if err != nil {
		return err
	}
	goal.CategoryID = &category.ID
	return nil
}

func contradictoryPatch(field string) error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeContradictoryPatch,
		"cannot set and clear the "+field+" in the same request",
		domainerror.ErrContradictoryGoalPatch,
	)
}
