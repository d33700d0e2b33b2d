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

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID        uuid.UUID
	Title         string
	Description   string
	Timeframe     *entity.Timeframe // Optional, defaults to ANNUAL
	StartDate     time.Time
	EndDate       *time.Time
	DeriveEndDate bool                 // Fill EndDate from the timeframe when it is not given
	Status        *entity.GoalStatus   // Optional, defaults to TODO
	Priority      *entity.GoalPriority // Optional, defaults to MEDIUM
	TargetValue   *decimal.Decimal
	CurrentValue  *decimal.Decimal
	CategoryID    *uuid.UUID
	ParentID      *uuid.UUID
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal     *entity.Goal
	Progress float64
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo     adapter.GoalRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, categoryRepo adapter.CategoryRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return nil, err
	}
	if input.StartDate.IsZero() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"start date is required",
			domainerror.ErrInvalidGoalDate,
		)
	}

	goal := entity.NewGoal(input.UserID, title, input.StartDate)
	goal.Description = input.Description

	if input.Timeframe != nil {
		if err := validateTimeframe(*input.Timeframe); err != nil {
			return nil, err
		}
		goal.Timeframe = *input.Timeframe
	}
	if input.Status != nil {
		if err := validateStatus(*input.Status); err != nil {
			return nil, err
		}
		goal.Status = *input.Status
	}
	if input.Priority != nil {
		if err := validatePriority(*input.Priority); err != nil {
			return nil, err
		}
		goal.Priority = *input.Priority
	}

	goal.EndDate = input.EndDate
	if goal.EndDate == nil && input.DeriveEndDate {
		end := goal.Timeframe.EndDateFrom(goal.StartDate)
		goal.EndDate = &end
	}
	if err := validateDateRange(goal.StartDate, goal.EndDate); err != nil {
		return nil, err
	}

	goal.Metric, err = resolveMetric(nil, input.TargetValue, input.CurrentValue, false)
	if err != nil {
		return nil, err
	}

	categoryID := input.CategoryID
	if input.ParentID != nil {
		parent, err := findParent(ctx, uc.goalRepo, *input.ParentID, input.UserID)
		if err != nil {
			return nil, err
		}
		goal.ParentID = &parent.ID
		if parent.CategoryID != nil {
			inherited := *parent.CategoryID
			categoryID = &inherited
		}
	}
	if categoryID != nil {
		category, err := findCategory(ctx, uc.categoryRepo, *categoryID, input.UserID)
		if err != nil {
			return nil, err
		}
		goal.CategoryID = &category.ID
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal:     goal,
		Progress: entity.ComputeProgress(goal, nil),
	}, nil
}
