// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// DeleteGoalOutput represents the output of goal deletion.
type DeleteGoalOutput struct {
	DeletedIDs []uuid.UUID
}

// DeleteGoalUseCase removes a goal together with all of its subgoals.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	ids, err := collectSubtree(ctx, uc.goalRepo, goal.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.goalRepo.DeleteTree(ctx, input.UserID, ids); err != nil {
		if errors.Is(err, domainerror.ErrGoalSubtreeChanged) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalSubtreeChanged,
				"goal subtree changed during delete",
				err,
			)
		}
		return nil, fmt.Errorf("failed to delete goal: %w", err)
	}

	return &DeleteGoalOutput{DeletedIDs: ids}, nil
}
