// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
)

// GetGoalInput represents the input for getting a goal.
type GetGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
	// Depth limits how many levels of subgoals are returned; negative means all.
	Depth int
}

// GetGoalOutput represents the output of getting a goal.
type GetGoalOutput struct {
	Node *entity.GoalNode
}

// GetGoalUseCase returns a goal with its subgoals and computed progress.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal retrieval.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	if _, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID); err != nil {
		return nil, err
	}

	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	node := entity.NewGoalForest(goals).Node(input.GoalID, input.Depth)
	if node == nil {
		// Removed between the two reads.
		return nil, goalNotFound()
	}

	return &GetGoalOutput{Node: node}, nil
}
