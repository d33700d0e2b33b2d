package goal

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
)

func goalNotFound() error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeGoalNotFound,
		"goal not found",
		domainerror.ErrGoalNotFound,
	)
}

// findOwnedGoal loads a goal and translates a missing record into a coded error.
func findOwnedGoal(ctx context.Context, repo adapter.GoalRepository, id, userID uuid.UUID) (*entity.Goal, error) {
	g, err := repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, goalNotFound()
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	return g, nil
}

// findParent loads a prospective parent goal.
func findParent(ctx context.Context, repo adapter.GoalRepository, id, userID uuid.UUID) (*entity.Goal, error) {
	parent, err := repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeParentGoalNotFound,
				"parent goal not found",
				domainerror.ErrParentGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find parent goal: %w", err)
	}
	return parent, nil
}

// findCategory checks that a category exists and belongs to userID.
func findCategory(ctx context.Context, repo adapter.CategoryRepository, id, userID uuid.UUID) (*entity.Category, error) {
	c, err := repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalCategoryNotFound,
				"category not found",
				domainerror.ErrGoalCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return c, nil
}

// ensureNoCycle walks the ancestors of parent and fails if goalID is among them.
func ensureNoCycle(ctx context.Context, repo adapter.GoalRepository, goalID uuid.UUID, parent *entity.Goal) error {
	visited := map[uuid.UUID]bool{}
	cur := parent
	for cur != nil {
		if cur.ID == goalID {
			return domainerror.NewGoalError(
				domainerror.ErrCodeCircularReference,
				"circular reference: the new parent is a subgoal of this goal",
				domainerror.ErrCircularReference,
			)
		}
		if visited[cur.ID] || cur.ParentID == nil {
			return nil
		}
		visited[cur.ID] = true

		next, err := repo.FindByID(ctx, *cur.ParentID, cur.UserID)
		if err != nil {
			if errors.Is(err, domainerror.ErrGoalNotFound) {
				return nil
			}
			return fmt.Errorf("failed to walk goal ancestors: %w", err)
		}
		cur = next
	}
	return nil
}

// collectSubtree returns rootID and every descendant, children before parents.
// The ids are gathered before anything is deleted.
func collectSubtree(ctx context.Context, repo adapter.GoalRepository, rootID, userID uuid.UUID) ([]uuid.UUID, error) {
	seen := map[uuid.UUID]bool{rootID: true}
	stack := []uuid.UUID{rootID}
	var order []uuid.UUID

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, id)

		children, err := repo.FindByParentID(ctx, id, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load subgoals: %w", err)
		}
		for _, child := range children {
			if !seen[child.ID] {
				seen[child.ID] = true
				stack = append(stack, child.ID)
			}
		}
	}

	// Pre-order puts every parent ahead of its descendants; reversed, children come first.
	slices.Reverse(order)
	return order, nil
}
