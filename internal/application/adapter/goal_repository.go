// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
// Every lookup is scoped to the owning user.
type GoalRepository interface {
	// Create persists a new goal.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal owned by userID. Returns domainerror.ErrGoalNotFound otherwise.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error)

	// FindByUserID retrieves every goal owned by userID.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// FindByParentID retrieves the direct subgoals of parentID.
	FindByParentID(ctx context.Context, parentID, userID uuid.UUID) ([]*entity.Goal, error)

	// Update saves every field of an existing goal.
	Update(ctx context.Context, goal *entity.Goal) error

	// DeleteTree removes the given goals in order within one transaction.
	// ids must list children before their parents. Nothing is removed unless
	// every id is removed and no remaining goal points at a removed one.
	DeleteTree(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error
}
