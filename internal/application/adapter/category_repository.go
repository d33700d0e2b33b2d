// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// CreateMany persists several categories in one transaction.
	CreateMany(ctx context.Context, categories []*entity.Category) error

	// FindByID retrieves a category owned by userID. Returns domainerror.ErrCategoryNotFound otherwise.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// FindByUserID retrieves the categories of userID, highest priority first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// ExistsByName reports whether userID has a category with name, ignoring case.
	// excludeID, when set, is left out of the check.
	ExistsByName(ctx context.Context, userID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)

	// Update saves an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// UpdatePriorities sets the priority of each listed category in one transaction.
	UpdatePriorities(ctx context.Context, userID uuid.UUID, priorities map[uuid.UUID]int) error

	// DeleteCascade removes goalIDs (children first), then the category's
	// visions, then the category itself, all in one transaction.
	DeleteCascade(ctx context.Context, userID, categoryID uuid.UUID, goalIDs []uuid.UUID) error
}
