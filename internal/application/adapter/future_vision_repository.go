// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/domain/entity"
)

// FutureVisionRepository defines the interface for future vision persistence operations.
type FutureVisionRepository interface {
	// Create persists a new vision. Returns domainerror.ErrVisionAlreadyExists
	// when the (user, category, year) slot is taken.
	Create(ctx context.Context, vision *entity.FutureVision) error

	// FindByID retrieves a vision owned by userID. Returns domainerror.ErrVisionNotFound otherwise.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.FutureVision, error)

	// FindByUserID retrieves the visions of userID, newest year first, optionally for one category.
	FindByUserID(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID) ([]*entity.FutureVision, error)

	// ExistsForYear reports whether a vision exists for (userID, categoryID, year).
	// excludeID, when set, is left out of the check.
	ExistsForYear(ctx context.Context, userID, categoryID uuid.UUID, year int, excludeID *uuid.UUID) (bool, error)

	// Update saves an existing vision. Returns domainerror.ErrVisionAlreadyExists on a slot collision.
	Update(ctx context.Context, vision *entity.FutureVision) error

	// Delete removes a vision owned by userID.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
