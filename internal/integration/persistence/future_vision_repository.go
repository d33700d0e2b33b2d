// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/persistence/model"
)

// futureVisionRepository implements the adapter.FutureVisionRepository interface.
type futureVisionRepository struct {
	db *gorm.DB
}

// NewFutureVisionRepository creates a new future vision repository instance.
func NewFutureVisionRepository(db *gorm.DB) adapter.FutureVisionRepository {
	return &futureVisionRepository{
		db: db,
	}
}

// Create creates a new vision in the database.
func (r *futureVisionRepository) Create(ctx context.Context, vision *entity.FutureVision) error {
	return translateVisionError(r.db.WithContext(ctx).Create(model.FutureVisionFromEntity(vision)).Error)
}

// FindByID retrieves a vision owned by userID.
func (r *futureVisionRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.FutureVision, error) {
	var visionModel model.FutureVisionModel
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&visionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrVisionNotFound
		}
		return nil, result.Error
	}
	return visionModel.ToEntity(), nil
}

// FindByUserID retrieves visions newest year first.
func (r *futureVisionRepository) FindByUserID(ctx context.Context, userID uuid.UUID, categoryID *uuid.UUID) ([]*entity.FutureVision, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var visionModels []model.FutureVisionModel
	if err := query.Order("year DESC").Order("created_at ASC").Find(&visionModels).Error; err != nil {
		return nil, err
	}

	visions := make([]*entity.FutureVision, len(visionModels))
	for i := range visionModels {
		visions[i] = visionModels[i].ToEntity()
	}
	return visions, nil
}

// ExistsForYear reports whether the (user, category, year) slot is taken.
func (r *futureVisionRepository) ExistsForYear(ctx context.Context, userID, categoryID uuid.UUID, year int, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.FutureVisionModel{}).
		Where("user_id = ? AND category_id = ? AND year = ?", userID, categoryID, year)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update saves an existing vision.
func (r *futureVisionRepository) Update(ctx context.Context, vision *entity.FutureVision) error {
	result := r.db.WithContext(ctx).
		Model(&model.FutureVisionModel{}).
		Where("id = ? AND user_id = ?", vision.ID, vision.UserID).
		Updates(map[string]any{
			"description":         vision.Description,
			"year":                vision.Year,
			"year_end_reflection": vision.YearEndReflection,
			"updated_at":          vision.UpdatedAt,
		})
	if result.Error != nil {
		return translateVisionError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrVisionNotFound
	}
	return nil
}

// Delete removes a vision owned by userID.
func (r *futureVisionRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.FutureVisionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrVisionNotFound
	}
	return nil
}

func translateVisionError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerror.ErrVisionAlreadyExists
	}
	return err
}
