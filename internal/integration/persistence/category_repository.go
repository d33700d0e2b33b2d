// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return translateCategoryError(r.db.WithContext(ctx).Create(model.CategoryFromEntity(category)).Error)
}

// CreateMany creates several categories in one transaction.
func (r *categoryRepository) CreateMany(ctx context.Context, categories []*entity.Category) error {
	if len(categories) == 0 {
		return nil
	}
	models := make([]*model.CategoryModel, len(categories))
	for i, c := range categories {
		models[i] = model.CategoryFromEntity(c)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return translateCategoryError(tx.Create(&models).Error)
	})
}

// FindByID retrieves a category owned by userID.
func (r *categoryRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByUserID retrieves the categories of userID, highest priority first.
func (r *categoryRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("priority DESC").
		Order("name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToEntity()
	}
	return categories, nil
}

// ExistsByName reports whether userID already uses name, ignoring case.
func (r *categoryRepository) ExistsByName(ctx context.Context, userID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ? AND user_id = ?", category.ID, category.UserID).
		Updates(map[string]any{
			"name":        category.Name,
			"description": category.Description,
			"priority":    category.Priority,
			"updated_at":  category.UpdatedAt,
		})
	if result.Error != nil {
		return translateCategoryError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}

// UpdatePriorities sets each category's priority within one transaction.
func (r *categoryRepository) UpdatePriorities(ctx context.Context, userID uuid.UUID, priorities map[uuid.UUID]int) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, priority := range priorities {
			result := tx.Model(&model.CategoryModel{}).
				Where("id = ? AND user_id = ?", id, userID).
				Updates(map[string]any{"priority": priority, "updated_at": now})
			if result.Error != nil {
				return fmt.Errorf("failed to update priority for category %s: %w", id, result.Error)
			}
			if result.RowsAffected == 0 {
				return domainerror.ErrCategoryNotFound
			}
		}
		return nil
	})
}

// DeleteCascade removes the goals, then the visions, then the category in one transaction.
func (r *categoryRepository) DeleteCascade(ctx context.Context, userID, categoryID uuid.UUID, goalIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteGoals(tx, userID, goalIDs); err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&model.GoalModel{}).
			Where("category_id = ? AND user_id = ?", categoryID, userID).
			Count(&remaining).Error; err != nil {
			return fmt.Errorf("failed to count category goals: %w", err)
		}
		if remaining > 0 {
			return domainerror.ErrGoalSubtreeChanged
		}

		if err := tx.Where("category_id = ? AND user_id = ?", categoryID, userID).
			Delete(&model.FutureVisionModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete category visions: %w", err)
		}

		result := tx.Where("id = ? AND user_id = ?", categoryID, userID).Delete(&model.CategoryModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete category: %w", result.Error)
		}
		if result.RowsAffected != 1 {
			return domainerror.ErrCategoryNotFound
		}
		return nil
	})
}

func translateCategoryError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerror.ErrCategoryNameExists
	}
	return err
}
