// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/persistence/model"
)

// inClauseChunk bounds the number of ids bound into a single IN clause.
const inClauseChunk = 500

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	return r.db.WithContext(ctx).Create(model.GoalFromEntity(goal)).Error
}

// FindByID retrieves a goal owned by userID.
func (r *goalRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUserID retrieves all goals for a given user.
func (r *goalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

// FindByParentID retrieves the direct subgoals of parentID.
func (r *goalRepository) FindByParentID(ctx context.Context, parentID, userID uuid.UUID) ([]*entity.Goal, error) {
	return r.find(r.db.WithContext(ctx).Where("parent_id = ? AND user_id = ?", parentID, userID))
}

func (r *goalRepository) find(query *gorm.DB) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := query.Order("start_date ASC").Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i := range goalModels {
		goals[i] = goalModels[i].ToEntity()
	}
	entity.SortGoals(goals)
	return goals, nil
}

// Update saves every column of an existing goal, including cleared ones.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ? AND user_id = ?", goal.ID, goal.UserID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(model.GoalFromEntity(goal))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// DeleteTree removes ids in order inside one transaction.
func (r *goalRepository) DeleteTree(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteGoals(tx, userID, ids)
	})
}

// deleteGoals removes each goal in order and then verifies that no remaining
// goal still points at a removed one. Any deviation aborts the transaction.
func deleteGoals(tx *gorm.DB, userID uuid.UUID, ids []uuid.UUID) error {
	for _, id := range ids {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.GoalModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete goal %s: %w", id, result.Error)
		}
		if result.RowsAffected != 1 {
			return domainerror.ErrGoalSubtreeChanged
		}
	}

	for start := 0; start < len(ids); start += inClauseChunk {
		end := min(start+inClauseChunk, len(ids))
		var orphans int64
		if err := tx.Model(&model.GoalModel{}).Where("parent_id IN ?", ids[start:end]).Count(&orphans).Error; err != nil {
			return fmt.Errorf("failed to check for orphaned subgoals: %w", err)
		}
		if orphans > 0 {
			return domainerror.ErrGoalSubtreeChanged
		}
	}
	return nil
}
