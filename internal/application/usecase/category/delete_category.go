// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	DeletedGoalIDs []uuid.UUID
}

// DeleteCategoryUseCase removes a category with its goals and visions.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	goalRepo     adapter.GoalRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, goalRepo adapter.GoalRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		goalRepo:     goalRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	category, err := findOwnedCategory(ctx, uc.categoryRepo, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}
	if category.IsPreset {
		return nil, presetProtected("deleted")
	}

	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	goalIDs := categorySubtrees(entity.NewGoalForest(goals), goals, category.ID)

	if err := uc.categoryRepo.DeleteCascade(ctx, input.UserID, category.ID, goalIDs); err != nil {
		if errors.Is(err, domainerror.ErrGoalSubtreeChanged) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalSubtreeChanged,
				"category goals changed during delete",
				err,
			)
		}
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{
		DeletedGoalIDs: goalIDs,
	}, nil
}

// categorySubtrees returns every goal in the category plus all of its
// descendants, children before parents, without duplicates.
func categorySubtrees(forest *entity.GoalForest, goals []*entity.Goal, categoryID uuid.UUID) []uuid.UUID {
	seen := map[uuid.UUID]bool{}
	var ids []uuid.UUID
	for _, g := range goals {
		if g.CategoryID == nil || *g.CategoryID != categoryID || seen[g.ID] {
			continue
		}
		// Start from the highest ancestor still inside the category so
		// subtrees are emitted whole.
		root := g
		for root.ParentID != nil {
			parent, ok := forest.Get(*root.ParentID)
			if !ok || parent.CategoryID == nil || *parent.CategoryID != categoryID || seen[parent.ID] {
				break
			}
			root = parent
		}
		for _, id := range forest.SubtreeIDs(root.ID) {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}
