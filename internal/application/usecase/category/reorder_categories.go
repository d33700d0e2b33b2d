// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
)

// ReorderCategoriesInput lists category ids from highest to lowest priority.
type ReorderCategoriesInput struct {
	UserID      uuid.UUID
	CategoryIDs []uuid.UUID
}

// ReorderCategoriesOutput represents the output of reordering categories.
type ReorderCategoriesOutput struct {
	Categories []*entity.Category
}

// ReorderCategoriesUseCase assigns descending priorities from a user-supplied order.
type ReorderCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewReorderCategoriesUseCase creates a new ReorderCategoriesUseCase instance.
func NewReorderCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ReorderCategoriesUseCase {
	return &ReorderCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the reordering. The first id gets priority n, the last gets 1.
func (uc *ReorderCategoriesUseCase) Execute(ctx context.Context, input ReorderCategoriesInput) (*ReorderCategoriesOutput, error) {
	if len(input.CategoryIDs) == 0 {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryOrder,
			"at least one category must be provided",
			domainerror.ErrInvalidCategoryOrder,
		)
	}

	n := len(input.CategoryIDs)
	priorities := make(map[uuid.UUID]int, n)
	for i, id := range input.CategoryIDs {
		if _, dup := priorities[id]; dup {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryOrder,
				fmt.Sprintf("category %s listed more than once", id),
				domainerror.ErrInvalidCategoryOrder,
			)
		}
		if _, err := findOwnedCategory(ctx, uc.categoryRepo, id, input.UserID); err != nil {
			return nil, err
		}
		priorities[id] = n - i
	}

	if err := uc.categoryRepo.UpdatePriorities(ctx, input.UserID, priorities); err != nil {
		return nil, fmt.Errorf("failed to reorder categories: %w", err)
	}

	categories, err := uc.categoryRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ReorderCategoriesOutput{
		Categories: categories,
	}, nil
}
