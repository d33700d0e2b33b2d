// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
	Priority    int
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, err := validateName(ctx, uc.categoryRepo, input.UserID, input.Name, nil)
	if err != nil {
		return nil, err
	}

	category := entity.NewCategory(input.UserID, name, input.Description, input.Priority)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
