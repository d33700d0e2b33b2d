// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
)

// detailGoalDepth is how many levels of subgoals the category view nests.
const detailGoalDepth = 2

// GetCategoryInput represents the input for getting a category.
type GetCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
}

// GetCategoryOutput represents the output of getting a category.
type GetCategoryOutput struct {
	Detail *entity.CategoryDetail
}

// GetCategoryUseCase returns a category with its visions and goal trees.
type GetCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	goalRepo     adapter.GoalRepository
	visionRepo   adapter.FutureVisionRepository
}

// NewGetCategoryUseCase creates a new GetCategoryUseCase instance.
func NewGetCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	goalRepo adapter.GoalRepository,
	visionRepo adapter.FutureVisionRepository,
) *GetCategoryUseCase {
	return &GetCategoryUseCase{
		categoryRepo: categoryRepo,
		goalRepo:     goalRepo,
		visionRepo:   visionRepo,
	}
}

// Execute performs the category retrieval.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, input GetCategoryInput) (*GetCategoryOutput, error) {
	category, err := findOwnedCategory(ctx, uc.categoryRepo, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	visions, err := uc.visionRepo.FindByUserID(ctx, input.UserID, &category.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load visions: %w", err)
	}

	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	forest := entity.NewGoalForest(goals)

	// Top-level goals of the category. A subgoal whose parent sits in another
	// category is not top-level and is reached through its own parent.
	nodes := make([]*entity.GoalNode, 0)
	for _, g := range forest.Roots() {
		if g.CategoryID != nil && *g.CategoryID == category.ID {
			nodes = append(nodes, forest.Node(g.ID, detailGoalDepth))
		}
	}

	return &GetCategoryOutput{
		Detail: &entity.CategoryDetail{
			Category: category,
			Visions:  visions,
			Goals:    nodes,
		},
	}, nil
}
