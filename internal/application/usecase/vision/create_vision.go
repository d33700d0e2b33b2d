package vision

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
)

// CreateVisionInput represents the input for vision creation.
type CreateVisionInput struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Description string
	Year        int
}

// CreateVisionOutput represents the output of vision creation.
type CreateVisionOutput struct {
	Vision *entity.FutureVision
}

// CreateVisionUseCase handles future vision creation logic.
type CreateVisionUseCase struct {
	visionRepo   adapter.FutureVisionRepository
	categoryRepo adapter.CategoryRepository
	window       yearWindow
}

// NewCreateVisionUseCase creates a new CreateVisionUseCase instance.
func NewCreateVisionUseCase(
	visionRepo adapter.FutureVisionRepository,
	categoryRepo adapter.CategoryRepository,
	yearsAhead int,
) *CreateVisionUseCase {
	return &CreateVisionUseCase{
		visionRepo:   visionRepo,
		categoryRepo: categoryRepo,
		window:       newYearWindow(yearsAhead),
	}
}

// Execute performs the vision creation.
func (uc *CreateVisionUseCase) Execute(ctx context.Context, input CreateVisionInput) (*CreateVisionOutput, error) {
	description, err := normalizeDescription(input.Description)
	if err != nil {
		return nil, err
	}
	if err := uc.window.check(input.Year); err != nil {
		return nil, err
	}

	category, err := findCategory(ctx, uc.categoryRepo, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}
	if err := ensureYearFree(ctx, uc.visionRepo, input.UserID, category.ID, input.Year, nil); err != nil {
		return nil, err
	}

	vision := entity.NewFutureVision(input.UserID, category.ID, description, input.Year)
	if err := uc.visionRepo.Create(ctx, vision); err != nil {
		return nil, translateSaveError(err, input.Year, "create")
	}

	return &CreateVisionOutput{Vision: vision}, nil
}
