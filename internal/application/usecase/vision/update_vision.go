package vision

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
)

// UpdateVisionInput represents the input for vision update.
type UpdateVisionInput struct {
	VisionID          uuid.UUID
	UserID            uuid.UUID
	Description       *string
	Year              *int
	YearEndReflection *string
	ClearReflection   bool
}

// UpdateVisionOutput represents the output of vision update.
type UpdateVisionOutput struct {
	Vision *entity.FutureVision
}

// UpdateVisionUseCase handles future vision update logic.
type UpdateVisionUseCase struct {
	visionRepo adapter.FutureVisionRepository
	window     yearWindow
}

// NewUpdateVisionUseCase creates a new UpdateVisionUseCase instance.
func NewUpdateVisionUseCase(visionRepo adapter.FutureVisionRepository, yearsAhead int) *UpdateVisionUseCase {
	return &UpdateVisionUseCase{
		visionRepo: visionRepo,
		window:     newYearWindow(yearsAhead),
	}
}

// Execute performs the vision update.
func (uc *UpdateVisionUseCase) Execute(ctx context.Context, input UpdateVisionInput) (*UpdateVisionOutput, error) {
	vision, err := findOwnedVision(ctx, uc.visionRepo, input.VisionID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		description, err := normalizeDescription(*input.Description)
		if err != nil {
			return nil, err
		}
		vision.Description = description
	}

	if input.Year != nil && *input.Year != vision.Year {
		if err := uc.window.check(*input.Year); err != nil {
			return nil, err
		}
		if err := ensureYearFree(ctx, uc.visionRepo, input.UserID, vision.CategoryID, *input.Year, &vision.ID); err != nil {
			return nil, err
		}
		vision.Year = *input.Year
	}

	switch {
	case input.ClearReflection:
		vision.YearEndReflection = nil
	case input.YearEndReflection != nil:
		reflection := *input.YearEndReflection
		vision.YearEndReflection = &reflection
	}

	vision.UpdatedAt = time.Now().UTC()
	if err := uc.visionRepo.Update(ctx, vision); err != nil {
		return nil, translateSaveError(err, vision.Year, "update")
	}

	return &UpdateVisionOutput{Vision: vision}, nil
}
