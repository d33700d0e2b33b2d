package vision

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
)

// DeleteVisionInput represents the input for vision deletion.
type DeleteVisionInput struct {
	VisionID uuid.UUID
	UserID   uuid.UUID
}

// DeleteVisionUseCase handles future vision deletion.
type DeleteVisionUseCase struct {
	visionRepo adapter.FutureVisionRepository
}

// NewDeleteVisionUseCase creates a new DeleteVisionUseCase instance.
func NewDeleteVisionUseCase(visionRepo adapter.FutureVisionRepository) *DeleteVisionUseCase {
	return &DeleteVisionUseCase{visionRepo: visionRepo}
}

// Execute performs the vision deletion.
func (uc *DeleteVisionUseCase) Execute(ctx context.Context, input DeleteVisionInput) error {
	vision, err := findOwnedVision(ctx, uc.visionRepo, input.VisionID, input.UserID)
	if err != nil {
		return err
	}
	if err := uc.visionRepo.Delete(ctx, vision.ID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete vision: %w", err)
	}
	return nil
}
