package vision

import (
	"context"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
)

// GetVisionInput represents the input for getting a vision.
type GetVisionInput struct {
	VisionID uuid.UUID
	UserID   uuid.UUID
}

// GetVisionOutput represents the output of getting a vision.
type GetVisionOutput struct {
	Vision *entity.FutureVision
}

// GetVisionUseCase handles future vision retrieval.
type GetVisionUseCase struct {
	visionRepo adapter.FutureVisionRepository
}

// NewGetVisionUseCase creates a new GetVisionUseCase instance.
func NewGetVisionUseCase(visionRepo adapter.FutureVisionRepository) *GetVisionUseCase {
	return &GetVisionUseCase{visionRepo: visionRepo}
}

// Execute performs the vision retrieval.
func (uc *GetVisionUseCase) Execute(ctx context.Context, input GetVisionInput) (*GetVisionOutput, error) {
	vision, err := findOwnedVision(ctx, uc.visionRepo, input.VisionID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetVisionOutput{Vision: vision}, nil
}
