package vision

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
)

// ListVisionsInput represents the input for listing visions.
type ListVisionsInput struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
}

// ListVisionsOutput represents the output of listing visions.
type ListVisionsOutput struct {
	Visions []*entity.FutureVision
}

// ListVisionsUseCase lists future visions, newest year first.
type ListVisionsUseCase struct {
	visionRepo adapter.FutureVisionRepository
}

// NewListVisionsUseCase creates a new ListVisionsUseCase instance.
func NewListVisionsUseCase(visionRepo adapter.FutureVisionRepository) *ListVisionsUseCase {
	return &ListVisionsUseCase{visionRepo: visionRepo}
}

// Execute performs the vision listing.
func (uc *ListVisionsUseCase) Execute(ctx context.Context, input ListVisionsInput) (*ListVisionsOutput, error) {
	visions, err := uc.visionRepo.FindByUserID(ctx, input.UserID, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list visions: %w", err)
	}
	return &ListVisionsOutput{Visions: visions}, nil
}
