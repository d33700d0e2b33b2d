// Package vision contains future vision use cases.
package vision

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
)

// DefaultYearsAhead is how far into the future a vision may be written.
const DefaultYearsAhead = 10

// yearWindow validates vision years against the current calendar year.
type yearWindow struct {
	yearsAhead int
	now        func() time.Time
}

func newYearWindow(yearsAhead int) yearWindow {
	if yearsAhead <= 0 {
		yearsAhead = DefaultYearsAhead
	}
	return yearWindow{yearsAhead: yearsAhead, now: time.Now}
}

func (w yearWindow) check(year int) error {
	first := w.now().Year()
	last := first + w.yearsAhead
	if year < first || year > last {
		return domainerror.NewVisionError(
			domainerror.ErrCodeVisionYearOutOfRange,
			fmt.Sprintf("year must be between %d and %d", first, last),
			domainerror.ErrVisionYearOutOfRange,
		)
	}
	return nil
}

func normalizeDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", domainerror.NewVisionError(
			domainerror.ErrCodeVisionDescriptionRequired,
			"description is required",
			domainerror.ErrVisionDescriptionRequired,
		)
	}
	return description, nil
}

func visionConflict(year int) error {
	return domainerror.NewVisionError(
		domainerror.ErrCodeVisionAlreadyExists,
		fmt.Sprintf("A vision for %d already exists for this category", year),
		domainerror.ErrVisionAlreadyExists,
	)
}

// ensureYearFree fails with a conflict when the slot is already taken.
func ensureYearFree(ctx context.Context, repo adapter.FutureVisionRepository, userID, categoryID uuid.UUID, year int, excludeID *uuid.UUID) error {
	exists, err := repo.ExistsForYear(ctx, userID, categoryID, year, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check vision year: %w", err)
	}
	if exists {
		return visionConflict(year)
	}
	return nil
}

func findOwnedVision(ctx context.Context, repo adapter.FutureVisionRepository, id, userID uuid.UUID) (*entity.FutureVision, error) {
	v, err := repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrVisionNotFound) {
			return nil, domainerror.NewVisionError(
				domainerror.ErrCodeVisionNotFound,
				"future vision not found",
				domainerror.ErrVisionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find vision: %w", err)
	}
	return v, nil
}

func findCategory(ctx context.Context, repo adapter.CategoryRepository, id, userID uuid.UUID) (*entity.Category, error) {
	c, err := repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewVisionError(
				domainerror.ErrCodeVisionCategoryNotFound,
				"category not found",
				domainerror.ErrVisionCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return c, nil
}

// translateSaveError turns a unique-index collision into the conflict error.
func translateSaveError(err error, year int, action string) error {
	if errors.Is(err, domainerror.ErrVisionAlreadyExists) {
		return visionConflict(year)
	}
	return fmt.Errorf("failed to %s vision: %w", action, err)
}
