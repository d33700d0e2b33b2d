package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
)

func findOwnedCategory(ctx context.Context, repo adapter.CategoryRepository, id, userID uuid.UUID) (*entity.Category, error) {
	category, err := repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

// validateName trims name and checks it is non-empty, short enough and unused.
func validateName(ctx context.Context, repo adapter.CategoryRepository, userID uuid.UUID, name string, excludeID *uuid.UUID) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if utf8.RuneCountInString(name) > entity.MaxCategoryNameLength {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("name must be at most %d characters", entity.MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	exists, err := repo.ExistsByName(ctx, userID, name, excludeID)
	if err != nil {
		return "", fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			fmt.Sprintf("a category named %q already exists", name),
			domainerror.ErrCategoryNameExists,
		)
	}
	return name, nil
}

func presetProtected(action string) error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodePresetCategoryProtected,
		"preset categories cannot be "+action,
		domainerror.ErrPresetCategoryProtected,
	)
}
