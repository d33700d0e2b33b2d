package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty" binding:"omitempty,max=500"`
	Priority    int    `json:"priority,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
	Priority    *int    `json:"priority,omitempty"`
}

// ReorderCategoriesRequest lists category ids from highest to lowest priority.
type ReorderCategoriesRequest struct {
	CategoryIDs []string `json:"category_ids" binding:"required,min=1"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPreset    bool      `json:"is_preset"`
	Priority    int       `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategoryDetailResponse is a category with its visions and goal trees.
type CategoryDetailResponse struct {
	CategoryResponse
	Visions []VisionResponse   `json:"visions"`
	Goals   []GoalNodeResponse `json:"goals"`
}

// ParseCategoryIDs converts the requested order into uuids.
func (r ReorderCategoriesRequest) ParseCategoryIDs() ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(r.CategoryIDs))
	for _, s := range r.CategoryIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryOrder,
				"invalid category id "+s,
				domainerror.ErrInvalidCategoryOrder,
			)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID.String(),
		UserID:      cat.UserID.String(),
		Name:        cat.Name,
		Description: cat.Description,
		IsPreset:    cat.IsPreset,
		Priority:    cat.Priority,
		CreatedAt:   cat.CreatedAt,
		UpdatedAt:   cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts categories to a CategoryListResponse DTO.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, ToCategoryResponse(cat))
	}
	return CategoryListResponse{Categories: out}
}

// ToCategoryDetailResponse converts a category detail with nested goal trees.
func ToCategoryDetailResponse(detail *entity.CategoryDetail) CategoryDetailResponse {
	response := CategoryDetailResponse{
		CategoryResponse: ToCategoryResponse(detail.Category),
		Visions:          make([]VisionResponse, 0, len(detail.Visions)),
		Goals:            make([]GoalNodeResponse, 0, len(detail.Goals)),
	}
	for _, v := range detail.Visions {
		response.Visions = append(response.Visions, ToVisionResponse(v))
	}
	for _, n := range detail.Goals {
		response.Goals = append(response.Goals, ToGoalNodeResponse(n))
	}
	return response
}
