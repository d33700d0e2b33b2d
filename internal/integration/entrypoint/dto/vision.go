package dto

import (
	"time"

	"github.com/goal-planner/backend/internal/domain/entity"
)

// CreateVisionRequest represents the request body for future vision creation.
type CreateVisionRequest struct {
	CategoryID  string `json:"category_id" binding:"required,uuid"`
	Description string `json:"description"`
	Year        int    `json:"year" binding:"required"`
}

// UpdateVisionRequest represents the request body for a partial vision update.
type UpdateVisionRequest struct {
	Description       *string `json:"description,omitempty"`
	Year              *int    `json:"year,omitempty"`
	YearEndReflection *string `json:"year_end_reflection,omitempty"`
	ClearReflection   bool    `json:"clear_reflection,omitempty"`
}

// VisionResponse represents a single future vision in API responses.
type VisionResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	CategoryID        string    `json:"category_id"`
	Description       string    `json:"description"`
	Year              int       `json:"year"`
	YearEndReflection *string   `json:"year_end_reflection"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// VisionListResponse represents the response for listing visions.
type VisionListResponse struct {
	Visions []VisionResponse `json:"visions"`
}

// ToVisionResponse converts a domain FutureVision entity to a VisionResponse DTO.
func ToVisionResponse(v *entity.FutureVision) VisionResponse {
	return VisionResponse{
		ID:                v.ID.String(),
		UserID:            v.UserID.String(),
		CategoryID:        v.CategoryID.String(),
		Description:       v.Description,
		Year:              v.Year,
		YearEndReflection: v.YearEndReflection,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

// ToVisionListResponse converts visions to a VisionListResponse DTO.
func ToVisionListResponse(visions []*entity.FutureVision) VisionListResponse {
	out := make([]VisionResponse, 0, len(visions))
	for _, v := range visions {
		out = append(out, ToVisionResponse(v))
	}
	return VisionListResponse{Visions: out}
}
