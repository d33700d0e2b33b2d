package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/domain/entity"
)

// FutureVisionModel represents the future_visions table in the database.
type FutureVisionModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_visions_user_category_year"`
	CategoryID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_visions_user_category_year;index"`
	Year              int       `gorm:"not null;uniqueIndex:idx_visions_user_category_year"`
	Description       string    `gorm:"type:text;not null"`
	YearEndReflection *string   `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName returns the table name for the FutureVisionModel.
func (FutureVisionModel) TableName() string {
	return "future_visions"
}

// ToEntity converts a FutureVisionModel to a domain FutureVision entity.
func (m *FutureVisionModel) ToEntity() *entity.FutureVision {
	return &entity.FutureVision{
		ID:                m.ID,
		UserID:            m.UserID,
		CategoryID:        m.CategoryID,
		Description:       m.Description,
		Year:              m.Year,
		YearEndReflection: m.YearEndReflection,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FutureVisionFromEntity creates a FutureVisionModel from a domain FutureVision entity.
func FutureVisionFromEntity(v *entity.FutureVision) *FutureVisionModel {
	return &FutureVisionModel{
		ID:                v.ID,
		UserID:            v.UserID,
		CategoryID:        v.CategoryID,
		Description:       v.Description,
		Year:              v.Year,
		YearEndReflection: v.YearEndReflection,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}
