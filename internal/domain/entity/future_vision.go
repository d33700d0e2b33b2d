package entity

import (
	"time"

	"github.com/google/uuid"
)

// FutureVision is a narrative of the desired state of a category in a given year.
// There is at most one per (user, category, year).
type FutureVision struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	CategoryID        uuid.UUID
	Description       string
	Year              int
	YearEndReflection *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewFutureVision creates a new FutureVision.
func NewFutureVision(userID, categoryID uuid.UUID, description string, year int) *FutureVision {
	now := time.Now().UTC()

	return &FutureVision{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Description: description,
		Year:        year,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
