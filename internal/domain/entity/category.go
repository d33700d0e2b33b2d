// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxCategoryNameLength is the longest accepted category name.
const MaxCategoryNameLength = 50

// Category represents a life area that groups future visions and goals.
type Category struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	IsPreset    bool
	Priority    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory creates a new user-defined Category.
func NewCategory(userID uuid.UUID, name, description string, priority int) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// PresetCategory describes one entry of the catalogue seeded for new users.
type PresetCategory struct {
	Name        string
	Description string
}

// PresetCategories is the catalogue seeded for every new user, highest priority first.
var PresetCategories = []PresetCategory{
	{Name: "Health & Fitness", Description: "Physical wellbeing goals"},
	{Name: "Career & Work", Description: "Professional development and work"},
	{Name: "Relationships", Description: "Family, friends, and social connections"},
	{Name: "Finances", Description: "Money management and financial goals"},
	{Name: "Personal Growth", Description: "Learning and self-development"},
}

// NewPresetCategories builds the preset catalogue for userID.
// Priorities descend from len(PresetCategories) to 1 so the catalogue order is kept.
func NewPresetCategories(userID uuid.UUID) []*Category {
	out := make([]*Category, 0, len(PresetCategories))
	for i, p := range PresetCategories {
		c := NewCategory(userID, p.Name, p.Description, len(PresetCategories)-i)
		c.IsPreset = true
		out = append(out, c)
	}
	return out
}

// CategoryDetail is a category with its visions and its goal trees.
type CategoryDetail struct {
	Category *Category
	Visions  []*FutureVision
	Goals    []*GoalNode
}
