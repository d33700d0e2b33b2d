// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Timeframe is the granularity bucket of a goal.
type Timeframe string

const (
	TimeframeAnnual    Timeframe = "ANNUAL"
	TimeframeQuarterly Timeframe = "QUARTERLY"
	TimeframeMonthly   Timeframe = "MONTHLY"
	TimeframeWeekly    Timeframe = "WEEKLY"
)

// IsValid reports whether the timeframe is one of the known values.
func (t Timeframe) IsValid() bool {
	switch t {
	case TimeframeAnnual, TimeframeQuarterly, TimeframeMonthly, TimeframeWeekly:
		return true
	}
	return false
}

// EndDateFrom returns the default end date for a goal of this timeframe starting at start.
func (t Timeframe) EndDateFrom(start time.Time) time.Time {
	switch t {
	case TimeframeQuarterly:
		return start.AddDate(0, 3, 0)
	case TimeframeMonthly:
		return start.AddDate(0, 1, 0)
	case TimeframeWeekly:
		return start.AddDate(0, 0, 7)
	default:
		return start.AddDate(1, 0, 0)
	}
}

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusTodo       GoalStatus = "TODO"
	GoalStatusInProgress GoalStatus = "IN_PROGRESS"
	GoalStatusCompleted  GoalStatus = "COMPLETED"
	GoalStatusCanceled   GoalStatus = "CANCELED"
)

// IsValid reports whether the status is one of the known values.
func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusTodo, GoalStatusInProgress, GoalStatusCompleted, GoalStatusCanceled:
		return true
	}
	return false
}

// GoalPriority ranks goals against each other.
type GoalPriority string

const (
	GoalPriorityHigh   GoalPriority = "HIGH"
	GoalPriorityMedium GoalPriority = "MEDIUM"
	GoalPriorityLow    GoalPriority = "LOW"
)

// IsValid reports whether the priority is one of the known values.
func (p GoalPriority) IsValid() bool {
	return p.rank() >= 0
}

// rank orders priorities for listing; lower ranks sort first.
func (p GoalPriority) rank() int {
	switch p {
	case GoalPriorityHigh:
		return 0
	case GoalPriorityMedium:
		return 1
	case GoalPriorityLow:
		return 2
	}
	return -1
}

// MetricPair is the optional numeric target a goal is measured against.
// Target and Current are set and cleared together.
type MetricPair struct {
	Target  decimal.Decimal
	Current decimal.Decimal
}

// Goal represents a trackable objective in a user's goal tree.
// Children reference their parent by id; the tree is never held as pointers.
type Goal struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Timeframe   Timeframe
	StartDate   time.Time
	EndDate     *time.Time
	Status      GoalStatus
	Priority    GoalPriority
	Metric      *MetricPair
	CategoryID  *uuid.UUID
	ParentID    *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewGoal creates a new Goal with default timeframe, status and priority.
func NewGoal(userID uuid.UUID, title string, startDate time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Timeframe: TimeframeAnnual,
		StartDate: startDate,
		Status:    GoalStatusTodo,
		Priority:  GoalPriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsTopLevel reports whether the goal has no parent.
func (g *Goal) IsTopLevel() bool {
	return g.ParentID == nil
}

// GoalNode is a goal together with its computed progress and nested subgoals.
type GoalNode struct {
	Goal     *Goal
	Progress float64
	Subgoals []*GoalNode
}
