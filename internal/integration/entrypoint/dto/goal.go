package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-planner/backend/internal/application/usecase/goal"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty" binding:"omitempty,max=2000"`
	Timeframe     *string          `json:"timeframe,omitempty"`
	StartDate     string           `json:"start_date"`
	EndDate       *string          `json:"end_date,omitempty"`
	DeriveEndDate bool             `json:"derive_end_date,omitempty"`
	Status        *string          `json:"status,omitempty"`
	Priority      *string          `json:"priority,omitempty"`
	TargetValue   *decimal.Decimal `json:"target_value,omitempty"`
	CurrentValue  *decimal.Decimal `json:"current_value,omitempty"`
	CategoryID    *string          `json:"category_id,omitempty"`
	ParentID      *string          `json:"parent_id,omitempty"`
}

// UpdateGoalRequest represents the request body for a partial goal update.
type UpdateGoalRequest struct {
	Title         *string          `json:"title,omitempty"`
	Description   *string          `json:"description,omitempty" binding:"omitempty,max=2000"`
	Timeframe     *string          `json:"timeframe,omitempty"`
	StartDate     *string          `json:"start_date,omitempty"`
	EndDate       *string          `json:"end_date,omitempty"`
	ClearEndDate  bool             `json:"clear_end_date,omitempty"`
	Status        *string          `json:"status,omitempty"`
	Priority      *string          `json:"priority,omitempty"`
	TargetValue   *decimal.Decimal `json:"target_value,omitempty"`
	CurrentValue  *decimal.Decimal `json:"current_value,omitempty"`
	ClearMetric   bool             `json:"clear_metric,omitempty"`
	CategoryID    *string          `json:"category_id,omitempty"`
	ClearCategory bool             `json:"clear_category,omitempty"`
	ParentID      *string          `json:"parent_id,omitempty"`
	ClearParent   bool             `json:"clear_parent,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Timeframe    string           `json:"timeframe"`
	StartDate    string           `json:"start_date"`
	EndDate      *string          `json:"end_date"`
	Status       string           `json:"status"`
	Priority     string           `json:"priority"`
	TargetValue  *decimal.Decimal `json:"target_value"`
	CurrentValue *decimal.Decimal `json:"current_value"`
	CategoryID   *string          `json:"category_id"`
	ParentID     *string          `json:"parent_id"`
	Progress     float64          `json:"progress"`
	SubgoalCount *int             `json:"subgoal_count,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// GoalNodeResponse is a goal with its nested subgoals.
type GoalNodeResponse struct {
	GoalResponse
	Subgoals []GoalNodeResponse `json:"subgoals"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

func invalidGoalDate(err error) error {
	return domainerror.NewGoalError(domainerror.ErrCodeInvalidGoalDate, err.Error(), domainerror.ErrInvalidGoalDate)
}

func invalidGoalReference(err error) error {
	return domainerror.NewGoalError(domainerror.ErrCodeMissingGoalFields, err.Error(), nil)
}

// ToCreateGoalInput converts the request into use case input.
func (r CreateGoalRequest) ToCreateGoalInput(userID uuid.UUID) (goal.CreateGoalInput, error) {
	input := goal.CreateGoalInput{
		UserID:        userID,
		Title:         r.Title,
		Description:   r.Description,
		DeriveEndDate: r.DeriveEndDate,
		TargetValue:   r.TargetValue,
		CurrentValue:  r.CurrentValue,
	}

	if r.StartDate == "" {
		return input, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"start_date is required",
			domainerror.ErrInvalidGoalDate,
		)
	}
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return input, invalidGoalDate(err)
	}
	input.StartDate = start

	if input.EndDate, err = ParseOptionalDate(r.EndDate); err != nil {
		return input, invalidGoalDate(err)
	}
	if input.CategoryID, err = ParseOptionalID(r.CategoryID); err != nil {
		return input, invalidGoalReference(err)
	}
	if input.ParentID, err = ParseOptionalID(r.ParentID); err != nil {
		return input, invalidGoalReference(err)
	}

	input.Timeframe = optionalTimeframe(r.Timeframe)
	input.Status = optionalStatus(r.Status)
	input.Priority = optionalPriority(r.Priority)
	return input, nil
}

// ToUpdateGoalInput converts the request into use case input.
func (r UpdateGoalRequest) ToUpdateGoalInput(goalID, userID uuid.UUID) (goal.UpdateGoalInput, error) {
	input := goal.UpdateGoalInput{
		GoalID:        goalID,
		UserID:        userID,
		Title:         r.Title,
		Description:   r.Description,
		ClearEndDate:  r.ClearEndDate,
		TargetValue:   r.TargetValue,
		CurrentValue:  r.CurrentValue,
		ClearMetric:   r.ClearMetric,
		ClearCategory: r.ClearCategory,
		ClearParent:   r.ClearParent,
	}

	var err error
	if input.StartDate, err = ParseOptionalDate(r.StartDate); err != nil {
		return input, invalidGoalDate(err)
	}
	if input.EndDate, err = ParseOptionalDate(r.EndDate); err != nil {
		return input, invalidGoalDate(err)
	}
	if input.CategoryID, err = ParseOptionalID(r.CategoryID); err != nil {
		return input, invalidGoalReference(err)
	}
	if input.ParentID, err = ParseOptionalID(r.ParentID); err != nil {
		return input, invalidGoalReference(err)
	}

	input.Timeframe = optionalTimeframe(r.Timeframe)
	input.Status = optionalStatus(r.Status)
	input.Priority = optionalPriority(r.Priority)
	return input, nil
}

func optionalTimeframe(s *string) *entity.Timeframe {
	if s == nil {
		return nil
	}
	v := entity.Timeframe(*s)
	return &v
}

func optionalStatus(s *string) *entity.GoalStatus {
	if s == nil {
		return nil
	}
	v := entity.GoalStatus(*s)
	return &v
}

func optionalPriority(s *string) *entity.GoalPriority {
	if s == nil {
		return nil
	}
	v := entity.GoalPriority(*s)
	return &v
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal, progress float64) GoalResponse {
	response := GoalResponse{
		ID:          g.ID.String(),
		UserID:      g.UserID.String(),
		Title:       g.Title,
		Description: g.Description,
		Timeframe:   string(g.Timeframe),
		StartDate:   formatDate(g.StartDate),
		EndDate:     formatOptionalDate(g.EndDate),
		Status:      string(g.Status),
		Priority:    string(g.Priority),
		CategoryID:  formatOptionalID(g.CategoryID),
		ParentID:    formatOptionalID(g.ParentID),
		Progress:    progress,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}

	if g.Metric != nil {
		target := g.Metric.Target
		current := g.Metric.Current
		response.TargetValue = &target
		response.CurrentValue = &current
	}

	return response
}

// ToGoalNodeResponse converts a goal node and its subgoals recursively.
func ToGoalNodeResponse(n *entity.GoalNode) GoalNodeResponse {
	response := GoalNodeResponse{
		GoalResponse: ToGoalResponse(n.Goal, n.Progress),
		Subgoals:     make([]GoalNodeResponse, 0, len(n.Subgoals)),
	}
	for _, sub := range n.Subgoals {
		response.Subgoals = append(response.Subgoals, ToGoalNodeResponse(sub))
	}
	return response
}

// ToGoalListResponse converts goal summaries to a GoalListResponse DTO.
func ToGoalListResponse(summaries []*goal.GoalSummary) GoalListResponse {
	goals := make([]GoalResponse, 0, len(summaries))
	for _, s := range summaries {
		r := ToGoalResponse(s.Goal, s.Progress)
		count := s.SubgoalCount
		r.SubgoalCount = &count
		goals = append(goals, r)
	}
	return GoalListResponse{Goals: goals}
}
