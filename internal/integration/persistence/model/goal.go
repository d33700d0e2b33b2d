// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-planner/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
// The tree is stored flat: each row points at its parent by id.
type GoalModel struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID           `gorm:"type:uuid;not null;index"`
	Title        string              `gorm:"type:varchar(255);not null"`
	Description  string              `gorm:"type:text"`
	Timeframe    string              `gorm:"type:varchar(20);not null;default:'ANNUAL'"`
	StartDate    time.Time           `gorm:"type:date;not null"`
	EndDate      *time.Time          `gorm:"type:date"`
	Status       string              `gorm:"type:varchar(20);not null;default:'TODO'"`
	Priority     string              `gorm:"type:varchar(10);not null;default:'MEDIUM'"`
	TargetValue  decimal.NullDecimal `gorm:"type:decimal(18,4)"`
	CurrentValue decimal.NullDecimal `gorm:"type:decimal(18,4)"`
	CategoryID   *uuid.UUID          `gorm:"type:uuid;index"`
	ParentID     *uuid.UUID          `gorm:"type:uuid;index"`
	CreatedAt    time.Time           `gorm:"not null"`
	UpdatedAt    time.Time           `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	var metric *entity.MetricPair
	if m.TargetValue.Valid {
		metric = &entity.MetricPair{Target: m.TargetValue.Decimal}
		if m.CurrentValue.Valid {
			metric.Current = m.CurrentValue.Decimal
		}
	}

	return &entity.Goal{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Timeframe:   entity.Timeframe(m.Timeframe),
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Status:      entity.GoalStatus(m.Status),
		Priority:    entity.GoalPriority(m.Priority),
		Metric:      metric,
		CategoryID:  m.CategoryID,
		ParentID:    m.ParentID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	m := &GoalModel{
		ID:          goal.ID,
		UserID:      goal.UserID,
		Title:       goal.Title,
		Description: goal.Description,
		Timeframe:   string(goal.Timeframe),
		StartDate:   goal.StartDate,
		EndDate:     goal.EndDate,
		Status:      string(goal.Status),
		Priority:    string(goal.Priority),
		CategoryID:  goal.CategoryID,
		ParentID:    goal.ParentID,
		CreatedAt:   goal.CreatedAt,
		UpdatedAt:   goal.UpdatedAt,
	}
	if goal.Metric != nil {
		m.TargetValue = decimal.NewNullDecimal(goal.Metric.Target)
		m.CurrentValue = decimal.NewNullDecimal(goal.Metric.Current)
	}
	return m
}
