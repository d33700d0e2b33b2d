package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTimeframeEndDateFrom(t *testing.T) {
	start := date(2025, time.January, 15)
	tests := []struct {
		timeframe Timeframe
		want      time.Time
	}{
		{TimeframeAnnual, date(2026, time.January, 15)},
		{TimeframeQuarterly, date(2025, time.April, 15)},
		{TimeframeMonthly, date(2025, time.February, 15)},
		{TimeframeWeekly, date(2025, time.January, 22)},
	}

	for _, tt := range tests {
		t.Run(string(tt.timeframe), func(t *testing.T) {
			if got := tt.timeframe.EndDateFrom(start); !got.Equal(tt.want) {
				t.Errorf("EndDateFrom() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnumValidation(t *testing.T) {
	if Timeframe("DAILY").IsValid() {
		t.Error("DAILY should not be a valid timeframe")
	}
	if GoalStatus("done").IsValid() {
		t.Error("lowercase status should not be valid")
	}
	if GoalPriority("URGENT").IsValid() {
		t.Error("URGENT should not be a valid priority")
	}
	if !GoalPriorityLow.IsValid() || !GoalStatusCanceled.IsValid() || !TimeframeWeekly.IsValid() {
		t.Error("known values should be valid")
	}
}

func TestNewGoal(t *testing.T) {
	userID := uuid.New()
	g := NewGoal(userID, "Learn Go", date(2025, time.March, 1))

	if g.Timeframe != TimeframeAnnual || g.Status != GoalStatusTodo || g.Priority != GoalPriorityMedium {
		t.Errorf("unexpected defaults: %s %s %s", g.Timeframe, g.Status, g.Priority)
	}
	if g.EndDate != nil || g.Metric != nil || g.ParentID != nil {
		t.Error("optional fields should be unset")
	}
	if !g.IsTopLevel() {
		t.Error("new goal should be top level")
	}
	parentID := uuid.New()
	g.ParentID = &parentID
	if g.IsTopLevel() {
		t.Error("goal with a parent should not be top level")
	}
	if g.UserID != userID {
		t.Errorf("UserID = %v, want %v", g.UserID, userID)
	}
}

func TestNewPresetCategories(t *testing.T) {
	userID := uuid.New()
	presets := NewPresetCategories(userID)

	if len(presets) != len(PresetCategories) {
		t.Fatalf("got %d presets, want %d", len(presets), len(PresetCategories))
	}
	for i, c := range presets {
		if !c.IsPreset {
			t.Errorf("%s should be a preset", c.Name)
		}
		if want := len(PresetCategories) - i; c.Priority != want {
			t.Errorf("%s priority = %d, want %d", c.Name, c.Priority, want)
		}
		if c.UserID != userID {
			t.Errorf("%s has wrong owner", c.Name)
		}
	}
}
