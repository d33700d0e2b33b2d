package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
)

func strPtr(s string) *string {
	return &s
}

func codeOf(err error) string {
	if coded, ok := domainerror.AsCoded(err); ok {
		return coded.ErrorCode()
	}
	return ""
}

func TestCreateGoalRequestToInput(t *testing.T) {
	userID := uuid.New()
	parentID := uuid.New()

	t.Run("valid request", func(t *testing.T) {
		req := CreateGoalRequest{
			Title:     "Run",
			StartDate: "2025-01-15",
			EndDate:   strPtr("2025-04-15"),
			Timeframe: strPtr("QUARTERLY"),
			ParentID:  strPtr(parentID.String()),
		}
		input, err := req.ToCreateGoalInput(userID)
		if err != nil {
			t.Fatalf("ToCreateGoalInput() error = %v", err)
		}
		if !input.StartDate.Equal(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("StartDate = %v", input.StartDate)
		}
		if input.EndDate == nil || input.EndDate.Month() != time.April {
			t.Errorf("EndDate = %v", input.EndDate)
		}
		if input.Timeframe == nil || *input.Timeframe != entity.TimeframeQuarterly {
			t.Errorf("Timeframe = %v", input.Timeframe)
		}
		if input.ParentID == nil || *input.ParentID != parentID {
			t.Errorf("ParentID = %v", input.ParentID)
		}
		if input.CategoryID != nil || input.Status != nil {
			t.Error("unset optional fields should stay nil")
		}
	})

	tests := []struct {
		name string
		req  CreateGoalRequest
		code string
	}{
		{name: "missing start date", req: CreateGoalRequest{Title: "x"}, code: "GOL-010013"},
		{name: "bad start date", req: CreateGoalRequest{Title: "x", StartDate: "15/01/2025"}, code: "GOL-010006"},
		{name: "bad end date", req: CreateGoalRequest{Title: "x", StartDate: "2025-01-01", EndDate: strPtr("soon")}, code: "GOL-010006"},
		{name: "bad parent id", req: CreateGoalRequest{Title: "x", StartDate: "2025-01-01", ParentID: strPtr("nope")}, code: "GOL-010013"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToCreateGoalInput(userID)
			if got := codeOf(err); got != tt.code {
				t.Errorf("code = %q, want %q (%v)", got, tt.code, err)
			}
		})
	}
}

func TestUpdateGoalRequestDecoding(t *testing.T) {
	var req UpdateGoalRequest
	body := `{"current_value": "12.5", "clear_end_date": true, "category_id": "` + uuid.NewString() + `"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatal(err)
	}

	input, err := req.ToUpdateGoalInput(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("ToUpdateGoalInput() error = %v", err)
	}
	if input.CurrentValue == nil || !input.CurrentValue.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("CurrentValue = %v", input.CurrentValue)
	}
	if input.TargetValue != nil || input.Title != nil || input.StartDate != nil {
		t.Error("absent fields should stay nil")
	}
	if !input.ClearEndDate || input.CategoryID == nil {
		t.Errorf("unexpected input: %+v", input)
	}
}

func TestGoalResponseJSON(t *testing.T) {
	g := entity.NewGoal(uuid.New(), "Read", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	g.Metric = &entity.MetricPair{Target: decimal.NewFromInt(200), Current: decimal.NewFromInt(50)}

	raw, err := json.Marshal(ToGoalResponse(g, 25))
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}

	if decoded["start_date"] != "2025-01-01" {
		t.Errorf("start_date = %v", decoded["start_date"])
	}
	if decoded["end_date"] != nil || decoded["parent_id"] != nil {
		t.Error("unset references should be null")
	}
	if decoded["target_value"] != "200" || decoded["current_value"] != "50" {
		t.Errorf("metric = %v / %v", decoded["target_value"], decoded["current_value"])
	}
	if decoded["progress"] != 25.0 {
		t.Errorf("progress = %v", decoded["progress"])
	}
	if _, ok := decoded["subgoal_count"]; ok {
		t.Error("subgoal_count should be omitted outside lists")
	}
}

func TestReorderCategoriesRequest(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	ids, err := ReorderCategoriesRequest{CategoryIDs: []string{a.String(), b.String()}}.ParseCategoryIDs()
	if err != nil || len(ids) != 2 || ids[0] != a {
		t.Errorf("ParseCategoryIDs() = %v, %v", ids, err)
	}

	_, err = ReorderCategoriesRequest{CategoryIDs: []string{a.String(), "bad"}}.ParseCategoryIDs()
	if got := codeOf(err); got != "CAT-010009" {
		t.Errorf("code = %q, want CAT-010009", got)
	}
}
