package entity

import (
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
)

func child(parent *Goal, title string, priority GoalPriority, start time.Time, status GoalStatus) *Goal {
	id := parent.ID
	return &Goal{
		ID:        uuid.New(),
		Title:     title,
		Priority:  priority,
		StartDate: start,
		Status:    status,
		ParentID:  &id,
	}
}

func titles(goals []*Goal) []string {
	out := make([]string, len(goals))
	for i, g := range goals {
		out[i] = g.Title
	}
	return out
}

func TestSortGoals(t *testing.T) {
	goals := []*Goal{
		{Title: "low", Priority: GoalPriorityLow, StartDate: date(2025, 1, 1)},
		{Title: "medium-late", Priority: GoalPriorityMedium, StartDate: date(2025, 6, 1)},
		{Title: "high", Priority: GoalPriorityHigh, StartDate: date(2025, 12, 1)},
		{Title: "medium-early", Priority: GoalPriorityMedium, StartDate: date(2025, 2, 1)},
	}

	SortGoals(goals)

	want := []string{"high", "medium-early", "medium-late", "low"}
	if got := titles(goals); !slices.Equal(got, want) {
		t.Errorf("SortGoals() = %v, want %v", got, want)
	}
}

func TestGoalForest(t *testing.T) {
	root := &Goal{ID: uuid.New(), Title: "root", Priority: GoalPriorityMedium, StartDate: date(2025, 1, 1)}
	a := child(root, "a", GoalPriorityLow, date(2025, 1, 1), GoalStatusCompleted)
	b := child(root, "b", GoalPriorityHigh, date(2025, 1, 1), GoalStatusTodo)
	grandchild := child(b, "b1", GoalPriorityMedium, date(2025, 2, 1), GoalStatusTodo)
	orphanParent := uuid.New()
	orphan := &Goal{ID: uuid.New(), Title: "orphan", Priority: GoalPriorityHigh, StartDate: date(2025, 3, 1), ParentID: &orphanParent}

	forest := NewGoalForest([]*Goal{grandchild, a, orphan, root, b})

	t.Run("roots include goals with missing parents", func(t *testing.T) {
		want := []string{"orphan", "root"}
		if got := titles(forest.Roots()); !slices.Equal(got, want) {
			t.Errorf("Roots() = %v, want %v", got, want)
		}
	})

	t.Run("children are sorted", func(t *testing.T) {
		want := []string{"b", "a"}
		if got := titles(forest.Children(root.ID)); !slices.Equal(got, want) {
			t.Errorf("Children() = %v, want %v", got, want)
		}
	})

	t.Run("progress uses direct subgoals", func(t *testing.T) {
		if got := forest.Progress(root.ID); got != 50 {
			t.Errorf("Progress(root) = %v, want 50", got)
		}
		if got := forest.Progress(uuid.New()); got != 0 {
			t.Errorf("Progress(unknown) = %v, want 0", got)
		}
	})

	t.Run("subtree lists children before parents", func(t *testing.T) {
		ids := forest.SubtreeIDs(root.ID)
		if len(ids) != 4 {
			t.Fatalf("SubtreeIDs() returned %d ids, want 4", len(ids))
		}
		if ids[len(ids)-1] != root.ID {
			t.Error("root should come last")
		}
		if slices.Index(ids, grandchild.ID) > slices.Index(ids, b.ID) {
			t.Error("grandchild should come before its parent")
		}
	})

	t.Run("node depth", func(t *testing.T) {
		shallow := forest.Node(root.ID, 1)
		if len(shallow.Subgoals) != 2 {
			t.Fatalf("depth 1 subgoals = %d, want 2", len(shallow.Subgoals))
		}
		if len(shallow.Subgoals[0].Subgoals) != 0 {
			t.Error("depth 1 should not include grandchildren")
		}

		full := forest.Node(root.ID, -1)
		if got := full.Subgoals[0].Subgoals; len(got) != 1 || got[0].Goal.Title != "b1" {
			t.Errorf("unlimited depth should include b1, got %v", got)
		}
		if full.Progress != 50 {
			t.Errorf("node progress = %v, want 50", full.Progress)
		}

		if forest.Node(uuid.New(), -1) != nil {
			t.Error("unknown id should return nil")
		}
	})
}
