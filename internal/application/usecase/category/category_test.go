package category

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/adapter"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/persistence"
	"github.com/goal-planner/backend/internal/integration/persistence/persistencetest"
)

type repos struct {
	categories adapter.CategoryRepository
	goals      adapter.GoalRepository
	visions    adapter.FutureVisionRepository
	userID     uuid.UUID
}

func newRepos(t *testing.T) *repos {
	t.Helper()
	db := persistencetest.NewDB(t)
	return &repos{
		categories: persistence.NewCategoryRepository(db),
		goals:      persistence.NewGoalRepository(db),
		visions:    persistence.NewFutureVisionRepository(db),
		userID:     uuid.New(),
	}
}

func (r *repos) goal(t *testing.T, title string, categoryID, parentID *uuid.UUID) *entity.Goal {
	t.Helper()
	g := entity.NewGoal(r.userID, title, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	g.CategoryID = categoryID
	g.ParentID = parentID
	if err := r.goals.Create(context.Background(), g); err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}
	return g
}

func errorCode(err error) string {
	if coded, ok := domainerror.AsCoded(err); ok {
		return coded.ErrorCode()
	}
	return ""
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	uc := NewCreateCategoryUseCase(r.categories)

	out, err := uc.Execute(ctx, CreateCategoryInput{UserID: r.userID, Name: "  Health  ", Priority: 5})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Category.Name != "Health" || out.Category.Priority != 5 || out.Category.IsPreset {
		t.Errorf("unexpected category: %+v", out.Category)
	}

	tests := []struct {
		name   string
		input  CreateCategoryInput
		code   string
		userID uuid.UUID
	}{
		{name: "same name other case", input: CreateCategoryInput{Name: "HEALTH"}, code: "CAT-010005"},
		{name: "blank name", input: CreateCategoryInput{Name: "   "}, code: "CAT-010008"},
		{name: "name too long", input: CreateCategoryInput{Name: "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz"}, code: "CAT-010001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.UserID = r.userID
			_, err := uc.Execute(ctx, tt.input)
			if got := errorCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (%v)", got, tt.code, err)
			}
		})
	}

	t.Run("same name for another user", func(t *testing.T) {
		if _, err := uc.Execute(ctx, CreateCategoryInput{UserID: uuid.New(), Name: "Health"}); err != nil {
			t.Errorf("Execute() error = %v", err)
		}
	})
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	presets := entity.NewPresetCategories(r.userID)
	if err := r.categories.CreateMany(ctx, presets); err != nil {
		t.Fatal(err)
	}
	uc := NewUpdateCategoryUseCase(r.categories)

	t.Run("preset cannot be renamed", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpdateCategoryInput{CategoryID: presets[0].ID, UserID: r.userID, Name: ptr("Fitness")})
		if got := errorCode(err); got != "CAT-010006" {
			t.Errorf("code = %q, want CAT-010006", got)
		}
	})

	t.Run("preset priority can change", func(t *testing.T) {
		out, err := uc.Execute(ctx, UpdateCategoryInput{CategoryID: presets[0].ID, UserID: r.userID, Name: ptr(presets[0].Name), Priority: ptr(42)})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if out.Category.Priority != 42 {
			t.Errorf("Priority = %d, want 42", out.Category.Priority)
		}
	})

	t.Run("rename to existing name", func(t *testing.T) {
		custom := entity.NewCategory(r.userID, "Side projects", "", 0)
		if err := r.categories.Create(ctx, custom); err != nil {
			t.Fatal(err)
		}
		_, err := uc.Execute(ctx, UpdateCategoryInput{CategoryID: custom.ID, UserID: r.userID, Name: ptr("finances")})
		if got := errorCode(err); got != "CAT-010005" {
			t.Errorf("code = %q, want CAT-010005", got)
		}
	})
}

func ptr[T any](v T) *T {
	return &v
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("cascade removes goals, subgoals and visions", func(t *testing.T) {
		r := newRepos(t)
		health := entity.NewCategory(r.userID, "Health", "", 5)
		other := entity.NewCategory(r.userID, "Other", "", 1)
		for _, c := range []*entity.Category{health, other} {
			if err := r.categories.Create(ctx, c); err != nil {
				t.Fatal(err)
			}
		}
		marathon := r.goal(t, "Run a marathon", &health.ID, nil)
		r.goal(t, "Eat well", &health.ID, nil)
		uncategorized := r.goal(t, "Train weekly", nil, &marathon.ID)
		kept := r.goal(t, "Keep me", &other.ID, nil)
		if err := r.visions.Create(ctx, entity.NewFutureVision(r.userID, health.ID, "Fit", time.Now().Year())); err != nil {
			t.Fatal(err)
		}

		out, err := NewDeleteCategoryUseCase(r.categories, r.goals).Execute(ctx, DeleteCategoryInput{CategoryID: health.ID, UserID: r.userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.DeletedGoalIDs) != 3 {
			t.Errorf("deleted %d goals, want 3", len(out.DeletedGoalIDs))
		}

		if _, err := r.categories.FindByID(ctx, health.ID, r.userID); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("category still present: %v", err)
		}
		if _, err := r.goals.FindByID(ctx, uncategorized.ID, r.userID); !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("subgoal of a category goal still present: %v", err)
		}
		visions, err := r.visions.FindByUserID(ctx, r.userID, nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(visions) != 0 {
			t.Errorf("%d visions left, want 0", len(visions))
		}
		if _, err := r.goals.FindByID(ctx, kept.ID, r.userID); err != nil {
			t.Errorf("goal in another category removed: %v", err)
		}

		_, err = NewGetCategoryUseCase(r.categories, r.goals, r.visions).Execute(ctx, GetCategoryInput{CategoryID: health.ID, UserID: r.userID})
		if got := errorCode(err); got != "CAT-010004" {
			t.Errorf("re-fetch code = %q, want CAT-010004", got)
		}
	})

	t.Run("preset is protected", func(t *testing.T) {
		r := newRepos(t)
		presets := entity.NewPresetCategories(r.userID)
		if err := r.categories.CreateMany(ctx, presets); err != nil {
			t.Fatal(err)
		}
		_, err := NewDeleteCategoryUseCase(r.categories, r.goals).Execute(ctx, DeleteCategoryInput{CategoryID: presets[1].ID, UserID: r.userID})
		if got := errorCode(err); got != "CAT-010006" {
			t.Errorf("code = %q, want CAT-010006", got)
		}
	})

	t.Run("other owner sees not found", func(t *testing.T) {
		r := newRepos(t)
		c := entity.NewCategory(r.userID, "Mine", "", 1)
		if err := r.categories.Create(ctx, c); err != nil {
			t.Fatal(err)
		}
		_, err := NewDeleteCategoryUseCase(r.categories, r.goals).Execute(ctx, DeleteCategoryInput{CategoryID: c.ID, UserID: uuid.New()})
		if got := errorCode(err); got != "CAT-010004" {
			t.Errorf("code = %q, want CAT-010004", got)
		}
	})
}

func TestReorderCategories(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	a := entity.NewCategory(r.userID, "A", "", 3)
	b := entity.NewCategory(r.userID, "B", "", 2)
	c := entity.NewCategory(r.userID, "C", "", 1)
	if err := r.categories.CreateMany(ctx, []*entity.Category{a, b, c}); err != nil {
		t.Fatal(err)
	}
	uc := NewReorderCategoriesUseCase(r.categories)

	out, err := uc.Execute(ctx, ReorderCategoriesInput{UserID: r.userID, CategoryIDs: []uuid.UUID{c.ID, a.ID, b.ID}})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := []string{"C", "A", "B"}
	for i, cat := range out.Categories {
		if cat.Name != want[i] {
			t.Errorf("categories[%d] = %s, want %s", i, cat.Name, want[i])
		}
	}

	tests := []struct {
		name string
		ids  []uuid.UUID
		code string
	}{
		{name: "empty", ids: nil, code: "CAT-010009"},
		{name: "duplicate", ids: []uuid.UUID{a.ID, a.ID}, code: "CAT-010009"},
		{name: "unknown", ids: []uuid.UUID{a.ID, uuid.New()}, code: "CAT-010004"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, ReorderCategoriesInput{UserID: r.userID, CategoryIDs: tt.ids})
			if got := errorCode(err); got != tt.code {
				t.Errorf("code = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestGetCategoryDetail(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	health := entity.NewCategory(r.userID, "Health", "", 5)
	if err := r.categories.Create(ctx, health); err != nil {
		t.Fatal(err)
	}
	root := r.goal(t, "Get fit", &health.ID, nil)
	r.goal(t, "Gym", &health.ID, &root.ID)
	if err := r.visions.Create(ctx, entity.NewFutureVision(r.userID, health.ID, "Strong", time.Now().Year())); err != nil {
		t.Fatal(err)
	}

	out, err := NewGetCategoryUseCase(r.categories, r.goals, r.visions).Execute(ctx, GetCategoryInput{CategoryID: health.ID, UserID: r.userID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(out.Detail.Visions) != 1 {
		t.Errorf("visions = %d, want 1", len(out.Detail.Visions))
	}
	if len(out.Detail.Goals) != 1 || len(out.Detail.Goals[0].Subgoals) != 1 {
		t.Fatalf("expected one root goal with one subgoal, got %+v", out.Detail.Goals)
	}
	if out.Detail.Goals[0].Subgoals[0].Goal.Title != "Gym" {
		t.Errorf("subgoal = %q, want Gym", out.Detail.Goals[0].Subgoals[0].Goal.Title)
	}
}
