package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/persistence/persistencetest"
)

func newGoal(userID uuid.UUID, title string, parent *entity.Goal) *entity.Goal {
	g := entity.NewGoal(userID, title, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if parent != nil {
		g.ParentID = &parent.ID
	}
	return g
}

func TestGoalRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalRepository(persistencetest.NewDB(t))
	userID := uuid.New()

	g := newGoal(userID, "Read", nil)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	g.EndDate = &end
	g.Metric = &entity.MetricPair{Target: decimal.RequireFromString("12.5"), Current: decimal.NewFromInt(3)}
	if err := repo.Create(ctx, g); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.FindByID(ctx, g.ID, userID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Metric == nil || !got.Metric.Target.Equal(g.Metric.Target) || !got.Metric.Current.Equal(g.Metric.Current) {
		t.Errorf("metric = %+v, want %+v", got.Metric, g.Metric)
	}
	if got.EndDate == nil || !got.EndDate.Equal(end) {
		t.Errorf("EndDate = %v, want %v", got.EndDate, end)
	}

	if _, err := repo.FindByID(ctx, g.ID, uuid.New()); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("FindByID() for other owner error = %v, want ErrGoalNotFound", err)
	}

	got.Metric = nil
	got.Title = "Read more"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	reloaded, _ := repo.FindByID(ctx, g.ID, userID)
	if reloaded.Metric != nil || reloaded.Title != "Read more" {
		t.Errorf("update not persisted: %+v", reloaded)
	}
}

func TestGoalRepositoryDeleteTree(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*goalRepository, uuid.UUID, *entity.Goal, *entity.Goal, *entity.Goal) {
		repo := NewGoalRepository(persistencetest.NewDB(t)).(*goalRepository)
		userID := uuid.New()
		root := newGoal(userID, "root", nil)
		child := newGoal(userID, "child", root)
		grandchild := newGoal(userID, "grandchild", child)
		for _, g := range []*entity.Goal{root, child, grandchild} {
			if err := repo.Create(ctx, g); err != nil {
				t.Fatal(err)
			}
		}
		return repo, userID, root, child, grandchild
	}

	t.Run("children first", func(t *testing.T) {
		repo, userID, root, child, grandchild := setup(t)
		if err := repo.DeleteTree(ctx, userID, []uuid.UUID{grandchild.ID, child.ID, root.ID}); err != nil {
			t.Fatalf("DeleteTree() error = %v", err)
		}
		remaining, _ := repo.FindByUserID(ctx, userID)
		if len(remaining) != 0 {
			t.Errorf("%d goals remain, want 0", len(remaining))
		}
	})

	t.Run("missing descendant rolls back", func(t *testing.T) {
		repo, userID, root, child, _ := setup(t)
		err := repo.DeleteTree(ctx, userID, []uuid.UUID{child.ID, root.ID})
		if !errors.Is(err, domainerror.ErrGoalSubtreeChanged) {
			t.Fatalf("DeleteTree() error = %v, want ErrGoalSubtreeChanged", err)
		}
		remaining, _ := repo.FindByUserID(ctx, userID)
		if len(remaining) != 3 {
			t.Errorf("%d goals remain, want 3", len(remaining))
		}
	})

	t.Run("unknown id rolls back", func(t *testing.T) {
		repo, userID, root, child, grandchild := setup(t)
		err := repo.DeleteTree(ctx, userID, []uuid.UUID{grandchild.ID, child.ID, uuid.New(), root.ID})
		if !errors.Is(err, domainerror.ErrGoalSubtreeChanged) {
			t.Fatalf("DeleteTree() error = %v, want ErrGoalSubtreeChanged", err)
		}
		remaining, _ := repo.FindByUserID(ctx, userID)
		if len(remaining) != 3 {
			t.Errorf("%d goals remain, want 3", len(remaining))
		}
	})
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	db := persistencetest.NewDB(t)
	categories := NewCategoryRepository(db)
	goals := NewGoalRepository(db)
	visions := NewFutureVisionRepository(db)
	userID := uuid.New()

	presets := entity.NewPresetCategories(userID)
	if err := categories.CreateMany(ctx, presets); err != nil {
		t.Fatalf("CreateMany() error = %v", err)
	}

	t.Run("exists by name ignores case", func(t *testing.T) {
		exists, err := categories.ExistsByName(ctx, userID, "health & FITNESS", nil)
		if err != nil || !exists {
			t.Errorf("ExistsByName() = %v, %v; want true", exists, err)
		}
		exists, _ = categories.ExistsByName(ctx, userID, "Health & Fitness", &presets[0].ID)
		if exists {
			t.Error("excluded id should not count")
		}
	})

	t.Run("ordered by priority", func(t *testing.T) {
		if err := categories.UpdatePriorities(ctx, userID, map[uuid.UUID]int{presets[4].ID: 99}); err != nil {
			t.Fatal(err)
		}
		list, err := categories.FindByUserID(ctx, userID)
		if err != nil {
			t.Fatal(err)
		}
		if list[0].ID != presets[4].ID {
			t.Errorf("first category = %s, want %s", list[0].Name, presets[4].Name)
		}
	})

	t.Run("cascade delete", func(t *testing.T) {
		target := presets[2]
		g := newGoal(userID, "call mom", nil)
		g.CategoryID = &target.ID
		if err := goals.Create(ctx, g); err != nil {
			t.Fatal(err)
		}
		if err := visions.Create(ctx, entity.NewFutureVision(userID, target.ID, "close family", 2030)); err != nil {
			t.Fatal(err)
		}

		if err := categories.DeleteCascade(ctx, userID, target.ID, []uuid.UUID{g.ID}); err != nil {
			t.Fatalf("DeleteCascade() error = %v", err)
		}
		if _, err := categories.FindByID(ctx, target.ID, userID); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("category still present: %v", err)
		}
		left, _ := visions.FindByUserID(ctx, userID, &target.ID)
		if len(left) != 0 {
			t.Errorf("%d visions left", len(left))
		}
	})
}

func TestFutureVisionRepositoryUniqueSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewFutureVisionRepository(persistencetest.NewDB(t))
	userID, categoryID := uuid.New(), uuid.New()

	if err := repo.Create(ctx, entity.NewFutureVision(userID, categoryID, "first", 2026)); err != nil {
		t.Fatal(err)
	}
	err := repo.Create(ctx, entity.NewFutureVision(userID, categoryID, "second", 2026))
	if !errors.Is(err, domainerror.ErrVisionAlreadyExists) {
		t.Errorf("Create() error = %v, want ErrVisionAlreadyExists", err)
	}

	exists, err := repo.ExistsForYear(ctx, userID, categoryID, 2026, nil)
	if err != nil || !exists {
		t.Errorf("ExistsForYear() = %v, %v; want true", exists, err)
	}
}
