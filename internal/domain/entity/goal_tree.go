package entity

import (
	"slices"

	"github.com/google/uuid"
)

// SortGoals orders goals by priority (HIGH first) then by start date ascending.
func SortGoals(goals []*Goal) {
	slices.SortStableFunc(goals, compareGoals)
}

func compareGoals(a, b *Goal) int {
	if ra, rb := a.Priority.rank(), b.Priority.rank(); ra != rb {
		return ra - rb
	}
	return a.StartDate.Compare(b.StartDate)
}

// GoalForest indexes one owner's goals by id and by parent id.
type GoalForest struct {
	byID     map[uuid.UUID]*Goal
	children map[uuid.UUID][]*Goal
	roots    []*Goal
}

// NewGoalForest builds an index over goals. Goals whose parent is not in the
// set are treated as roots of the forest.
func NewGoalForest(goals []*Goal) *GoalForest {
	f := &GoalForest{
		byID:     make(map[uuid.UUID]*Goal, len(goals)),
		children: make(map[uuid.UUID][]*Goal),
	}
	for _, g := range goals {
		f.byID[g.ID] = g
	}
	for _, g := range goals {
		if g.ParentID != nil {
			if _, ok := f.byID[*g.ParentID]; ok {
				f.children[*g.ParentID] = append(f.children[*g.ParentID], g)
				continue
			}
		}
		f.roots = append(f.roots, g)
	}
	for _, list := range f.children {
		SortGoals(list)
	}
	SortGoals(f.roots)
	return f
}

// Get returns the goal with the given id.
func (f *GoalForest) Get(id uuid.UUID) (*Goal, bool) {
	g, ok := f.byID[id]
	return g, ok
}

// Children returns the direct subgoals of id in canonical order.
func (f *GoalForest) Children(id uuid.UUID) []*Goal {
	return f.children[id]
}

// Roots returns the goals with no parent in the forest.
func (f *GoalForest) Roots() []*Goal {
	return f.roots
}

// Progress computes the progress of the goal with the given id.
func (f *GoalForest) Progress(id uuid.UUID) float64 {
	g, ok := f.byID[id]
	if !ok {
		return 0
	}
	return ComputeProgress(g, f.children[id])
}

// SubtreeIDs returns id and all of its descendants, children before parents.
func (f *GoalForest) SubtreeIDs(id uuid.UUID) []uuid.UUID {
	var out []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	var walk func(uuid.UUID)
	walk = func(cur uuid.UUID) {
		if seen[cur] {
			return
		}
		seen[cur] = true
		for _, child := range f.children[cur] {
			walk(child.ID)
		}
		out = append(out, cur)
	}
	walk(id)
	return out
}

// Node builds the nested view of id down to maxDepth levels of subgoals.
// A negative maxDepth means unlimited.
func (f *GoalForest) Node(id uuid.UUID, maxDepth int) *GoalNode {
	g, ok := f.byID[id]
	if !ok {
		return nil
	}
	return f.node(g, maxDepth, make(map[uuid.UUID]bool))
}

func (f *GoalForest) node(g *Goal, depth int, seen map[uuid.UUID]bool) *GoalNode {
	seen[g.ID] = true
	n := &GoalNode{
		Goal:     g,
		Progress: ComputeProgress(g, f.children[g.ID]),
		Subgoals: []*GoalNode{},
	}
	if depth == 0 {
		return n
	}
	for _, child := range f.children[g.ID] {
		if seen[child.ID] {
			continue
		}
		n.Subgoals = append(n.Subgoals, f.node(child, depth-1, seen))
	}
	return n
}
