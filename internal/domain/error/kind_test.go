package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"goal not found", NewGoalError(ErrCodeGoalNotFound, "goal not found", ErrGoalNotFound), KindNotFound},
		{"parent not found", NewGoalError(ErrCodeParentGoalNotFound, "parent goal not found", ErrParentGoalNotFound), KindNotFound},
		{"circular reference", NewGoalError(ErrCodeCircularReference, "cycle", ErrCircularReference), KindValidation},
		{"subtree changed", NewGoalError(ErrCodeGoalSubtreeChanged, "changed", ErrGoalSubtreeChanged), KindInternal},
		{"category name exists", NewCategoryError(ErrCodeCategoryNameExists, "exists", ErrCategoryNameExists), KindConflict},
		{"preset protected", NewCategoryError(ErrCodePresetCategoryProtected, "preset", ErrPresetCategoryProtected), KindForbidden},
		{"vision exists", NewVisionError(ErrCodeVisionAlreadyExists, "exists", ErrVisionAlreadyExists), KindConflict},
		{"vision year", NewVisionError(ErrCodeVisionYearOutOfRange, "year", ErrVisionYearOutOfRange), KindValidation},
		{"email exists", NewAuthError(ErrCodeEmailExists, "exists", ErrEmailAlreadyExists), KindConflict},
		{"bad credentials", NewAuthError(ErrCodeInvalidCredentials, "bad", ErrInvalidCredentials), KindUnauthorized},
		{"weak password", NewAuthError(ErrCodeWeakPassword, "weak", ErrWeakPassword), KindValidation},
		{
			name: "wrapped domain error",
			err:  fmt.Errorf("handler: %w", NewCategoryError(ErrCodeCategoryNotFound, "missing", ErrCategoryNotFound)),
			want: KindNotFound,
		},
		{"plain error", errors.New("boom"), KindInternal},
		{"nil", nil, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAsCoded(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewGoalError(ErrCodeEndBeforeStart, "end date must not be before start date", ErrEndBeforeStart))

	coded, ok := AsCoded(err)
	if !ok {
		t.Fatal("AsCoded() should find the goal error")
	}
	if coded.ErrorCode() != "GOL-010007" {
		t.Errorf("ErrorCode() = %q, want GOL-010007", coded.ErrorCode())
	}
	if coded.ErrorMessage() != "end date must not be before start date" {
		t.Errorf("ErrorMessage() = %q", coded.ErrorMessage())
	}
	if !errors.Is(err, ErrEndBeforeStart) {
		t.Error("sentinel should stay reachable through the chain")
	}

	if _, ok := AsCoded(errors.New("plain")); ok {
		t.Error("AsCoded() should not match a plain error")
	}
}
