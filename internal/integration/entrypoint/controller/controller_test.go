package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/entrypoint/dto"
	"github.com/goal-planner/backend/internal/integration/entrypoint/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "goal not found", domainerror.ErrGoalNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "GOL-010001",
		},
		{
			name:       "validation",
			err:        domainerror.NewGoalError(domainerror.ErrCodeCircularReference, "cycle", domainerror.ErrCircularReference),
			wantStatus: http.StatusBadRequest,
			wantCode:   "GOL-010012",
		},
		{
			name:       "conflict wrapped",
			err:        fmt.Errorf("ctx: %w", domainerror.NewVisionError(domainerror.ErrCodeVisionAlreadyExists, "exists", domainerror.ErrVisionAlreadyExists)),
			wantStatus: http.StatusConflict,
			wantCode:   "VIS-010002",
		},
		{
			name:       "forbidden",
			err:        domainerror.NewCategoryError(domainerror.ErrCodePresetCategoryProtected, "preset", domainerror.ErrPresetCategoryProtected),
			wantStatus: http.StatusForbidden,
			wantCode:   "CAT-010006",
		},
		{
			name:       "unauthorized",
			err:        domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, "bad", domainerror.ErrInvalidCredentials),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH-020001",
		},
		{
			name:       "coded internal",
			err:        domainerror.NewGoalError(domainerror.ErrCodeGoalSubtreeChanged, "changed", domainerror.ErrGoalSubtreeChanged),
			wantStatus: http.StatusInternalServerError,
			wantCode:   internalErrorCode,
		},
		{
			name:       "plain error",
			err:        errors.New("database on fire"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   internalErrorCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(rec)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(ctx, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			body := decodeError(t, rec)
			if body.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
			}
			if tt.wantStatus == http.StatusInternalServerError && body.Error != internalErrorMessage {
				t.Errorf("internal error leaked: %q", body.Error)
			}
		})
	}
}

func TestRequireUserAndParseID(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(rec)

		if _, ok := requireUser(ctx); ok {
			t.Fatal("requireUser() succeeded without a user")
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("user present", func(t *testing.T) {
		ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
		userID := uuid.New()
		ctx.Set(string(middleware.UserIDKey), userID)

		got, ok := requireUser(ctx)
		if !ok || got != userID {
			t.Errorf("requireUser() = %v, %v", got, ok)
		}
	})

	t.Run("bad id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(rec)
		ctx.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

		if _, ok := parseIDParam(ctx, "goal", "GOL-010013"); ok {
			t.Fatal("parseIDParam() accepted a bad id")
		}
		if rec.Code != http.StatusBadRequest || decodeError(t, rec).Code != "GOL-010013" {
			t.Errorf("unexpected response %d %s", rec.Code, rec.Body.String())
		}
	})
}

type stubChecker struct {
	err error
}

func (s stubChecker) HealthCheck(context.Context) error {
	return s.err
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		checker    stubChecker
		wantStatus int
		wantState  string
	}{
		{"healthy", stubChecker{}, http.StatusOK, "healthy"},
		{"database down", stubChecker{err: errors.New("connection refused")}, http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/health", NewHealthController(tt.checker).Check)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body.Status != tt.wantState {
				t.Errorf("status field = %q, want %q", body.Status, tt.wantState)
			}
		})
	}
}
