package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/entrypoint/dto"
	"github.com/goal-planner/backend/internal/integration/entrypoint/middleware"
)

const (
	internalErrorMessage = "An internal error occurred"
	internalErrorCode    = "INTERNAL_ERROR"
)

// statusForKind maps a domain error kind to an HTTP status code.
func statusForKind(kind domainerror.ErrorKind) int {
	switch kind {
	case domainerror.KindNotFound:
		return http.StatusNotFound
	case domainerror.KindValidation:
		return http.StatusBadRequest
	case domainerror.KindConflict:
		return http.StatusConflict
	case domainerror.KindForbidden:
		return http.StatusForbidden
	case domainerror.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a JSON error body. Internal failures are logged
// and never leak their cause to the client.
func respondError(ctx *gin.Context, err error) {
	coded, ok := domainerror.AsCoded(err)
	if ok {
		if status := statusForKind(coded.Kind()); status != http.StatusInternalServerError {
			ctx.JSON(status, dto.ErrorResponse{
				Error: coded.ErrorMessage(),
				Code:  coded.ErrorCode(),
			})
			return
		}
	}

	slog.Error("Request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: internalErrorMessage,
		Code:  internalErrorCode,
	})
}

// requireUser returns the authenticated user id or writes a 401.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// parseIDParam parses the :id path parameter or writes a 400 with code.
func parseIDParam(ctx *gin.Context, what, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + what + " ID format",
			Code:  code,
		})
		return uuid.Nil, false
	}
	return id, true
}

// badRequest writes a 400 for a body that failed to bind.
func badRequest(ctx *gin.Context, err error, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    code,
		Details: err.Error(),
	})
}
