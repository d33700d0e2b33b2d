package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/usecase/goal"
	"github.com/goal-planner/backend/internal/domain/entity"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase   *goal.ListGoalsUseCase
	createUseCase *goal.CreateGoalUseCase
	getUseCase    *goal.GetGoalUseCase
	updateUseCase *goal.UpdateGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /goals requests.
// Supported filters: category_id, parent_id (or "null" for top-level goals), timeframe, status.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input := goal.ListGoalsInput{UserID: userID}

	if v := ctx.Query("category_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category_id filter",
				Code:  string(domainerror.ErrCodeMissingGoalFields),
			})
			return
		}
		input.CategoryID = &id
	}

	switch v := ctx.Query("parent_id"); v {
	case "":
	case "null":
		input.TopLevel = true
	default:
		id, err := uuid.Parse(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid parent_id filter",
				Code:  string(domainerror.ErrCodeMissingGoalFields),
			})
			return
		}
		input.ParentID = &id
	}

	if v := ctx.Query("timeframe"); v != "" {
		tf := entity.Timeframe(v)
		input.Timeframe = &tf
	}
	if v := ctx.Query("status"); v != "" {
		status := entity.GoalStatus(v)
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingGoalFields))
		return
	}

	input, err := req.ToCreateGoalInput(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal, output.Progress))
}

// Get handles GET /goals/:id requests.
// The response carries the direct subgoals only.
func (c *GoalController) Get(ctx *gin.Context) {
	c.getNode(ctx, 1)
}

// Tree handles GET /goals/:id/tree requests.
func (c *GoalController) Tree(ctx *gin.Context) {
	c.getNode(ctx, -1)
}

func (c *GoalController) getNode(ctx *gin.Context, depth int) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(ctx, "goal", string(domainerror.ErrCodeGoalNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID: goalID,
		UserID: userID,
		Depth:  depth,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalNodeResponse(output.Node))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(ctx, "goal", string(domainerror.ErrCodeGoalNotFound))
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingGoalFields))
		return
	}

	input, err := req.ToUpdateGoalInput(goalID, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal, output.Progress))
}

// Delete handles DELETE /goals/:id requests.
// The goal and all of its descendants are removed together.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(ctx, "goal", string(domainerror.ErrCodeGoalNotFound))
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		GoalID: goalID,
		UserID: userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
