package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goal-planner/backend/internal/application/usecase/vision"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/entrypoint/dto"
)

// VisionController handles future vision endpoints.
type VisionController struct {
	listUseCase   *vision.ListVisionsUseCase
	createUseCase *vision.CreateVisionUseCase
	getUseCase    *vision.GetVisionUseCase
	updateUseCase *vision.UpdateVisionUseCase
	deleteUseCase *vision.DeleteVisionUseCase
}

// NewVisionController creates a new vision controller instance.
func NewVisionController(
	listUseCase *vision.ListVisionsUseCase,
	createUseCase *vision.CreateVisionUseCase,
	getUseCase *vision.GetVisionUseCase,
	updateUseCase *vision.UpdateVisionUseCase,
	deleteUseCase *vision.DeleteVisionUseCase,
) *VisionController {
	return &VisionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /visions requests, optionally filtered by category_id.
func (c *VisionController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input := vision.ListVisionsInput{UserID: userID}
	if v := ctx.Query("category_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category_id filter",
				Code:  string(domainerror.ErrCodeMissingVisionFields),
			})
			return
		}
		input.CategoryID = &id
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVisionListResponse(output.Visions))
}

// Create handles POST /visions requests.
func (c *VisionController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateVisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingVisionFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), vision.CreateVisionInput{
		UserID:      userID,
		CategoryID:  uuid.MustParse(req.CategoryID),
		Description: req.Description,
		Year:        req.Year,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToVisionResponse(output.Vision))
}

// Get handles GET /visions/:id requests.
func (c *VisionController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	visionID, ok := parseIDParam(ctx, "vision", string(domainerror.ErrCodeVisionNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), vision.GetVisionInput{
		VisionID: visionID,
		UserID:   userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVisionResponse(output.Vision))
}

// Update handles PATCH /visions/:id requests.
func (c *VisionController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	visionID, ok := parseIDParam(ctx, "vision", string(domainerror.ErrCodeVisionNotFound))
	if !ok {
		return
	}

	var req dto.UpdateVisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingVisionFields))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), vision.UpdateVisionInput{
		VisionID:          visionID,
		UserID:            userID,
		Description:       req.Description,
		Year:              req.Year,
		YearEndReflection: req.YearEndReflection,
		ClearReflection:   req.ClearReflection,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVisionResponse(output.Vision))
}

// Delete handles DELETE /visions/:id requests.
func (c *VisionController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	visionID, ok := parseIDParam(ctx, "vision", string(domainerror.ErrCodeVisionNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), vision.DeleteVisionInput{
		VisionID: visionID,
		UserID:   userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
