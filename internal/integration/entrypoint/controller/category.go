package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goal-planner/backend/internal/application/usecase/category"
	domainerror "github.com/goal-planner/backend/internal/domain/error"
	"github.com/goal-planner/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase    *category.ListCategoriesUseCase
	createUseCase  *category.CreateCategoryUseCase
	getUseCase     *category.GetCategoryUseCase
	updateUseCase  *category.UpdateCategoryUseCase
	deleteUseCase  *category.DeleteCategoryUseCase
	reorderUseCase *category.ReorderCategoriesUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	getUseCase *category.GetCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	reorderUseCase *category.ReorderCategoriesUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		reorderUseCase: reorderUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingCategoryFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Get handles GET /categories/:id requests.
// The response nests the category's visions and goal trees.
func (c *CategoryController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(ctx, "category", string(domainerror.ErrCodeCategoryNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), category.GetCategoryInput{
		CategoryID: categoryID,
		UserID:     userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryDetailResponse(output.Detail))
}

// Update handles PATCH /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(ctx, "category", string(domainerror.ErrCodeCategoryNotFound))
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingCategoryFields))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		CategoryID:  categoryID,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(ctx, "category", string(domainerror.ErrCodeCategoryNotFound))
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		CategoryID: categoryID,
		UserID:     userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Reorder handles PUT /categories/order requests.
func (c *CategoryController) Reorder(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.ReorderCategoriesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeInvalidCategoryOrder))
		return
	}

	ids, err := req.ParseCategoryIDs()
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.reorderUseCase.Execute(ctx.Request.Context(), category.ReorderCategoriesInput{
		UserID:      userID,
		CategoryIDs: ids,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}
