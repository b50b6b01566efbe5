package controller

import (
	"edu_agent_backend/internal/service"
	"edu_agent_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type WorksheetController struct {
	WorksheetService *service.WorksheetService
}

func NewWorksheetController(worksheetService *service.WorksheetService) *WorksheetController {
	return &WorksheetController{WorksheetService: worksheetService}
}

// @Summary Generate a worksheet
// @Description Create a set of practice problems tuned to the student's profile
// @Tags Worksheets
// @Accept json
// @Produce json
// @Param id path int true "student id"
// @Param request body service.GenerateWorksheetInput true "subject, topic and problem count"
// @Success 201 {object} util.Response{data=model.Worksheet}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/students/{id}/worksheets [post]
func (c *WorksheetController) GenerateWorksheet(ctx *gin.Context) {
	id, ok := parseStudentRef(ctx)
	if !ok {
		return
	}

	var input service.GenerateWorksheetInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	worksheet, err := c.WorksheetService.GenerateWorksheet(ctx.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, worksheet)
}

// @Summary Get a worksheet
// @Tags Worksheets
// @Produce json
// @Param worksheetId path string true "worksheet id"
// @Success 200 {object} util.Response{data=model.Worksheet}
// @Failure 404 {object} util.Response
// @Router /api/worksheets/{worksheetId} [get]
func (c *WorksheetController) GetWorksheet(ctx *gin.Context) {
	worksheet, err := c.WorksheetService.GetWorksheet(ctx.Param("worksheetId"))
	if err != nil {
		if errors.Is(err, util.ErrWorksheetNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, worksheet)
}

// @Summary List a student's worksheets
// @Tags Worksheets
// @Produce json
// @Param id path int true "student id"
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(10)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/students/{id}/worksheets [get]
func (c *WorksheetController) ListWorksheets(ctx *gin.Context) {
	id, ok := parseStudentRef(ctx)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	worksheets, total, err := c.WorksheetService.ListWorksheets(id, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  worksheets,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
