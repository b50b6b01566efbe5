package controller

import (
	"edu_agent_backend/internal/service"
	"edu_agent_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DoubtController struct {
	DoubtService *service.DoubtService
}

func NewDoubtController(doubtService *service.DoubtService) *DoubtController {
	return &DoubtController{DoubtService: doubtService}
}

// @Summary Resolve a doubt
// @Description Classify the question, pick a response strategy and answer it
// @Tags Doubts
// @Accept json
// @Produce json
// @Param request body service.DoubtInput true "the question and its context"
// @Success 201 {object} util.Response{data=model.DoubtQuery}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/doubts [post]
func (c *DoubtController) ResolveDoubt(ctx *gin.Context) {
	var input service.DoubtInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	doubt, err := c.DoubtService.Resolve(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, doubt)
}

// @Summary List a student's doubt history
// @Tags Doubts
// @Produce json
// @Param id path int true "student id"
// @Param limit query int false "max entries" default(20)
// @Success 200 {object} util.Response{data=[]model.DoubtQuery}
// @Failure 404 {object} util.Response
// @Router /api/students/{id}/doubts [get]
func (c *DoubtController) ListDoubts(ctx *gin.Context) {
	id, ok := parseStudentRef(ctx)
	if !ok {
		return
	}

	limit := 20
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	doubts, err := c.DoubtService.History(id, limit)
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, doubts)
}
