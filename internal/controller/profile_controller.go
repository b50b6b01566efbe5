package controller

import (
	"edu_agent_backend/internal/service"
	"edu_agent_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	StudentService  *service.StudentService
	ProfileService  *service.ProfileService
	InsightsService *service.InsightsService
}

func NewProfileController(studentService *service.StudentService, profileService *service.ProfileService, insightsService *service.InsightsService) *ProfileController {
	return &ProfileController{
		StudentService:  studentService,
		ProfileService:  profileService,
		InsightsService: insightsService,
	}
}

// @Summary Get performance analysis
// @Description Full analysis derived from the student's academic records
// @Tags Profiles
// @Produce json
// @Param id path int true "student id"
// @Success 200 {object} util.Response{data=model.PerformanceAnalysis}
// @Failure 404 {object} util.Response
// @Router /api/students/{id}/profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	id, ok := parseStudentRef(ctx)
	if !ok {
		return
	}

	if _, err := c.StudentService.GetStudent(id); err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	analysis, err := c.ProfileService.ComputeAnalysis(ctx.Request.Context(), id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, analysis)
}

// @Summary Get personalization configuration
// @Description Content, pacing and motivation settings derived from the analysis
// @Tags Profiles
// @Produce json
// @Param id path int true "student id"
// @Success 200 {object} util.Response{data=model.PersonalizationConfig}
// @Failure 404 {object} util.Response
// @Router /api/students/{id}/personalization [get]
func (c *ProfileController) GetPersonalization(ctx *gin.Context) {
	id, ok := parseStudentRef(ctx)
	if !ok {
		return
	}

	config, _, err := c.ProfileService.ComputeConfig(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, config)
}

// @Summary Get student insights
// @Description Progress summary, weekly study plan and recommendations
// @Tags Profiles
// @Produce json
// @Param id path int true "student id"
// @Success 200 {object} util.Response{data=service.StudentInsights}
// @Failure 404 {object} util.Response
// @Router /api/students/{id}/insights [get]
func (c *ProfileController) GetInsights(ctx *gin.Context) {
	id, ok := parseStudentRef(ctx)
	if !ok {
		return
	}

	insights, err := c.InsightsService.StudentInsights(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, insights)
}
