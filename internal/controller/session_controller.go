package controller

import (
	"edu_agent_backend/internal/service"
	"edu_agent_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

// @Summary Start a learning session
// @Description Generate a personalized lesson and open a session for it
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path int true "student id"
// @Param request body service.StartSessionInput true "subject and topic"
// @Success 201 {object} util.Response{data=model.LearningSession}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/students/{id}/sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	id, ok := parseStudentRef(ctx)
	if !ok {
		return
	}

	var input service.StartSessionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.StartSession(ctx.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, session)
}

// @Summary Get a session
// @Tags Sessions
// @Produce json
// @Param sessionId path string true "session id"
// @Success 200 {object} util.Response{data=model.LearningSession}
// @Failure 404 {object} util.Response
// @Router /api/sessions/{sessionId} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	session, err := c.SessionService.GetSession(ctx.Param("sessionId"))
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

// @Summary Update session progress
// @Description Record progress or close the session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param sessionId path string true "session id"
// @Param request body service.UpdateSessionInput true "progress and status"
// @Success 200 {object} util.Response{data=model.LearningSession}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/sessions/{sessionId} [patch]
func (c *SessionController) UpdateSession(ctx *gin.Context) {
	var input service.UpdateSessionInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.UpdateSession(ctx.Param("sessionId"), input)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

// @Summary List a student's sessions
// @Tags Sessions
// @Produce json
// @Param id path int true "student id"
// @Param limit query int false "max sessions" default(20)
// @Success 200 {object} util.Response{data=[]model.LearningSession}
// @Router /api/students/{id}/sessions [get]
func (c *SessionController) ListSessions(ctx *gin.Context) {
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

	sessions, err := c.SessionService.ListSessions(id, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sessions)
}
