package controller

import (
	"edu_agent_backend/internal/service"
	"edu_agent_backend/internal/util"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	StudentService *service.StudentService
}

func NewStudentController(studentService *service.StudentService) *StudentController {
	return &StudentController{StudentService: studentService}
}

func parseStudentRef(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid student id")
		return 0, false
	}
	return uint(id), true
}

// @Summary Register a student
// @Description Create a student with an external id, grade and learning style
// @Tags Students
// @Accept json
// @Produce json
// @Param request body service.CreateStudentInput true "student details"
// @Success 201 {object} util.Response{data=model.Student}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var input service.CreateStudentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.StudentService.CreateStudent(input)
	if err != nil {
		if errors.Is(err, util.ErrStudentIDTaken) {
			util.Error(ctx, http.StatusConflict, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, student)
}

// @Summary Get a student
// @Tags Students
// @Produce json
// @Param id path int true "student id"
// @Success 200 {object} util.Response{data=model.Student}
// @Failure 404 {object} util.Response
// @Router /api/students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := parseStudentRef(ctx)
	if !ok {
		return
	}

	student, err := c.StudentService.GetStudent(id)
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, student)
}

// @Summary Ingest academic records
// @Description Store a batch of assessment results for a student
// @Tags Students
// @Accept json
// @Produce json
// @Param id path int true "student id"
// @Param request body []service.RecordInput true "assessment results"
// @Success 201 {object} util.Response{data=[]model.AcademicRecord}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/students/{id}/records [post]
func (c *StudentController) IngestRecords(ctx *gin.Context) {
	id, ok := parseStudentRef(ctx)
	if !ok {
		return
	}

	var inputs []service.RecordInput
	if err := ctx.ShouldBindJSON(&inputs); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if len(inputs) == 0 {
		util.BadRequest(ctx, "at least one record is required")
		return
	}

	records, err := c.StudentService.IngestRecords(ctx.Request.Context(), id, inputs)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrStudentNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidScore), errors.Is(err, util.ErrInvalidAssessmentDate):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, records)
}

// @Summary List academic records
// @Tags Students
// @Produce json
// @Param id path int true "student id"
// @Success 200 {object} util.Response{data=[]model.AcademicRecord}
// @Failure 404 {object} util.Response
// @Router /api/students/{id}/records [get]
func (c *StudentController) ListRecords(ctx *gin.Context) {
	id, ok := parseStudentRef(ctx)
	if !ok {
		return
	}

	records, err := c.StudentService.ListRecords(id)
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, records)
}
