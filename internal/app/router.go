package app

import (
	"edu_agent_backend/docs"
	"edu_agent_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		students := api.Group("/students")
		{
			students.POST("", c.student.CreateStudent)
			students.GET("/:id", c.student.GetStudent)

			students.POST("/:id/records", c.student.IngestRecords)
			students.GET("/:id/records", c.student.ListRecords)

			students.GET("/:id/profile", c.profile.GetProfile)
			students.GET("/:id/personalization", c.profile.GetPersonalization)
			students.GET("/:id/insights", c.profile.GetInsights)

			students.POST("/:id/sessions", c.session.StartSession)
			students.GET("/:id/sessions", c.session.ListSessions)

			students.POST("/:id/worksheets", c.worksheet.GenerateWorksheet)
			students.GET("/:id/worksheets", c.worksheet.ListWorksheets)

			students.GET("/:id/doubts", c.doubt.ListDoubts)
		}

		api.GET("/sessions/:sessionId", c.session.GetSession)
		api.PATCH("/sessions/:sessionId", c.session.UpdateSession)

		api.GET("/worksheets/:worksheetId", c.worksheet.GetWorksheet)

		api.POST("/doubts", c.doubt.ResolveDoubt)
	}
}
