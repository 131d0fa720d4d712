package app

import (
	"ai_survey_backend/docs"
	"ai_survey_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 问卷页面
	router.GET("/", c.page.ShowForm)
	router.POST("/survey/:id", c.page.SubmitForm)

	// 2. 问卷接口
	registerSurveyRoutes(router.Group("/api"), c)
}

func registerSurveyRoutes(api *gin.RouterGroup, c *controllers) {
	api.GET("/health", c.health.HealthCheck)

	survey := api.Group("/survey")
	{
		survey.GET("/questions", c.survey.GetQuestions)
		survey.POST("/forms", c.survey.OpenForm)
		survey.GET("/forms/:id", c.survey.GetForm)
		survey.GET("/forms/:id/record", c.survey.PreviewRecord)
		survey.PUT("/forms/:id/fields/:field", c.survey.UpdateField)
		survey.PUT("/forms/:id/features", c.survey.ToggleFeature)
		survey.PUT("/forms/:id/other", c.survey.ToggleOther)
		survey.POST("/forms/:id/submit", c.survey.Submit)
	}
}
