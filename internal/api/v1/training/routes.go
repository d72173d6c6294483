package training

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects the session middleware on router.
func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/tools", GetTools)
	router.POST("/models/:id/training", StartTraining)

	trainingGroup := router.Group("/training")
	{
		trainingGroup.GET("", GetTraining)
		trainingGroup.POST("/pause", PauseTraining)
		trainingGroup.POST("/resume", ResumeTraining)
		trainingGroup.POST("/toggle", TogglePause)
		trainingGroup.PUT("/tools", SetTools)
	}
}
