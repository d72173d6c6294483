package ai_model

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects the session middleware on router.
func RegisterRoutes(router *gin.RouterGroup) {
	modelGroup := router.Group("/models")
	{
		modelGroup.GET("", GetModels)
		modelGroup.POST("", CreateModel)
		modelGroup.GET("/:id", GetModel)
		modelGroup.DELETE("/:id", DeleteModel)
		modelGroup.GET("/:id/export", ExportModel)
		modelGroup.GET("/:id/share", ShareModel)
	}
}
