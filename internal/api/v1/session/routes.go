package session

import (
	"aimodel-generator-backend/internal/middleware"
	"aimodel-generator-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, manager *services.SessionManager) {
	sessions := router.Group("/sessions")
	{
		sessions.POST("", CreateSession(manager))
		sessions.DELETE("/current", middleware.SessionMiddleware(manager), CloseSession(manager))
	}
}
