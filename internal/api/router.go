package api

import (
	"aimodel-generator-backend/config"
	"aimodel-generator-backend/internal/api/v1/ai_model"
	sessionRoutes "aimodel-generator-backend/internal/api/v1/session"
	"aimodel-generator-backend/internal/api/v1/training"
	"aimodel-generator-backend/internal/middleware"
	"aimodel-generator-backend/internal/services"
	"aimodel-generator-backend/internal/utils"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, manager *services.SessionManager) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	utils.RegisterJSONTagNames()

	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger())

	// The browser front-end runs on its own origin
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.SessionIDHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.SessionIDHeader, middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300, // Maximum age for preflight requests
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", gin.H{"sessions": manager.Len()}))
	})

	// API v1
	v1 := router.Group("/api/v1")
	{
		sessionRoutes.RegisterRoutes(v1, manager)

		scoped := v1.Group("/")
		scoped.Use(middleware.SessionMiddleware(manager))
		{
			ai_model.RegisterRoutes(scoped)
			training.RegisterRoutes(scoped)
		}
	}

	return router
}
