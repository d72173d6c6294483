package session

import (
	"aimodel-generator-backend/internal/middleware"
	"aimodel-generator-backend/internal/services"
	"aimodel-generator-backend/internal/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SessionResponse struct {
	ID string `json:"id"`
}

// CreateSession godoc
// @Summary Open a session
// @Description Each session holds its own models and training run until it is closed or left idle.
// @Tags sessions
// @Produce json
// @Success 201 {object} utils.Response{data=SessionResponse}
// @Router /sessions [post]
func CreateSession(manager *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := manager.Create()
		c.Header(middleware.SessionIDHeader, session.ID())
		utils.Respond(c, http.StatusCreated, "Session created", SessionResponse{ID: session.ID()})
	}
}

// CloseSession godoc
// @Summary Close the caller's session
// @Description Stops any pending generation and training timers and drops the session's models.
// @Tags sessions
// @Produce json
// @Success 200 {object} utils.Response
// @Router /sessions/current [delete]
func CloseSession(manager *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := middleware.CurrentSession(c)
		if !ok {
			return
		}
		manager.Remove(session.ID())
		c.JSON(http.StatusOK, utils.NewSuccessResponse("Session closed", nil))
	}
}
