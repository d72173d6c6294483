package middleware

import (
	"aimodel-generator-backend/internal/services"
	"aimodel-generator-backend/internal/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	SessionIDHeader     = "X-Session-ID"
	ContextKeySession   = "session"
	ContextKeyRequestID = "RequestID"
)

// SessionMiddleware resolves the caller's session from the X-Session-ID
// header. A missing or unknown id opens a fresh session; the id in use is
// always echoed back in the response header.
func SessionMiddleware(manager *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var session *services.Session
		if id := c.GetHeader(SessionIDHeader); id != "" {
			session, _ = manager.Get(id)
		}
		if session == nil {
			session = manager.Create()
		}

		c.Header(SessionIDHeader, session.ID())
		c.Set(ContextKeySession, session)
		c.Next()
	}
}

// CurrentSession returns the session stored by SessionMiddleware. If none is
// present it writes a 500 response and returns false.
func CurrentSession(c *gin.Context) (*services.Session, bool) {
	val, exists := c.Get(ContextKeySession)
	if !exists {
		utils.Abort(c, http.StatusInternalServerError, "Session not resolved")
		return nil, false
	}
	session, ok := val.(*services.Session)
	if !ok {
		utils.Abort(c, http.StatusInternalServerError, "Session not resolved")
		return nil, false
	}
	return session, true
}
