package handlers

import (
	"github.com/gin-gonic/gin"

	"telehealth-server/internal/middleware"
	"telehealth-server/internal/models"
	"telehealth-server/internal/session"
	"telehealth-server/internal/utils"
)

// currentSession returns the request's session or writes a 500.
func currentSession(c *gin.Context) (*session.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		utils.InternalServerError(c, "Session not found in context")
		return nil, false
	}
	return sess, true
}

// currentUser returns the session and its signed-in user or writes a 401.
func currentUser(c *gin.Context) (*session.Session, *models.User, bool) {
	sess, ok := currentSession(c)
	if !ok {
		return nil, nil, false
	}
	user := sess.Store.User()
	if user == nil {
		utils.Unauthorized(c, "Please sign in to continue")
		return nil, nil, false
	}
	return sess, user, true
}
