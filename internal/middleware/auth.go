package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"telehealth-server/internal/session"
	"telehealth-server/internal/utils"
)

const sessionKey = "session"

// SessionMiddleware resolves the Bearer session token to a live session.
func SessionMiddleware(sessions *session.Manager, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Abort(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Abort(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := utils.ValidateToken(parts[1], secret)
		if err != nil {
			utils.Abort(c, http.StatusUnauthorized, "Invalid token: "+err.Error())
			return
		}

		sess, err := sessions.Get(claims.SessionID)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				utils.Abort(c, http.StatusUnauthorized, "Session expired or ended")
			} else {
				utils.Abort(c, http.StatusInternalServerError, err.Error())
			}
			return
		}
		if sess.ClientID != claims.ClientID {
			utils.Abort(c, http.StatusUnauthorized, "Token does not match session")
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequireUser rejects requests whose session has nobody signed in.
// It should be used *after* SessionMiddleware.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSessionFromContext(c)
		if !ok {
			utils.Abort(c, http.StatusInternalServerError, "Session not found in context. SessionMiddleware might be missing.")
			return
		}
		if sess.Store.User() == nil {
			utils.Abort(c, http.StatusUnauthorized, "Please sign in to continue")
			return
		}
		c.Next()
	}
}

// GetSessionFromContext returns the session set by SessionMiddleware.
func GetSessionFromContext(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
