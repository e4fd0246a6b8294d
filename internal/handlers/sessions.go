package handlers

import (
	"github.com/gin-gonic/gin"

	"telehealth-server/internal/config"
	"telehealth-server/internal/session"
	"telehealth-server/internal/utils"
	"telehealth-server/pkg/logging"
)

// SessionHandler starts and ends sessions.
type SessionHandler struct {
	Sessions *session.Manager
	Cfg      *config.Config
	Logger   *logging.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions *session.Manager, cfg *config.Config, logger *logging.Logger) *SessionHandler {
	return &SessionHandler{Sessions: sessions, Cfg: cfg, Logger: logger}
}

// CreateSessionRequest optionally names the client whose state to restore.
type CreateSessionRequest struct {
	ClientID string `json:"clientId"`
}

// CreateSessionResponse carries the session token.
type CreateSessionResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"sessionId"`
	ClientID  string `json:"clientId"`
	Restored  bool   `json:"restored"`
}

// CreateSession starts a session. An empty body starts a new client.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if c.Request.ContentLength > 0 && !utils.BindAndValidate(c, &req) {
		return
	}

	sess, restored := h.Sessions.Create(c.Request.Context(), req.ClientID)
	token, err := utils.GenerateSessionToken(sess.ID, sess.ClientID, h.Cfg.JWTSecret, h.Cfg.SessionTTL)
	if err != nil {
		_ = h.Sessions.End(sess.ID)
		h.Logger.Error("failed to issue session token", "error", err)
		utils.InternalServerError(c, "Failed to issue session token")
		return
	}

	utils.Created(c, "Session started", CreateSessionResponse{
		Token:     token,
		SessionID: sess.ID,
		ClientID:  sess.ClientID,
		Restored:  restored,
	})
}

// EndSession ends the caller's session. Persisted state is kept.
func (h *SessionHandler) EndSession(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	if err := h.Sessions.End(sess.ID); err != nil {
		utils.NotFound(c, "Session already ended")
		return
	}
	utils.Success(c, "Session ended", nil)
}
