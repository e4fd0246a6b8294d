package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"telehealth-server/internal/config"
	"telehealth-server/internal/metrics"
	"telehealth-server/internal/models"
	"telehealth-server/internal/query"
	"telehealth-server/internal/session"
	"telehealth-server/internal/utils"
	"telehealth-server/pkg/logging"
)

const supportGreetingKey = "support-greeting"

// MessageHandler handles the session chat.
type MessageHandler struct {
	Doctors *query.Doctors
	Delays  config.DelayConfig
	Metrics *metrics.Metrics
	Logger  *logging.Logger
	Now     func() time.Time
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(doctors *query.Doctors, delays config.DelayConfig, m *metrics.Metrics, logger *logging.Logger) *MessageHandler {
	return &MessageHandler{Doctors: doctors, Delays: delays, Metrics: m, Logger: logger, Now: time.Now}
}

// SendMessageRequest represents the request body for sending a message.
type SendMessageRequest struct {
	ReceiverID string `json:"receiverId" binding:"notblank"`
	Content    string `json:"content" binding:"notblank"`
}

func (h *MessageHandler) message(sender, receiver, content string) models.Message {
	return models.Message{
		ID:         uuid.New().String(),
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		Timestamp:  h.Now().UTC().Format(time.RFC3339Nano),
		IsRead:     true,
	}
}

// SendMessage stores the user's message and schedules the simulated reply:
// the assistant answers from its keyword table, the support agent greets
// once, and any other receiver answers as the doctor with that id.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	sess, user, ok := currentUser(c)
	if !ok {
		return
	}

	msg := h.message(user.ID, req.ReceiverID, req.Content)
	sess.Store.AddMessage(msg)

	var err error
	switch req.ReceiverID {
	case models.AssistantID:
		_, err = sess.Scheduler.After(h.Delays.AssistantReply, func(context.Context) {
			reply := h.message(models.AssistantID, user.ID, query.AssistantResponse(req.Content))
			reply.IsAI = true
			h.deliver(sess, user.ID, reply)
		})
		h.Metrics.ObserveScheduledReply("assistant")
	case models.SupportAgentID:
		if !h.greeted(sess, user.ID) {
			_, err = sess.Scheduler.AfterKeyed(supportGreetingKey, h.Delays.AgentGreeting, func(context.Context) {
				h.deliver(sess, user.ID, h.message(models.SupportAgentID, user.ID, query.SupportGreeting))
			})
			h.Metrics.ObserveScheduledReply("agent")
		}
	default:
		doctorID := req.ReceiverID
		_, err = sess.Scheduler.After(h.Delays.DoctorReplyDelay(req.Content), func(context.Context) {
			reply := h.Doctors.DoctorResponse(doctorID, req.Content)
			h.deliver(sess, user.ID, h.message(doctorID, user.ID, reply))
		})
		h.Metrics.ObserveScheduledReply("doctor")
	}
	if err != nil {
		h.Logger.Warn("reply not scheduled", "session_id", sess.ID, "error", err)
	}

	utils.Accepted(c, "Message sent", msg)
}

// deliver adds a reply unless the user signed out in the meantime.
func (h *MessageHandler) deliver(sess *session.Session, userID string, reply models.Message) {
	current := sess.Store.User()
	if current == nil || current.ID != userID {
		return
	}
	sess.Store.AddMessage(reply)
}

func (h *MessageHandler) greeted(sess *session.Session, userID string) bool {
	for _, m := range sess.Store.Messages() {
		if m.SenderID == models.SupportAgentID && m.ReceiverID == userID {
			return true
		}
	}
	return false
}

// GetMessages returns the chat log. With ?with=<id> only the conversation
// between the user and that participant is returned, and messages the
// user received in it are marked read.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	peer := c.Query("with")
	if peer == "" {
		utils.Success(c, "Messages retrieved successfully", sess.Store.Messages())
		return
	}
	user := sess.Store.User()
	if user == nil {
		utils.Unauthorized(c, "Please sign in to continue")
		return
	}
	utils.Success(c, "Messages retrieved successfully", sess.Store.Conversation(user.ID, peer))
}

// MarkMessageAsRead flags one message as read.
func (h *MessageHandler) MarkMessageAsRead(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	if !sess.Store.MarkMessageAsRead(c.Param("id")) {
		utils.NotFound(c, "Message not found")
		return
	}
	utils.Success(c, "Message marked as read", nil)
}
