package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"telehealth-server/internal/store"
	"telehealth-server/internal/utils"
)

// StateHandler exposes the session state and its change stream.
type StateHandler struct{}

// NewStateHandler creates a new StateHandler.
func NewStateHandler() *StateHandler {
	return &StateHandler{}
}

// GetState returns a snapshot of the whole session state.
func (h *StateHandler) GetState(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	utils.Success(c, "State retrieved successfully", sess.Store.Snapshot(c.Request.Context()))
}

// UpdateUI changes presentation flags.
func (h *StateHandler) UpdateUI(c *gin.Context) {
	var req store.UIPatch
	if !utils.BindAndValidate(c, &req) {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	utils.Success(c, "UI state updated", sess.Store.UpdateUI(req))
}

// Events streams change events as server-sent events until the client
// disconnects or the session ends.
func (h *StateHandler) Events(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	events, unsubscribe := sess.Store.Subscribe()
	defer unsubscribe()

	c.SSEvent("ready", gin.H{"unreadNotificationsCount": sess.Store.UnreadNotificationsCount()})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case ev, open := <-events:
			if !open {
				return false
			}
			c.SSEvent(string(ev.Type), gin.H{
				"type":                     ev.Type,
				"unreadNotificationsCount": sess.Store.UnreadNotificationsCount(),
			})
			return true
		}
	})
}
