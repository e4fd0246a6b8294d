package models

// Reserved participant ids used by the chat flows.
const (
	SystemSenderID = "system"
	AssistantID    = "ai-assistant"
	SupportAgentID = "agent-1"
)

// Message is one chat line of the session chat log.
type Message struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
	Timestamp  string `json:"timestamp"`
	IsRead     bool   `json:"isRead"`
	IsAI       bool   `json:"isAI,omitempty"`
}
