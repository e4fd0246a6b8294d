package models

// NotificationType groups notifications by origin.
type NotificationType string

const (
	NotificationAppointment NotificationType = "appointment"
	NotificationMessage     NotificationType = "message"
	NotificationSystem      NotificationType = "system"
)

// Notification is a session-scoped alert for a user.
type Notification struct {
	ID         string           `json:"id"`
	UserID     string           `json:"userId"`
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	Timestamp  string           `json:"timestamp"`
	IsRead     bool             `json:"isRead"`
	Type       NotificationType `json:"type"`
	DoctorID   string           `json:"doctorId,omitempty"`
	DoctorName string           `json:"doctorName,omitempty"`
}
