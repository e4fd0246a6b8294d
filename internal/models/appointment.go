package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentType is how the consultation takes place.
type AppointmentType string

const (
	AppointmentVideo    AppointmentType = "video"
	AppointmentInPerson AppointmentType = "in-person"
)

// Appointment represents a booked consultation
type Appointment struct {
	ID        string            `json:"id"`
	DoctorID  string            `json:"doctorId"`
	UserID    string            `json:"userId"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Type      AppointmentType   `json:"type"`
	Status    AppointmentStatus `json:"status"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt string            `json:"createdAt,omitempty"`
}
