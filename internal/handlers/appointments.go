package handlers

import (
	"github.com/gin-gonic/gin"

	"telehealth-server/internal/models"
	"telehealth-server/internal/query"
	"telehealth-server/internal/utils"
	"telehealth-server/pkg/logging"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Doctors *query.Doctors
	Logger  *logging.Logger
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(doctors *query.Doctors, logger *logging.Logger) *AppointmentHandler {
	return &AppointmentHandler{Doctors: doctors, Logger: logger}
}

// CreateAppointmentRequest represents the request body for booking.
type CreateAppointmentRequest struct {
	DoctorID string `json:"doctorId" binding:"notblank"`
	Date     string `json:"date" binding:"notblank"`
	Time     string `json:"time" binding:"notblank"`
	Type     string `json:"type" binding:"required,oneof=video in-person"`
	Notes    string `json:"notes"`
}

// CreateAppointment books a pending appointment for the signed-in user.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	sess, user, ok := currentUser(c)
	if !ok {
		return
	}
	if _, found := h.Doctors.ByID(req.DoctorID); !found {
		utils.NotFound(c, "Doctor not found")
		return
	}

	appointment, err := sess.Store.AddAppointment(c.Request.Context(), models.Appointment{
		DoctorID: req.DoctorID,
		UserID:   user.ID,
		Date:     req.Date,
		Time:     req.Time,
		Type:     models.AppointmentType(req.Type),
		Status:   models.StatusPending,
		Notes:    req.Notes,
	})
	if err != nil {
		h.Logger.Error("failed to save appointment", "session_id", sess.ID, "error", err)
		utils.InternalServerError(c, "Failed to create appointment")
		return
	}

	utils.Created(c, "Appointment created successfully", appointment)
}

// GetAppointments lists appointments, optionally narrowed by ?userId= or
// ?doctorId=.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	repo := sess.Store.Appointments()

	var list []models.Appointment
	switch {
	case c.Query("userId") != "":
		list = repo.ByUser(ctx, c.Query("userId"))
	case c.Query("doctorId") != "":
		list = repo.ByDoctor(ctx, c.Query("doctorId"))
	default:
		list = repo.All(ctx)
	}
	utils.Success(c, "Appointments retrieved successfully", list)
}

// GetAppointmentByID returns one appointment.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	appointment, found := sess.Store.Appointments().ByID(c.Request.Context(), c.Param("id"))
	if !found {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Appointment retrieved successfully", appointment)
}

// UpdateStatusRequest represents the request body for updating appointment status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

// UpdateAppointmentStatus changes the status of one appointment.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	appointment, found, err := sess.Store.UpdateAppointmentStatus(c.Request.Context(), c.Param("id"), models.AppointmentStatus(req.Status))
	if err != nil {
		h.Logger.Error("failed to update appointment", "session_id", sess.ID, "error", err)
		utils.InternalServerError(c, "Failed to update appointment status")
		return
	}
	if !found {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Appointment status updated successfully", appointment)
}

// DeleteAppointment removes one appointment.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	removed, err := sess.Store.RemoveAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.Error("failed to delete appointment", "session_id", sess.ID, "error", err)
		utils.InternalServerError(c, "Failed to delete appointment")
		return
	}
	if !removed {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Appointment deleted successfully", nil)
}
