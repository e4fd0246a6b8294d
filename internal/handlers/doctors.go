package handlers

import (
	"github.com/gin-gonic/gin"

	"telehealth-server/internal/models"
	"telehealth-server/internal/query"
	"telehealth-server/internal/utils"
)

// DoctorHandler serves the doctor catalog.
type DoctorHandler struct {
	Doctors *query.Doctors
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(doctors *query.Doctors) *DoctorHandler {
	return &DoctorHandler{Doctors: doctors}
}

// ListDoctorsQuery holds the catalog filters.
type ListDoctorsQuery struct {
	Specialty   string `form:"specialty"`
	Query       string `form:"q"`
	Sort        string `form:"sort" binding:"omitempty,oneof=rating price_low price_high distance"`
	MinFee      int    `form:"minFee" binding:"omitempty,min=0"`
	MaxFee      int    `form:"maxFee" binding:"omitempty,min=0"`
	AvailableOn string `form:"availableOn" binding:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday"`
}

// GetDoctors lists catalog doctors matching the query.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	var q ListDoctorsQuery
	if !utils.BindQuery(c, &q) {
		return
	}

	doctors := h.Doctors.Search(query.SearchOptions{
		Specialty:   models.Specialty(q.Specialty),
		Query:       q.Query,
		MinFee:      q.MinFee,
		MaxFee:      q.MaxFee,
		AvailableOn: q.AvailableOn,
		Sort:        q.Sort,
	})
	utils.Success(c, "Doctors retrieved successfully", doctors)
}

// GetDoctorByID returns one doctor.
func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	doctor, ok := h.Doctors.ByID(c.Param("id"))
	if !ok {
		utils.NotFound(c, "Doctor not found")
		return
	}
	utils.Success(c, "Doctor retrieved successfully", doctor)
}

// GetDoctorReviews returns the reviews of one doctor.
func (h *DoctorHandler) GetDoctorReviews(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.Doctors.ByID(id); !ok {
		utils.NotFound(c, "Doctor not found")
		return
	}
	utils.Success(c, "Reviews retrieved successfully", h.Doctors.Reviews(id))
}

// DoctorResponseRequest is a message to run through a doctor's responder.
type DoctorResponseRequest struct {
	Message string `json:"message" binding:"notblank"`
}

// GetDoctorResponse returns the canned reply of a doctor to a message,
// without touching any session.
func (h *DoctorHandler) GetDoctorResponse(c *gin.Context) {
	var req DoctorResponseRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	utils.Success(c, "Response generated", gin.H{
		"doctorId": c.Param("id"),
		"response": h.Doctors.DoctorResponse(c.Param("id"), req.Message),
	})
}
