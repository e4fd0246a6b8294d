package handlers

import (
	"github.com/gin-gonic/gin"

	"telehealth-server/internal/query"
	"telehealth-server/internal/utils"
)

// SymptomHandler runs the symptom checker.
type SymptomHandler struct {
	Doctors *query.Doctors
}

// NewSymptomHandler creates a new SymptomHandler.
func NewSymptomHandler(doctors *query.Doctors) *SymptomHandler {
	return &SymptomHandler{Doctors: doctors}
}

// AnalyzeSymptomsRequest is the free text the user typed.
type AnalyzeSymptomsRequest struct {
	Text string `json:"text" binding:"notblank"`
}

// AnalyzeSymptoms matches symptoms and suggests conditions and doctors.
func (h *SymptomHandler) AnalyzeSymptoms(c *gin.Context) {
	var req AnalyzeSymptomsRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	utils.Success(c, "Symptoms analyzed", h.Doctors.AnalyzeSymptoms(req.Text))
}
