package models

// Review is a patient review of a doctor.
type Review struct {
	ID            string `json:"id"`
	PatientName   string `json:"patientName"`
	PatientAvatar string `json:"patientAvatar"`
	Rating        int    `json:"rating"`
	Date          string `json:"date"`
	Content       string `json:"content"`
	Helpful       int    `json:"helpful"`
	NotHelpful    int    `json:"notHelpful"`
}
