package models

// Specialty classifies a Doctor.
type Specialty string

const (
	SpecialtyGynecologist Specialty = "gynecologist"
	SpecialtyPsychiatrist Specialty = "psychiatrist"
	SpecialtyTherapist    Specialty = "therapist"

	// SpecialtyAll is the filter selector matching every specialty.
	SpecialtyAll Specialty = "all"
)

// Specialties lists the specialties in catalog assignment order.
var Specialties = []Specialty{SpecialtyGynecologist, SpecialtyPsychiatrist, SpecialtyTherapist}

// Weekdays are the days a doctor can publish availability for.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Location is where a doctor practices.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// Doctor is an immutable catalog record generated at startup.
type Doctor struct {
	ID                   string              `json:"id"`
	Name                 string              `json:"name"`
	Specialty            Specialty           `json:"specialty"`
	Hospital             string              `json:"hospital"`
	Rating               float64             `json:"rating"`
	ReviewCount          int                 `json:"reviewCount"`
	ImageURL             string              `json:"imageUrl"`
	Bio                  string              `json:"bio"`
	Education            []string            `json:"education"`
	Experience           int                 `json:"experience"`
	Languages            []string            `json:"languages"`
	AcceptingNewPatients bool                `json:"acceptingNewPatients"`
	ConsultationFee      int                 `json:"consultationFee"`
	Availability         map[string][]string `json:"availability"`
	Location             Location            `json:"location"`
}

// AvailableOn reports whether the doctor has at least one slot on day.
func (d Doctor) AvailableOn(day string) bool {
	return len(d.Availability[day]) > 0
}
