package catalog

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"telehealth-server/internal/models"
)

type region struct {
	lat, lng  float64
	country   string
	languages func(r *rand.Rand) []string
}

var hospitals = []string{
	"Kenyatta National Hospital, Nairobi",
	"Aga Khan University Hospital, Nairobi",
	"Nairobi Hospital, Nairobi",
	"MP Shah Hospital, Nairobi",
	"Muhimbili National Hospital, Dar es Salaam",
	"Aga Khan Hospital, Dar es Salaam",
	"CCBRT Hospital, Dar es Salaam",
	"Mulago National Referral Hospital, Kampala",
	"Nakasero Hospital, Kampala",
	"International Hospital Kampala, Kampala",
	"Lagos University Teaching Hospital, Lagos",
	"National Hospital Abuja, Abuja",
	"Mayo Clinic, Rochester",
	"Cleveland Clinic, Cleveland",
	"Johns Hopkins Hospital, Baltimore",
	"Guy's and St Thomas' NHS Foundation, London",
	"Royal London Hospital, London",
	"Groote Schuur Hospital, Cape Town",
	"Chris Hani Baragwanath Hospital, Johannesburg",
}

var doctorNames = []string{
	"Amara Okafor", "Makena Kimani", "Eshe Githinji", "Taraji Kamau", "Zuberi Ochieng",
	"Imani Omondi", "Jabari Mwangi", "Kamaria Otieno", "Jelani Njoroge", "Zuri Wekesa",
	"Adebayo Okonkwo", "Folami Nkosi", "Kwame Adeyemi", "Nkechi Ademola", "Olufemi Babatunde",
	"Chinua Achebe", "Ngozi Adichie", "Chiwetel Ejiofor", "Chimamanda Adichie", "Wole Soyinka",
	"Amina Hassan", "Jamal Khalil", "Fatima Al-Farsi", "Hakim Mahfouz", "Leila Abadi",
	"Omar Abdullah", "Layla Rahman", "Zainab Ahmed", "Mohammed El-Sayed", "Aisha Mansour",
	"Sarah Johnson", "Michael Chen", "David Kim", "Maria Rodriguez", "James Wilson",
	"Robert Garcia", "Lisa Wong", "Daniel Martinez", "Isabella Rossi", "Elena Petrov",
	"Rajiv Gupta", "Aisha Patel", "Lakshmi Sharma", "Priya Nair", "Arjun Singh",
	"Deepak Chopra", "Ravi Kumar", "Divya Patel", "Sunita Kaur", "Vikram Mehta",
}

var institutions = []string{
	"Strathmore", "Makerere", "Ibadan", "Witwatersrand", "Johns Hopkins",
	"Edinburgh", "Toronto", "Nairobi", "Cairo", "Melbourne",
}

var streets = []string{
	"Ngong Road", "Kenyatta Avenue", "Moi Avenue", "Haile Selassie Road", "Uhuru Highway",
	"Bagamoyo Road", "Kampala Road", "Broad Street", "Main Street", "Church Road",
}

var timeSlots = []string{"9:00 AM", "10:00 AM", "11:00 AM", "2:00 PM", "3:00 PM"}

var specialtyDescriptions = map[models.Specialty]string{
	models.SpecialtyGynecologist: "specializing in women's reproductive health, prenatal care, and obstetrics",
	models.SpecialtyPsychiatrist: "specializing in mental health disorders, therapy, and comprehensive psychiatric care",
	models.SpecialtyTherapist:    "specializing in mental wellness, cognitive behavioral therapy, and emotional well-being",
}

func maybe(r *rand.Rand, threshold float64, lang string) []string {
	if r.Float64() > threshold {
		return []string{lang}
	}
	return nil
}

var regions = map[string]region{
	"Nairobi":       {-1.2921, 36.8219, "Kenya", eastAfrican("Kikuyu")},
	"Dar es Salaam": {-6.7924, 39.2083, "Tanzania", eastAfrican("Sukuma")},
	"Kampala":       {0.3476, 32.5825, "Uganda", eastAfrican("Luganda")},
	"Lagos":         {6.5244, 3.3792, "Nigeria", westAfrican},
	"Abuja":         {9.0765, 7.3986, "Nigeria", westAfrican},
	"Rochester":     {44.0121, -92.4802, "USA", american},
	"Cleveland":     {41.4993, -81.6944, "USA", american},
	"Baltimore":     {39.2904, -76.6122, "USA", american},
	"London":        {51.5074, -0.1278, "UK", british},
	"Cape Town":     {-33.9249, 18.4241, "South Africa", southAfrican},
	"Johannesburg":  {-26.2041, 28.0473, "South Africa", southAfrican},
}

func eastAfrican(local string) func(r *rand.Rand) []string {
	return func(r *rand.Rand) []string {
		return append([]string{"Swahili"}, maybe(r, 0.5, local)...)
	}
}

func westAfrican(r *rand.Rand) []string {
	var out []string
	out = append(out, maybe(r, 0.5, "Yoruba")...)
	out = append(out, maybe(r, 0.5, "Hausa")...)
	return append(out, maybe(r, 0.7, "Igbo")...)
}

func american(r *rand.Rand) []string { return maybe(r, 0.6, "Spanish") }

func british(r *rand.Rand) []string {
	return append(maybe(r, 0.6, "Hindi"), maybe(r, 0.7, "French")...)
}

func southAfrican(r *rand.Rand) []string {
	return append(maybe(r, 0.5, "Zulu"), maybe(r, 0.6, "Afrikaans")...)
}

// generateDoctors builds the doctor catalog. Record shapes and ids are
// fixed (d1..d50, specialties cycling gynecologist, psychiatrist,
// therapist); field values come from r.
func generateDoctors(r *rand.Rand) []models.Doctor {
	doctors := make([]models.Doctor, 0, len(doctorNames))
	for i, name := range doctorNames {
		specialty := models.Specialties[i%len(models.Specialties)]
		hospitalName, regionName, _ := strings.Cut(hospitals[i%len(hospitals)], ", ")
		reg := regions[regionName]

		languages := append([]string{"English"}, reg.languages(r)...)

		education := []string{
			fmt.Sprintf("M.D., %s University, %d", pick(r, institutions), 2000+r.Intn(15)),
			fmt.Sprintf("Residency, %s Medical Center, %d", pick(r, institutions), 2005+r.Intn(10)),
		}
		if r.Float64() > 0.5 {
			education = append(education, fmt.Sprintf("Fellowship, %s Hospital, %d", pick(r, institutions), 2010+r.Intn(8)))
		}

		availability := make(map[string][]string, len(models.Weekdays))
		for _, day := range models.Weekdays {
			if r.Float64() > 0.3 {
				n := r.Intn(len(timeSlots)) + 1
				availability[day] = append([]string(nil), timeSlots[:n]...)
			} else {
				availability[day] = []string{}
			}
		}

		doctors = append(doctors, models.Doctor{
			ID:                   fmt.Sprintf("d%d", i+1),
			Name:                 name,
			Specialty:            specialty,
			Hospital:             hospitalName,
			Rating:               math.Round((3.5+r.Float64()*1.5)*10) / 10,
			ReviewCount:          r.Intn(50) + 10,
			ImageURL:             fmt.Sprintf("/doctors/doctor-%d.jpg", i%12+1),
			Bio:                  bio(name, specialty, regionName),
			Education:            education,
			Experience:           r.Intn(20) + 5,
			Languages:            languages,
			AcceptingNewPatients: r.Float64() > 0.2,
			ConsultationFee:      r.Intn(150) + 100,
			Availability:         availability,
			Location: models.Location{
				Latitude:  reg.lat + (r.Float64()-0.5)*0.05,
				Longitude: reg.lng + (r.Float64()-0.5)*0.05,
				Address:   fmt.Sprintf("%d %s, %s, %s", r.Intn(999)+100, pick(r, streets), regionName, reg.country),
			},
		})
	}
	return doctors
}

func bio(name string, specialty models.Specialty, regionName string) string {
	firstName, _, _ := strings.Cut(name, " ")
	var regional string
	switch regionName {
	case "Nairobi", "Dar es Salaam", "Kampala":
		regional = fmt.Sprintf(" With extensive experience serving communities in East Africa, %s brings a culturally sensitive approach to healthcare.", firstName)
	case "Lagos", "Abuja":
		regional = fmt.Sprintf(" Having worked extensively across West Africa, %s understands the unique healthcare needs of the region's diverse population.", firstName)
	}
	return fmt.Sprintf("Dr. %s is a compassionate and experienced %s %s.%s With a patient-centered approach, %s is dedicated to providing comprehensive and personalized care that addresses both immediate concerns and long-term health goals.",
		name, specialty, specialtyDescriptions[specialty], regional, firstName)
}

func pick(r *rand.Rand, values []string) string {
	return values[r.Intn(len(values))]
}
