package query

import (
	"fmt"
	"sort"
	"strings"

	"telehealth-server/internal/models"
)

// Severity of a candidate condition.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// Symptom is an entry of the fixed symptom vocabulary.
type Symptom struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Condition is a candidate condition for a symptom.
type Condition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Specialty   string   `json:"specialty"`
}

// SymptomAnalysis is the symptom checker's answer to one message.
type SymptomAnalysis struct {
	Text        string          `json:"text"`
	IsEmergency bool            `json:"isEmergency"`
	IsAnalysis  bool            `json:"isAnalysis"`
	Symptoms    []Symptom       `json:"symptoms"`
	Conditions  []Condition     `json:"conditions"`
	Doctors     []models.Doctor `json:"doctors"`
}

// Fixed responses of the symptom checker.
const (
	EmergencyAlert   = "⚠️ EMERGENCY ALERT: Based on what you've described, you may be experiencing a medical emergency. Please seek immediate medical attention by visiting your nearest emergency room or calling emergency services. Don't wait for symptoms to worsen."
	NoSymptomsPrompt = "I couldn't identify specific symptoms from your description. Could you please provide more details about how you're feeling? For example, do you have pain, fever, cough, fatigue, or other symptoms? When did they start, and how severe are they?"
)

var symptomVocabulary = []Symptom{
	{"s1", "Headache"},
	{"s2", "Fever"},
	{"s3", "Cough"},
	{"s4", "Sore throat"},
	{"s5", "Shortness of breath"},
	{"s6", "Fatigue"},
	{"s7", "Nausea"},
	{"s8", "Dizziness"},
	{"s9", "Chest pain"},
	{"s10", "Back pain"},
	{"s11", "Joint pain"},
	{"s12", "Rash"},
	{"s13", "Abdominal pain"},
	{"s14", "Diarrhea"},
	{"s15", "Loss of appetite"},
}

var conditionTable = map[string][]Condition{
	"s1": {
		{"c1", "Tension headache", "Common headache with mild to moderate pain", SeverityLow, "General Practitioner"},
		{"c2", "Migraine", "Severe headache often with nausea and sensitivity to light", SeverityMedium, "Neurologist"},
		{"c3", "Cluster headache", "Extremely painful headaches occurring in clusters", SeverityHigh, "Neurologist"},
	},
	"s2": {
		{"c4", "Common cold", "Viral infection with mild fever and upper respiratory symptoms", SeverityLow, "General Practitioner"},
		{"c5", "Influenza", "Viral infection with high fever, body aches, and fatigue", SeverityMedium, "General Practitioner"},
		{"c6", "Malaria", "Parasitic infection with cycles of fever, chills, and sweats", SeverityHigh, "Infectious Disease"},
	},
	"s3": {
		{"c7", "Common cold", "Viral infection with mild cough and congestion", SeverityLow, "General Practitioner"},
		{"c8", "Bronchitis", "Inflammation of the bronchial tubes with persistent cough", SeverityMedium, "Pulmonologist"},
		{"c9", "Pneumonia", "Infection of the lungs with cough, fever, and difficulty breathing", SeverityHigh, "Pulmonologist"},
	},
	"s5": {
		{"c10", "Anxiety", "Feeling of worry or fear that can cause physical symptoms", SeverityMedium, "Psychiatrist"},
		{"c11", "Asthma", "Chronic condition with recurring episodes of breathlessness", SeverityMedium, "Pulmonologist"},
		{"c12", "Pneumonia", "Infection of the lungs with cough, fever, and difficulty breathing", SeverityHigh, "Pulmonologist"},
	},
	"s9": {
		{"c13", "Acid reflux", "Stomach acid flows back into the esophagus causing pain", SeverityLow, "Gastroenterologist"},
		{"c14", "Angina", "Reduced blood flow to the heart causing chest pain", SeverityMedium, "Cardiologist"},
		{"c15", "Heart attack", "Blocked blood flow to the heart requiring immediate attention", SeverityHigh, "Cardiologist"},
	},
}

// defaultConditionsKey names the table used for symptoms without one.
const defaultConditionsKey = "s1"

var emergencyTerms = []string{
	"chest pain", "difficulty breathing", "severe bleeding", "unconscious", "stroke",
	"heart attack", "severe burn", "seizure", "suicide", "poisoning",
}

// IsEmergency reports whether text mentions any emergency term.
func IsEmergency(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range emergencyTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// FindSymptoms returns the vocabulary symptoms contained in text, in
// vocabulary order.
func FindSymptoms(text string) []Symptom {
	lower := strings.ToLower(text)
	found := make([]Symptom, 0)
	for _, s := range symptomVocabulary {
		if strings.Contains(lower, strings.ToLower(s.Name)) {
			found = append(found, s)
		}
	}
	return found
}

// ConditionsFor returns the candidate conditions keyed by the first
// symptom. With several symptoms the list is ordered high to low severity,
// keeping table order among equal severities.
func ConditionsFor(symptoms []Symptom) []Condition {
	if len(symptoms) == 0 {
		return []Condition{}
	}
	table, ok := conditionTable[symptoms[0].ID]
	if !ok {
		table = conditionTable[defaultConditionsKey]
	}
	out := append([]Condition(nil), table...)
	if len(symptoms) > 1 {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Severity.rank() > out[j].Severity.rank() })
	}
	return out
}

// RecommendedDoctors returns up to three doctors whose specialty matches
// or contains the condition specialty, or is contained by it.
func (q *Doctors) RecommendedDoctors(c Condition) []models.Doctor {
	want := strings.ToLower(c.Specialty)
	out := make([]models.Doctor, 0, 3)
	for _, d := range q.catalog.Doctors() {
		have := strings.ToLower(string(d.Specialty))
		if strings.Contains(have, want) || strings.Contains(want, have) {
			out = append(out, d)
			if len(out) == 3 {
				break
			}
		}
	}
	return out
}

// AnalyzeSymptoms runs the symptom checker over a free-text description.
// Emergency terms short-circuit every other match.
func (q *Doctors) AnalyzeSymptoms(text string) SymptomAnalysis {
	symptoms := FindSymptoms(text)
	if IsEmergency(text) {
		return SymptomAnalysis{
			Text:        EmergencyAlert,
			IsEmergency: true,
			Symptoms:    symptoms,
			Conditions:  []Condition{},
			Doctors:     []models.Doctor{},
		}
	}
	if len(symptoms) == 0 {
		return SymptomAnalysis{
			Text:       NoSymptomsPrompt,
			Symptoms:   symptoms,
			Conditions: []Condition{},
			Doctors:    []models.Doctor{},
		}
	}

	conditions := ConditionsFor(symptoms)
	names := make([]string, len(symptoms))
	for i, s := range symptoms {
		names[i] = s.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your symptoms of %s, here's my analysis:\n\n", strings.Join(names, ", "))
	for i, c := range conditions {
		fmt.Fprintf(&b, "%d. **%s** (%s severity): %s\n", i+1, c.Name, c.Severity, c.Description)
	}
	doctors := q.RecommendedDoctors(conditions[0])
	fmt.Fprintf(&b, "\nBased on your symptoms, I recommend consulting with a %s.", conditions[0].Specialty)
	if len(doctors) > 0 {
		fmt.Fprintf(&b, " I've found %d specialists who might be able to help with your condition.", len(doctors))
	}
	b.WriteString("\n\nRemember, this is not a definitive diagnosis. For proper medical advice, please consult with a healthcare professional.")

	return SymptomAnalysis{
		Text:       b.String(),
		IsAnalysis: true,
		Symptoms:   symptoms,
		Conditions: conditions,
		Doctors:    doctors,
	}
}
