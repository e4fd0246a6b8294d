package query

import (
	"fmt"
	"strings"

	"telehealth-server/internal/models"
)

// ConnectionIssueResponse is returned for doctors missing from the catalog.
const ConnectionIssueResponse = "I'm sorry, there seems to be a connection issue. Please try again later."

type replyRule struct {
	keywords []string
	reply    func(d models.Doctor) string
}

func fixed(text string) func(models.Doctor) string {
	return func(models.Doctor) string { return text }
}

func (r replyRule) matches(message string) bool {
	for _, k := range r.keywords {
		if strings.Contains(message, k) {
			return true
		}
	}
	return false
}

// generalRules apply to every doctor, in order.
var generalRules = []replyRule{
	{[]string{"nhif", "insurance"}, fixed("Yes, I accept NHIF and most major Kenyan insurance providers including Jubilee, AAR, and CIC. For specific inquiries about your coverage, please bring your insurance card to your visit, or our admin staff can help verify your benefits before your appointment.")},
	{[]string{"mpesa", "payment"}, fixed("We accept various payment methods including M-Pesa, bank transfers, and major credit/debit cards. For M-Pesa payments, you can pay directly at the hospital using our till number which will be provided at registration.")},
	{[]string{"location", "directions"}, func(d models.Doctor) string {
		return fmt.Sprintf("Our facility is located at %s in %s. We're easily accessible via matatu routes and have ample parking if you're coming with your own vehicle. I can send you precise directions based on your starting point.", d.Hospital, addressArea(d.Location.Address))
	}},
	{[]string{"covid", "corona"}, fixed("We're following all Ministry of Health guidelines for COVID-19 safety. All staff are vaccinated, we practice social distancing, and require masks in waiting areas. We also offer telehealth consultations if you prefer to avoid traveling to the clinic.")},
	{[]string{"appointment"}, fixed("Thank you for your interest in scheduling an appointment. I have availability this week on Wednesday and Friday. You can book through this app, or call our office directly. Remember that you can cancel for free within 1 hour of booking, after which a fee of KSh 500 applies.")},
	{[]string{"symptom", "pain"}, fixed("I understand you're experiencing some symptoms. While I can provide some general guidance, it's important that we discuss this in a proper consultation where I can take a full history. Would you like to book an appointment soon? We have reasonable rates and accept NHIF coverage.")},
	{[]string{"cost", "fee", "price"}, func(d models.Doctor) string {
		return fmt.Sprintf("My consultation fee is KSh %d. Most insurance plans are accepted, including NHIF. The front desk can provide more details about your specific coverage.", d.ConsultationFee*140)
	}},
	{[]string{"hello", "hi"}, func(d models.Doctor) string {
		return fmt.Sprintf("Hello! I'm Dr. %s, %s at %s. How can I assist you today?", surname(d.Name), d.Specialty, d.Hospital)
	}},
	{[]string{"thank"}, fixed("You're welcome. Patient care is my priority, and I'm glad I could help. Feel free to reach out if you have any other questions!")},
	{[]string{"experience", "qualification"}, func(d models.Doctor) string {
		var school string
		if len(d.Education) > 0 {
			school = d.Education[0]
		}
		return fmt.Sprintf("I completed my medical training at %s and have been practicing for %d years. I specialize in %s with particular focus on providing quality healthcare to Kenyan communities.", school, d.Experience, d.Specialty)
	}},
	{[]string{"emergency"}, fixed("If you're experiencing a medical emergency, please call emergency services (999) or go to your nearest emergency room immediately. For urgent but non-emergency matters, my office has same-day appointments available.")},
}

// specialtyRules are consulted only for the doctor's own specialty, after
// the general rules.
var specialtyRules = map[models.Specialty][]replyRule{
	models.SpecialtyGynecologist: {
		{[]string{"pregnant", "pregnancy"}, fixed("Congratulations! Pregnancy is an exciting time with many changes. I provide comprehensive antenatal care following the Kenya Ministry of Health guidelines, including all necessary screenings and monitoring. Would you like to schedule a prenatal consultation?")},
		{[]string{"period", "menstrual"}, fixed("Menstrual issues are common and often treatable. To better understand your situation, I'd need to know more about your symptoms, regularity, and any pain you're experiencing. We can discuss treatment options available here in Kenya, from medication to lifestyle changes.")},
		{[]string{"pap", "smear", "screening"}, fixed("Regular screenings are an important part of preventive care. I recommend pap smears every 3 years for women between 21 and 65, in line with both Kenyan and international guidelines. When was your last screening?")},
	},
	models.SpecialtyPsychiatrist: {
		{[]string{"anxiety", "stress"}, fixed("Anxiety can be challenging to manage on your own. I take a culturally sensitive approach to mental health treatment, understanding the unique pressures faced by Kenyans today. There are various therapeutic approaches and medications that can help. Let's schedule a session to discuss your symptoms and develop a personalized treatment plan.")},
		{[]string{"depress"}, fixed("I'm sorry to hear you're feeling this way. Depression is treatable with the right approach. Mental health awareness is growing in Kenya, and more people are seeking help, which is a positive step. Would you like to schedule an appointment where we can discuss your symptoms in detail and explore treatment options?")},
		{[]string{"medication", "prescription"}, fixed("Medication can be an effective part of treatment for many conditions. We'll need to discuss your symptoms, history, and any previous medications to determine the right approach for you. All prescriptions I provide are available at major pharmacies across Kenya.")},
		{[]string{"sleep", "insomnia"}, fixed("Sleep difficulties can significantly impact your quality of life and may be connected to other aspects of your mental health. In our session, we can discuss both behavioral techniques and medical interventions available here in Kenya to help improve your sleep.")},
	},
	models.SpecialtyTherapist: {
		{[]string{"relationship", "family", "couple"}, fixed("Relationship dynamics can be complex. I provide culturally responsive therapy that respects Kenyan family values while addressing modern relationship challenges. In our sessions, we can work on communication strategies and understanding patterns that may be affecting your relationships.")},
		{[]string{"trauma", "ptsd"}, fixed("Trauma can have long-lasting effects on wellbeing. I use evidence-based approaches adapted to the Kenyan context to help patients process traumatic experiences. We'll work at your pace to develop coping strategies that respect your cultural background and personal experiences.")},
		{[]string{"cbt", "cognitive"}, fixed("Cognitive Behavioral Therapy (CBT) is an effective approach for many conditions and works well across different cultural settings. It helps identify and change negative thought patterns that affect feelings and behaviors. I've adapted these techniques to be culturally appropriate for Kenyan clients.")},
		{[]string{"grief", "loss"}, fixed("I'm sorry for your loss. Grief is a personal journey, and I understand the importance of cultural and community practices in mourning within the Kenyan context. Therapy can provide additional support during this difficult time, respecting your traditions while helping you navigate your emotions.")},
	},
}

// DoctorResponse returns the scripted reply of doctorID to message. The
// first matching keyword group wins; the result depends only on the
// arguments and the catalog.
func (q *Doctors) DoctorResponse(doctorID, message string) string {
	d, ok := q.ByID(doctorID)
	if !ok {
		return ConnectionIssueResponse
	}
	lower := strings.ToLower(message)

	for _, rule := range generalRules {
		if rule.matches(lower) {
			return rule.reply(d)
		}
	}
	for _, rule := range specialtyRules[d.Specialty] {
		if rule.matches(lower) {
			return rule.reply(d)
		}
	}

	return fmt.Sprintf("Thank you for your message. As a healthcare provider practicing in Kenya, I'm committed to delivering quality care that's both affordable and culturally appropriate. Based on my expertise as a %s, I'd like to discuss this further during a consultation where we can address your specific health concerns. Would you like to schedule an appointment at %s?", d.Specialty, d.Hospital)
}

// addressArea returns the second-to-last comma separated part of an
// address ("12 Main St, Nairobi, Kenya" -> "Nairobi").
func addressArea(address string) string {
	parts := strings.Split(address, ",")
	if len(parts) < 2 {
		return strings.TrimSpace(parts[0])
	}
	return strings.TrimSpace(parts[len(parts)-2])
}

func surname(name string) string {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return name
	}
	return fields[1]
}
