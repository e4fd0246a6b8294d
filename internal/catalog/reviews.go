package catalog

import (
	"fmt"
	"math/rand"
	"time"

	"telehealth-server/internal/models"
)

// curatedReviews are the hand-written reviews of the first doctors.
var curatedReviews = map[string][]models.Review{
	"d1": {
		{ID: "r1", PatientName: "Amara Okafor", PatientAvatar: "/doctors/patient-1.jpg", Rating: 5, Date: "June 12, 2024",
			Content: "Dr. Amara Okafor was incredibly attentive and knowledgeable. She took the time to listen to all my concerns and provided clear explanations. I felt comfortable throughout the entire appointment.", Helpful: 24, NotHelpful: 1},
		{ID: "r2", PatientName: "Chioma Nwosu", PatientAvatar: "/doctors/patient-2.jpg", Rating: 4, Date: "May 28, 2024",
			Content: "Very professional and caring doctor. The wait time was a bit long, but the quality of care made up for it. Would definitely recommend Dr. Okafor to others.", Helpful: 18, NotHelpful: 2},
		{ID: "r3", PatientName: "Fatima Ibrahim", PatientAvatar: "/doctors/patient-3.jpg", Rating: 5, Date: "April 15, 2024",
			Content: "Dr. Okafor has been my gynecologist for years. She's always been excellent at explaining complex medical terms in simple language. I trust her completely with my health.", Helpful: 32},
	},
	"d2": {
		{ID: "r4", PatientName: "Nadia Ahmed", PatientAvatar: "/doctors/patient-4.jpg", Rating: 5, Date: "June 5, 2024",
			Content: "Dr. Adebayo Okonkwo has helped me so much with my anxiety. He creates a safe space for discussing difficult topics and has given me practical strategies that actually work in my daily life.", Helpful: 41, NotHelpful: 3},
		{ID: "r5", PatientName: "Daniel Mensah", PatientAvatar: "/doctors/patient-5.jpg", Rating: 4, Date: "May 10, 2024",
			Content: "Very knowledgeable psychiatrist. Dr. Okonkwo takes a holistic approach to mental health and considers lifestyle factors along with medication when appropriate.", Helpful: 22, NotHelpful: 1},
	},
	"d3": {
		{ID: "r6", PatientName: "Zainab Diallo", PatientAvatar: "/doctors/patient-6.jpg", Rating: 5, Date: "June 18, 2024",
			Content: "Dr. Folami Nkosi is an amazing therapist. She's helped me work through some difficult trauma with patience and skill. Her cognitive behavioral therapy techniques have been life-changing.", Helpful: 36, NotHelpful: 2},
		{ID: "r7", PatientName: "Kwame Asante", PatientAvatar: "/doctors/patient-7.jpg", Rating: 5, Date: "April 22, 2024",
			Content: "I've been seeing Dr. Nkosi for depression for about 6 months, and the improvement in my quality of life has been dramatic. She's compassionate but also challenges me when needed.", Helpful: 29},
		{ID: "r8", PatientName: "Esther Mutanga", PatientAvatar: "/doctors/patient-8.jpg", Rating: 4, Date: "March 15, 2024",
			Content: "Dr. Nkosi provides a perfect balance of listening and advice. She remembers details from previous sessions and builds on them, making therapy feel like a continuous journey.", Helpful: 17, NotHelpful: 1},
	},
	"d4": {
		{ID: "r9", PatientName: "Aisha Mohammed", PatientAvatar: "/doctors/patient-9.jpg", Rating: 5, Date: "May 30, 2024",
			Content: "Dr. Makena Kimani is extremely knowledgeable and thorough. She spent a lot of time answering all my questions and made me feel at ease during my examination.", Helpful: 31, NotHelpful: 2},
		{ID: "r10", PatientName: "Lina Abebe", PatientAvatar: "/doctors/patient-10.jpg", Rating: 3, Date: "April 10, 2024",
			Content: "Dr. Kimani is very professional, but I had to wait quite a long time for my appointment. The care itself was good, just be prepared for potential delays.", Helpful: 14, NotHelpful: 8},
	},
	"d5": {
		{ID: "r11", PatientName: "Ngozi Eze", PatientAvatar: "/doctors/patient-11.jpg", Rating: 5, Date: "June 8, 2024",
			Content: "Dr. Imani Omondi helped me work through my postpartum depression with such compassion. She's an excellent listener and offers practical advice that's easy to implement.", Helpful: 39, NotHelpful: 1},
		{ID: "r12", PatientName: "Tendai Moyo", PatientAvatar: "/doctors/patient-12.jpg", Rating: 5, Date: "May 12, 2024",
			Content: "I've been dealing with anxiety for years, and Dr. Omondi is the first therapist who's really helped me make progress. Her approach is evidence-based but also personalized.", Helpful: 27, NotHelpful: 2},
	},
}

var reviewerNames = []string{
	"John Kamau", "Grace Muthoni", "Ibrahim Hassan", "Wanjiku Njoroge", "Samuel Osei",
	"Victoria Adeyemi", "Emmanuel Onyango", "Fatima Ali", "David Owusu", "Sarah Kigongo",
	"Michael Tutu", "Esther Acheng", "Daniel Mensah", "Rebecca Okoth", "Paul Ndungu",
	"Elizabeth Mutua", "Joseph Okoro", "Aisha Mohammed", "Peter Njenga", "Mary Otieno",
}

var reviewContents = []string{
	"Very professional and knowledgeable doctor. I felt comfortable during my entire visit.",
	"Excellent bedside manner. The doctor took time to explain everything clearly.",
	"I was very impressed with the level of care I received. Highly recommend!",
	"The doctor was patient and addressed all my concerns. Very satisfied with my visit.",
	"Great experience overall. The doctor was thorough and compassionate.",
	"The doctor was running a bit late, but the quality of care made up for it.",
	"I appreciated how the doctor listened carefully to my symptoms before diagnosing.",
	"Friendly, professional, and made me feel at ease. Would definitely go back.",
	"The doctor explained my treatment options clearly and helped me make an informed decision.",
	"Very satisfied with my appointment. The doctor was attentive and knowledgeable.",
}

// generateReviews returns curated reviews plus 1-3 generated reviews for
// every other doctor, dated within the 90 days before now.
func generateReviews(r *rand.Rand, doctors []models.Doctor, now time.Time) map[string][]models.Review {
	out := make(map[string][]models.Review, len(doctors))
	for id, reviews := range curatedReviews {
		out[id] = append([]models.Review(nil), reviews...)
	}
	for _, d := range doctors {
		if _, ok := out[d.ID]; ok {
			continue
		}
		n := r.Intn(3) + 1
		reviews := make([]models.Review, 0, n)
		for i := 0; i < n; i++ {
			date := now.AddDate(0, 0, -r.Intn(90))
			reviews = append(reviews, models.Review{
				ID:            fmt.Sprintf("r-%s-%d", d.ID, i),
				PatientName:   pick(r, reviewerNames),
				PatientAvatar: fmt.Sprintf("/doctors/patient-%d.jpg", r.Intn(12)+1),
				Rating:        r.Intn(2) + 4,
				Date:          date.Format("January 2, 2006"),
				Content:       pick(r, reviewContents),
				Helpful:       r.Intn(30) + 5,
				NotHelpful:    r.Intn(5),
			})
		}
		out[d.ID] = reviews
	}
	return out
}
