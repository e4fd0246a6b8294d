package query

import "strings"

var assistantRules = []struct {
	keywords []string
	reply    string
}{
	{[]string{"appointment"}, "You can book an appointment by visiting the Find Doctors page and selecting a specialist. Would you like me to guide you through the process?"},
	{[]string{"symptom"}, "If you're experiencing symptoms, I recommend using our Symptom Checker tool. It can help analyze your symptoms and suggest appropriate specialists. Would you like to try it?"},
	{[]string{"profile"}, "You can edit your profile information by visiting your Profile page. You can update personal details like your date of birth, contact information, and bio. Need help finding it?"},
	{[]string{"doctor"}, "Our platform features various specialists including gynecologists, therapists, and psychiatrists. You can search and filter by specialty on the Find Doctors page. Would you like to see available doctors now?"},
	{[]string{"stress", "anxiety"}, "I understand that stress and anxiety can be challenging. Our platform has several qualified therapists and psychiatrists who specialize in mental health. Would you like me to help you find a specialist?"},
	{[]string{"pregnancy", "women"}, "For women's health concerns, we have experienced gynecologists and obstetricians who can provide specialized care. I can help you book an appointment with one of them if you'd like."},
	{[]string{"thank"}, "You're welcome! I'm here to assist you with any other questions or needs you might have about WellnessConnect services."},
}

// AssistantFallback is the assistant reply when no keyword matches.
const AssistantFallback = "I'm here to help you navigate WellnessConnect. You can ask me about booking appointments, checking symptoms, finding doctors, or managing your profile. How can I assist you today?"

// SupportGreeting is the support agent's reply to a user's first message.
const SupportGreeting = "Hello! This is Sarah from support. How can I help you today?"

// AssistantResponse returns the site assistant's scripted reply.
func AssistantResponse(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range assistantRules {
		for _, k := range rule.keywords {
			if strings.Contains(lower, k) {
				return rule.reply
			}
		}
	}
	return AssistantFallback
}
