package counselor

import "strings"

// Language is the reply language tag
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// ParseLanguage maps anything other than "hi" to English
func ParseLanguage(s string) Language {
	if strings.EqualFold(strings.TrimSpace(s), string(Hindi)) {
		return Hindi
	}
	return English
}

// Name is the language as spelled in prompts
func (l Language) Name() string {
	if l == Hindi {
		return "Hindi"
	}
	return "English"
}

type texts struct {
	Greeting        string
	CourseMenu      string
	FeeQuestion     string
	FeeOptions      []string
	FaqIntro        string
	PlacementIntro  string
	FollowUp        string
	FollowUpOptions []string
	LeadPrompt      string
	LeadThanks      string
	Privacy         string
	GenericError    string
}

var localized = map[Language]texts{
	English: {
		Greeting:        "Hello! I am the university's AI admission counselor. How can I assist you today? You can ask me about courses, fees, eligibility, and more.",
		CourseMenu:      "Here are the courses we offer. Select one to learn more.",
		FeeQuestion:     "I can help with that. Are you interested in course fees, hostel fees, or bus fees?",
		FeeOptions:      []string{"Course Fees", "Hostel Fees", "Bus Fees"},
		FaqIntro:        "Here are some frequently asked questions. Select one to see the answer.",
		PlacementIntro:  "Select a course to learn about its placement record.",
		FollowUp:        "Thank you for your query! What would you like to know next?",
		FollowUpOptions: []string{"Courses", "Fees", "FAQ", "Placement"},
		LeadPrompt:      "Before I answer, please share your name and 10-digit phone number so our admission team can reach you.",
		LeadThanks:      "Thank you, %s! Now, let me answer your question.",
		Privacy:         "Your name and contact number will be used only to reach you regarding this service. We respect your privacy.",
		GenericError:    "An error occurred while processing your request. Please try again.",
	},
	Hindi: {
		Greeting:        "नमस्ते! मैं विश्वविद्यालय का AI प्रवेश परामर्शदाता हूँ। आज मैं आपकी कैसे सहायता कर सकता हूँ? आप मुझसे पाठ्यक्रम, शुल्क, पात्रता और बहुत कुछ पूछ सकते हैं।",
		CourseMenu:      "ये हमारे द्वारा प्रस्तावित पाठ्यक्रम हैं। अधिक जानने के लिए एक चुनें।",
		FeeQuestion:     "मैं इसमें आपकी मदद कर सकता हूँ। क्या आप पाठ्यक्रम शुल्क, हॉस्टल शुल्क या बस शुल्क के बारे में जानना चाहते हैं?",
		FeeOptions:      []string{"पाठ्यक्रम शुल्क", "हॉस्टल शुल्क", "बस शुल्क"},
		FaqIntro:        "ये कुछ सामान्य प्रश्न हैं। उत्तर देखने के लिए एक चुनें।",
		PlacementIntro:  "प्लेसमेंट की जानकारी के लिए एक पाठ्यक्रम चुनें।",
		FollowUp:        "आपके प्रश्न के लिए धन्यवाद! आप आगे क्या जानना चाहेंगे?",
		FollowUpOptions: []string{"पाठ्यक्रम", "शुल्क", "सामान्य प्रश्न", "प्लेसमेंट"},
		LeadPrompt:      "उत्तर देने से पहले, कृपया अपना नाम और 10 अंकों का फ़ोन नंबर साझा करें ताकि हमारी प्रवेश टीम आपसे संपर्क कर सके।",
		LeadThanks:      "धन्यवाद, %s! अब मैं आपके प्रश्न का उत्तर देता हूँ।",
		Privacy:         "आपका नाम और संपर्क नंबर केवल इस सेवा के संबंध में आपसे संपर्क करने के लिए उपयोग किया जाएगा। हम आपकी गोपनीयता का सम्मान करते हैं।",
		GenericError:    "आपके अनुरोध को संसाधित करते समय एक त्रुटि हुई। कृपया पुनः प्रयास करें।",
	},
}

func textsFor(l Language) texts {
	if t, ok := localized[l]; ok {
		return t
	}
	return localized[English]
}

// GenericErrorMessage is the only text users see when generation fails
func GenericErrorMessage(l Language) string {
	return textsFor(l).GenericError
}
