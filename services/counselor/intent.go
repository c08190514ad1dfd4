package counselor

import (
	"strings"

	"github.com/Anirudh646/dfghjkddfghj/services/knowledge"
)

// Intent is what a query asks for
type Intent int

const (
	IntentForward Intent = iota
	IntentGreeting
	IntentCourseMenu
	IntentFeeMenu
	IntentFaqMenu
	IntentPlacementMenu
)

func (i Intent) String() string {
	switch i {
	case IntentGreeting:
		return "greeting"
	case IntentCourseMenu:
		return "course_menu"
	case IntentFeeMenu:
		return "fee_menu"
	case IntentFaqMenu:
		return "faq_menu"
	case IntentPlacementMenu:
		return "placement_menu"
	default:
		return "forward"
	}
}

// exact whole-query matches, checked in this order
var exactIntents = []struct {
	intent Intent
	words  []string
}{
	{IntentCourseMenu, []string{"course", "courses", "पाठ्यक्रम"}},
	{IntentGreeting, []string{"hi", "hello", "नमस्ते"}},
	{IntentFeeMenu, []string{"fee", "fees", "शुल्क"}},
	{IntentFaqMenu, []string{"faq", "सामान्य प्रश्न"}},
	{IntentPlacementMenu, []string{"placement", "placements", "प्लेसमेंट"}},
}

// Classify decides whether a query is answered locally or forwarded to the model
func Classify(query string, kb *knowledge.Base) Intent {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return IntentForward
	}

	for _, rule := range exactIntents {
		for _, w := range rule.words {
			if q == w {
				return rule.intent
			}
		}
	}

	if (strings.Contains(q, "course") || strings.Contains(q, "program")) && !kb.HasSpecificCourse(q) {
		return IntentCourseMenu
	}
	return IntentForward
}
