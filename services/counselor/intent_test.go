package counselor

import (
	"testing"

	"github.com/Anirudh646/dfghjkddfghj/services/knowledge"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	kb := knowledge.Default()

	tests := []struct {
		query string
		want  Intent
	}{
		{"courses", IntentCourseMenu},
		{"  Course ", IntentCourseMenu},
		{"पाठ्यक्रम", IntentCourseMenu},
		{"hi", IntentGreeting},
		{"Hello", IntentGreeting},
		{"नमस्ते", IntentGreeting},
		{"fees", IntentFeeMenu},
		{"FEE", IntentFeeMenu},
		{"शुल्क", IntentFeeMenu},
		{"faq", IntentFaqMenu},
		{"सामान्य प्रश्न", IntentFaqMenu},
		{"placements", IntentPlacementMenu},
		{"प्लेसमेंट", IntentPlacementMenu},
		{"What courses do you offer?", IntentCourseMenu},
		{"which program suits me", IntentCourseMenu},
		{"Course Fees", IntentCourseMenu},
		{"describe the program", IntentCourseMenu},
		{"Tell me about the BCA course", IntentForward},
		{"is the b.tech program good", IntentForward},
		{"hi there", IntentForward},
		{"What is the hostel fee?", IntentForward},
		{"When is the application deadline", IntentForward},
		{"", IntentForward},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.query, kb))
		})
	}
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "fee_menu", IntentFeeMenu.String())
	assert.Equal(t, "forward", Intent(99).String())
}
