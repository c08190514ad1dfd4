package counselor

import (
	"strings"
	"testing"

	"github.com/Anirudh646/dfghjkddfghj/services/knowledge"
	"github.com/stretchr/testify/assert"
)

func TestAssembleContext_NamedCourseIncludesFeeStructure(t *testing.T) {
	kb := knowledge.Default()

	for _, c := range kb.Courses {
		t.Run(c.ID, func(t *testing.T) {
			got := AssembleContext("Tell me about "+c.Title+" please", kb)
			assert.Contains(t, got, "Course: "+c.Title)
			assert.Contains(t, got, "Fee Structure:")
			for _, line := range c.FeeLines() {
				assert.Contains(t, got, line)
			}
		})
	}
}

func TestAssembleContext_AliasAndCode(t *testing.T) {
	kb := knowledge.Default()
	bca, _ := kb.FindCourse("bca")

	for _, q := range []string{"bca eligibility?", "what about BCA101"} {
		got := AssembleContext(q, kb)
		assert.Contains(t, got, "Course: "+bca.Title, q)
		assert.Contains(t, got, bca.FeeLines()[0], q)
	}
}

func TestAssembleContext_Fragments(t *testing.T) {
	kb := knowledge.Default()

	tests := []struct {
		query    string
		contains []string
		excludes []string
	}{
		{"What is the hostel fee?", []string{"Hostel Fee: ₹60,000 per year", "Fees: ", "Facilities: "}, []string{"Course: "}},
		{"bus charges", []string{"Bus Fees (per year):", "All routes: ₹20,000"}, []string{"Hostel Fee"}},
		{"हॉस्टल", []string{"Hostel Fee: ₹60,000 per year"}, nil},
		{"any scholarship?", []string{"Scholarships: "}, []string{"Contacts:"}},
		{"which documents do I need", []string{"Required Documents:", "Aadhar Card"}, nil},
		{"admission office phone", []string{"Contacts:", "p.sharma@university.ac.in"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := AssembleContext(tt.query, kb)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestAssembleContext_FallsBackToWholeBase(t *testing.T) {
	kb := knowledge.Default()
	all := RenderAll(kb)

	assert.Equal(t, all, AssembleContext("tell me something interesting", kb))
	// the fragment matches but its field is empty, so nothing is selected
	assert.Equal(t, all, AssembleContext("do you take international students", kb))

	for _, c := range kb.Courses {
		assert.Contains(t, all, "Course: "+c.Title)
	}
	assert.NotContains(t, all, "International Admissions:")
	assert.NotContains(t, all, "Entrance Exams:")
}

func TestAssembleContext_CourseFirstThenFragments(t *testing.T) {
	kb := knowledge.Default()
	got := AssembleContext("mbbs hostel", kb)

	course := strings.Index(got, "Course: MBBS")
	hostel := strings.Index(got, "Hostel Fee:")
	assert.True(t, course >= 0 && hostel > course)
}

func TestRenderCourse_WithoutFees(t *testing.T) {
	got := RenderCourse(knowledge.Course{ID: "x", Title: "X", Code: "X1"})
	assert.Contains(t, got, "Fee Structure: not published")
	assert.NotContains(t, got, "Placement:")
}
