package counselor

import (
	"fmt"
	"strings"

	"github.com/Anirudh646/dfghjkddfghj/services/knowledge"
)

type fragment struct {
	keywords []string
	render   func(kb *knowledge.Base) string
}

// fragments are emitted in this order when any keyword appears in the query
var fragments = []fragment{
	{[]string{"fee", "cost", "tuition", "शुल्क"}, renderFees},
	{[]string{"hostel", "housing", "accommodation", "हॉस्टल"}, renderHostel},
	{[]string{"bus", "transport", "बस"}, renderBus},
	{[]string{"scholarship", "financial aid"}, func(kb *knowledge.Base) string {
		return labelled("Scholarships", kb.General.Scholarships)
	}},
	{[]string{"eligib"}, func(kb *knowledge.Base) string {
		return labelled("Eligibility", kb.General.Eligibility)
	}},
	{[]string{"deadline", "apply", "application", "document"}, renderApplication},
	{[]string{"facility", "facilities", "campus", "library", "hostel"}, func(kb *knowledge.Base) string {
		return labelled("Facilities", kb.General.Facilities)
	}},
	{[]string{"contact", "phone", "email"}, renderContacts},
	{[]string{"placement", "job", "प्लेसमेंट"}, renderPlacements},
	{[]string{"exam", "entrance"}, func(kb *knowledge.Base) string {
		return labelled("Entrance Exams", kb.General.EntranceExams)
	}},
	{[]string{"international"}, func(kb *knowledge.Base) string {
		return labelled("International Admissions", kb.General.InternationalAdmissions)
	}},
	{[]string{"status"}, func(kb *knowledge.Base) string {
		return labelled("Application Status", kb.General.ApplicationStatus)
	}},
	{[]string{"faq", "question", "सामान्य प्रश्न"}, renderFaqs},
}

// AssembleContext picks the knowledge relevant to query. Any course the query
// names is rendered in full, fee structure included. With nothing relevant the
// whole knowledge base is returned.
func AssembleContext(query string, kb *knowledge.Base) string {
	q := strings.ToLower(query)
	parts := make([]string, 0, 4)

	for _, c := range kb.MentionedCourses(q) {
		parts = append(parts, RenderCourse(c))
	}
	for _, f := range fragments {
		if !containsAny(q, f.keywords) {
			continue
		}
		if s := f.render(kb); s != "" {
			parts = append(parts, s)
		}
	}

	if len(parts) == 0 {
		return RenderAll(kb)
	}
	return strings.Join(parts, "\n\n")
}

// RenderAll renders the complete knowledge base
func RenderAll(kb *knowledge.Base) string {
	parts := make([]string, 0, len(kb.Courses)+8)
	for _, c := range kb.Courses {
		parts = append(parts, RenderCourse(c))
	}
	for _, f := range []func(*knowledge.Base) string{renderFees, renderHostel, renderBus, renderApplication, renderContacts, renderPlacements, renderFaqs} {
		if s := f(kb); s != "" {
			parts = append(parts, s)
		}
	}
	g := kb.General
	for _, s := range []string{
		labelled("Eligibility", g.Eligibility),
		labelled("Facilities", g.Facilities),
		labelled("Scholarships", g.Scholarships),
		labelled("Entrance Exams", g.EntranceExams),
		labelled("International Admissions", g.InternationalAdmissions),
		labelled("Application Status", g.ApplicationStatus),
	} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

// RenderCourse writes one course record, fee structure included
func RenderCourse(c knowledge.Course) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Course: %s (%s)\n", c.Title, c.Code)
	fmt.Fprintf(&b, "Department: %s\n", c.Department)
	fmt.Fprintf(&b, "Description: %s\n", c.Description)
	fmt.Fprintf(&b, "Eligibility: %s\n", c.Eligibility)
	fmt.Fprintf(&b, "Duration: %s\n", c.Duration)
	fmt.Fprintf(&b, "Credits: %d\n", c.Credits)
	if lines := c.FeeLines(); len(lines) > 0 {
		b.WriteString("Fee Structure:\n")
		for _, l := range lines {
			b.WriteString("- " + l + "\n")
		}
	} else {
		b.WriteString("Fee Structure: not published, contact the admission office\n")
	}
	if c.Placement != "" {
		fmt.Fprintf(&b, "Placement: %s\n", c.Placement)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderFees(kb *knowledge.Base) string {
	return labelled("Fees", kb.General.Fees)
}

func renderHostel(kb *knowledge.Base) string {
	if kb.General.HostelFee <= 0 {
		return ""
	}
	return "Hostel Fee: " + knowledge.FormatINR(kb.General.HostelFee) + " per year"
}

func renderBus(kb *knowledge.Base) string {
	routes := kb.General.SortedBusRoutes()
	if len(routes) == 0 {
		return ""
	}
	return "Bus Fees (per year):\n- " + strings.Join(routes, "\n- ")
}

func renderApplication(kb *knowledge.Base) string {
	g := kb.General
	var b strings.Builder
	if g.ApplicationDeadlines.Fall != "" || g.ApplicationDeadlines.Spring != "" {
		fmt.Fprintf(&b, "Application Deadlines: Fall %s, Spring %s\n", g.ApplicationDeadlines.Fall, g.ApplicationDeadlines.Spring)
	}
	if len(g.RequiredDocuments) > 0 {
		b.WriteString("Required Documents:\n- " + strings.Join(g.RequiredDocuments, "\n- ") + "\n")
	}
	if len(g.ApplicationSteps) > 0 {
		b.WriteString("Application Steps:\n")
		for i, s := range g.ApplicationSteps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderContacts(kb *knowledge.Base) string {
	if len(kb.Contacts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(kb.Contacts))
	for _, c := range kb.Contacts {
		lines = append(lines, fmt.Sprintf("- %s, %s (%s): %s, %s", c.Name, c.Title, c.Department, c.Email, c.Phone))
	}
	return "Contacts:\n" + strings.Join(lines, "\n")
}

func renderPlacements(kb *knowledge.Base) string {
	var lines []string
	if kb.General.Placements != "" {
		lines = append(lines, "Placements: "+kb.General.Placements)
	}
	for _, c := range kb.Courses {
		if c.Placement != "" {
			lines = append(lines, fmt.Sprintf("- %s: %s", c.Title, c.Placement))
		}
	}
	return strings.Join(lines, "\n")
}

func renderFaqs(kb *knowledge.Base) string {
	if len(kb.Faqs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Frequently Asked Questions:\n")
	for _, f := range kb.Faqs {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", f.Question, f.Answer)
	}
	return strings.TrimRight(b.String(), "\n")
}

func labelled(label, value string) string {
	if value == "" {
		return ""
	}
	return label + ": " + value
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
