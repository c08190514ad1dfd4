// Package knowledge holds the university's static admissions data: courses,
// contacts, FAQs and general information. The counselor reads it to answer
// locally and to build model context.
package knowledge

import "sort"

// Course is one undergraduate programme
type Course struct {
	ID           string         `json:"id" yaml:"id"`
	Title        string         `json:"title" yaml:"title"`
	Department   string         `json:"department" yaml:"department"`
	Code         string         `json:"code" yaml:"code"`
	Description  string         `json:"description" yaml:"description"`
	Eligibility  string         `json:"eligibility" yaml:"eligibility"`
	Duration     string         `json:"duration" yaml:"duration"`
	Credits      int            `json:"credits" yaml:"credits"`
	FeeStructure map[string]int `json:"fee_structure,omitempty" yaml:"fee_structure,omitempty"`
	Placement    string         `json:"placement_info,omitempty" yaml:"placement_info,omitempty"`
	// Aliases are extra lower-case tokens that name the course in a query, e.g. "bca"
	Aliases []string `json:"-" yaml:"aliases,omitempty"`
}

// Contact is an admissions office staff member
type Contact struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Title      string `json:"title" yaml:"title"`
	Department string `json:"department" yaml:"department"`
	Email      string `json:"email" yaml:"email"`
	Phone      string `json:"phone" yaml:"phone"`
	AvatarID   string `json:"avatar_id" yaml:"avatar_id"`
}

type FaqItem struct {
	ID       string `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

type Deadlines struct {
	Fall   string `json:"fall" yaml:"fall"`
	Spring string `json:"spring" yaml:"spring"`
}

// GeneralInfo is the free-text part of the knowledge base.
// Empty optional fields are left out of model context.
type GeneralInfo struct {
	ApplicationDeadlines    Deadlines      `json:"application_deadlines" yaml:"application_deadlines"`
	RequiredDocuments       []string       `json:"required_documents" yaml:"required_documents"`
	ApplicationSteps        []string       `json:"application_steps" yaml:"application_steps"`
	Fees                    string         `json:"fees" yaml:"fees"`
	HostelFee               int            `json:"hostel_fee,omitempty" yaml:"hostel_fee,omitempty"`
	BusFees                 map[string]int `json:"bus_fees,omitempty" yaml:"bus_fees,omitempty"`
	Eligibility             string         `json:"eligibility" yaml:"eligibility"`
	Facilities              string         `json:"facilities" yaml:"facilities"`
	Scholarships            string         `json:"scholarships,omitempty" yaml:"scholarships,omitempty"`
	EntranceExams           string         `json:"entrance_exams,omitempty" yaml:"entrance_exams,omitempty"`
	ApplicationStatus       string         `json:"application_status,omitempty" yaml:"application_status,omitempty"`
	InternationalAdmissions string         `json:"international_admissions,omitempty" yaml:"international_admissions,omitempty"`
	Placements              string         `json:"placements,omitempty" yaml:"placements,omitempty"`
}

// Base is the whole knowledge base
type Base struct {
	Courses  []Course    `json:"courses" yaml:"courses"`
	Contacts []Contact   `json:"contacts" yaml:"contacts"`
	Faqs     []FaqItem   `json:"faqs" yaml:"faqs"`
	General  GeneralInfo `json:"general" yaml:"general"`
}

// FeeLines returns the fee map as sorted "label: ₹amount" strings
func (c Course) FeeLines() []string {
	labels := make([]string, 0, len(c.FeeStructure))
	for label := range c.FeeStructure {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	lines := make([]string, 0, len(labels))
	for _, label := range labels {
		lines = append(lines, label+": "+FormatINR(c.FeeStructure[label]))
	}
	return lines
}
