// Package counselor answers admission queries. Queries are classified into an
// Intent; menu intents are answered locally from the knowledge base and the
// rest are forwarded to the model with an assembled context.
package counselor

// AnswerKind tags what an Answer carries
type AnswerKind string

const (
	KindGreeting      AnswerKind = "greeting"
	KindCourseMenu    AnswerKind = "course_menu"
	KindFeeMenu       AnswerKind = "fee_menu"
	KindFaqMenu       AnswerKind = "faq_menu"
	KindPlacementMenu AnswerKind = "placement_menu"
	KindText          AnswerKind = "text"
)

// Affordance names the selectable widget attached to a message
type Affordance string

const (
	AffordanceNone              Affordance = ""
	AffordanceCourseSelector    Affordance = "course_selector"
	AffordanceFeeTypeSelector   Affordance = "fee_type_selector"
	AffordanceFaqSelector       Affordance = "faq_selector"
	AffordancePlacementSelector Affordance = "placement_selector"
	AffordanceOptionMenu        Affordance = "option_menu"
	AffordanceLeadForm          Affordance = "lead_form"
)

// Option is one selectable choice. Selecting it submits Value as if typed.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Answer is the counselor's reply to one query
type Answer struct {
	Kind       AnswerKind `json:"kind"`
	Text       string     `json:"text"`
	Affordance Affordance `json:"affordance,omitempty"`
	Options    []Option   `json:"options,omitempty"`
	// FollowUp is set on model answers: the "what next" menu
	FollowUp *Answer `json:"follow_up,omitempty"`
}

func optionsFrom(labels []string) []Option {
	opts := make([]Option, 0, len(labels))
	for _, l := range labels {
		opts = append(opts, Option{Label: l, Value: l})
	}
	return opts
}
