// Package college serves the dashboard's college explorer: a fixed catalog
// with filtering, sorting and a per-student saved list.
package college

type Deadlines struct {
	EarlyAction     string `json:"early_action,omitempty"`
	EarlyDecision   string `json:"early_decision,omitempty"`
	RegularDecision string `json:"regular_decision"`
}

type FinancialAid struct {
	AverageAid int  `json:"average_aid"`
	NeedMet    int  `json:"need_met"`
	NeedBased  bool `json:"need_based"`
}

type College struct {
	ID                   int          `json:"id"`
	Name                 string       `json:"name"`
	Location             string       `json:"location"`
	Type                 string       `json:"type"`
	Enrollment           int          `json:"enrollment"`
	AcceptanceRate       float64      `json:"acceptance_rate"`
	TuitionInState       int          `json:"tuition_in_state"`
	TuitionOutState      int          `json:"tuition_out_state"`
	AvgSAT               int          `json:"avg_sat"`
	AvgACT               int          `json:"avg_act"`
	AvgGPA               float64      `json:"avg_gpa"`
	Ranking              int          `json:"ranking"`
	MatchScore           int          `json:"match_score"`
	MatchReasons         []string     `json:"match_reasons"`
	Majors               []string     `json:"majors"`
	Highlights           []string     `json:"highlights"`
	Website              string       `json:"website"`
	AdmissionProbability int          `json:"admission_probability"`
	Deadlines            Deadlines    `json:"deadlines"`
	FinancialAid         FinancialAid `json:"financial_aid"`
}

// Catalog returns the built-in colleges
func Catalog() []College {
	return []College{
		{
			ID: 1, Name: "Stanford University", Location: "Stanford, CA", Type: "Private",
			Enrollment: 17249, AcceptanceRate: 4.3, TuitionInState: 57693, TuitionOutState: 57693,
			AvgSAT: 1520, AvgACT: 34, AvgGPA: 4.18, Ranking: 6, MatchScore: 92,
			MatchReasons: []string{"Strong Computer Science program", "Excellent research opportunities", "Great entrepreneurship ecosystem", "Your SAT score is competitive"},
			Majors:       []string{"Computer Science", "Engineering", "Business", "Medicine"},
			Highlights:   []string{"Top-tier research", "Silicon Valley location", "Strong alumni network"},
			Website:      "https://stanford.edu", AdmissionProbability: 15,
			Deadlines:    Deadlines{EarlyAction: "November 1", RegularDecision: "January 2"},
			FinancialAid: FinancialAid{AverageAid: 58000, NeedMet: 100, NeedBased: true},
		},
		{
			ID: 2, Name: "University of California, Berkeley", Location: "Berkeley, CA", Type: "Public",
			Enrollment: 45057, AcceptanceRate: 17.5, TuitionInState: 14226, TuitionOutState: 44007,
			AvgSAT: 1430, AvgACT: 32, AvgGPA: 3.89, Ranking: 22, MatchScore: 88,
			MatchReasons: []string{"Strong academic reputation", "Diverse student body", "Excellent engineering programs", "In-state tuition advantage"},
			Majors:       []string{"Engineering", "Computer Science", "Economics", "Psychology"},
			Highlights:   []string{"Public Ivy", "Research powerhouse", "Bay Area location"},
			Website:      "https://berkeley.edu", AdmissionProbability: 28,
			Deadlines:    Deadlines{RegularDecision: "November 30"},
			FinancialAid: FinancialAid{AverageAid: 22000, NeedMet: 85, NeedBased: true},
		},
		{
			ID: 3, Name: "Massachusetts Institute of Technology", Location: "Cambridge, MA", Type: "Private",
			Enrollment: 11934, AcceptanceRate: 7.3, TuitionInState: 57986, TuitionOutState: 57986,
			AvgSAT: 1550, AvgACT: 35, AvgGPA: 4.17, Ranking: 2, MatchScore: 85,
			MatchReasons: []string{"World-class STEM programs", "Innovation and entrepreneurship focus", "Cutting-edge research facilities", "Strong industry connections"},
			Majors:       []string{"Engineering", "Computer Science", "Physics", "Mathematics"},
			Highlights:   []string{"STEM excellence", "Innovation hub", "Nobel laureate faculty"},
			Website:      "https://mit.edu", AdmissionProbability: 12,
			Deadlines:    Deadlines{EarlyAction: "November 1", RegularDecision: "January 1"},
			FinancialAid: FinancialAid{AverageAid: 53000, NeedMet: 100, NeedBased: true},
		},
		{
			ID: 4, Name: "University of Michigan - Ann Arbor", Location: "Ann Arbor, MI", Type: "Public",
			Enrollment: 48090, AcceptanceRate: 23.0, TuitionInState: 15948, TuitionOutState: 52266,
			AvgSAT: 1420, AvgACT: 32, AvgGPA: 3.88, Ranking: 23, MatchScore: 82,
			MatchReasons: []string{"Strong across multiple disciplines", "Great school spirit and athletics", "Excellent alumni network", "Good financial aid for out-of-state"},
			Majors:       []string{"Business", "Engineering", "Psychology", "Economics"},
			Highlights:   []string{"Big Ten athletics", "Research university", "Vibrant campus life"},
			Website:      "https://umich.edu", AdmissionProbability: 35,
			Deadlines:    Deadlines{EarlyAction: "November 1", RegularDecision: "February 1"},
			FinancialAid: FinancialAid{AverageAid: 16000, NeedMet: 90, NeedBased: true},
		},
		{
			ID: 5, Name: "Carnegie Mellon University", Location: "Pittsburgh, PA", Type: "Private",
			Enrollment: 14799, AcceptanceRate: 17.1, TuitionInState: 59710, TuitionOutState: 59710,
			AvgSAT: 1510, AvgACT: 34, AvgGPA: 3.95, Ranking: 25, MatchScore: 79,
			MatchReasons: []string{"Top computer science program", "Strong engineering and arts programs", "Good industry connections", "Innovative curriculum"},
			Majors:       []string{"Computer Science", "Engineering", "Drama", "Business"},
			Highlights:   []string{"CS excellence", "Interdisciplinary approach", "Tech industry pipeline"},
			Website:      "https://cmu.edu", AdmissionProbability: 25,
			Deadlines:    Deadlines{EarlyDecision: "November 1", RegularDecision: "January 3"},
			FinancialAid: FinancialAid{AverageAid: 42000, NeedMet: 88, NeedBased: true},
		},
	}
}
