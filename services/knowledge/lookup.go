package knowledge

import (
	"sort"
	"strconv"
	"strings"
)

// FindCourse returns the course with the given id or code
func (b *Base) FindCourse(idOrCode string) (Course, bool) {
	key := strings.ToLower(strings.TrimSpace(idOrCode))
	for _, c := range b.Courses {
		if strings.ToLower(c.ID) == key || strings.ToLower(c.Code) == key {
			return c, true
		}
	}
	return Course{}, false
}

// CourseByTitle matches a course title exactly, ignoring case
func (b *Base) CourseByTitle(title string) (Course, bool) {
	for _, c := range b.Courses {
		if strings.EqualFold(c.Title, strings.TrimSpace(title)) {
			return c, true
		}
	}
	return Course{}, false
}

// CourseTitles lists titles in catalog order
func (b *Base) CourseTitles() []string {
	titles := make([]string, len(b.Courses))
	for i, c := range b.Courses {
		titles[i] = c.Title
	}
	return titles
}

// FaqQuestions lists FAQ questions in catalog order
func (b *Base) FaqQuestions() []string {
	qs := make([]string, len(b.Faqs))
	for i, f := range b.Faqs {
		qs[i] = f.Question
	}
	return qs
}

type span struct {
	course     int
	start, end int
}

// MentionedCourses returns the courses a query names by title, code or alias,
// in catalog order. Matches are on word boundaries, and a match nested inside
// a longer match for a different course is dropped, so "ba llb" names only
// the law course.
func (b *Base) MentionedCourses(query string) []Course {
	q := strings.ToLower(query)

	var spans []span
	for i, c := range b.Courses {
		best := span{course: -1}
		for _, term := range courseTerms(c) {
			start, ok := indexWord(q, term)
			if !ok {
				continue
			}
			if best.course == -1 || len(term) > best.end-best.start {
				best = span{course: i, start: start, end: start + len(term)}
			}
		}
		if best.course != -1 {
			spans = append(spans, best)
		}
	}

	var found []Course
	for _, s := range spans {
		if !nestedInAnother(s, spans) {
			found = append(found, b.Courses[s.course])
		}
	}
	return found
}

// HasSpecificCourse reports whether the query names any course
func (b *Base) HasSpecificCourse(query string) bool {
	return len(b.MentionedCourses(query)) > 0
}

func courseTerms(c Course) []string {
	terms := []string{strings.ToLower(c.Title), strings.ToLower(c.Code)}
	for _, a := range c.Aliases {
		terms = append(terms, strings.ToLower(a))
	}
	return terms
}

func nestedInAnother(s span, all []span) bool {
	for _, o := range all {
		if o.course == s.course {
			continue
		}
		if o.start <= s.start && s.end <= o.end && (o.end-o.start) > (s.end-s.start) {
			return true
		}
	}
	return false
}

// indexWord finds term in s where it is not glued to letters or digits on either side
func indexWord(s, term string) (int, bool) {
	if term == "" {
		return 0, false
	}
	from := 0
	for from <= len(s)-len(term) {
		i := strings.Index(s[from:], term)
		if i < 0 {
			return 0, false
		}
		i += from
		end := i + len(term)
		if (i == 0 || !isWordByte(s[i-1])) && (end == len(s) || !isWordByte(s[end])) {
			return i, true
		}
		from = i + 1
	}
	return 0, false
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// FormatINR renders an amount with the rupee sign and Indian digit grouping,
// e.g. 150000 -> ₹1,50,000
func FormatINR(amount int) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.Itoa(amount)

	var out string
	if len(digits) <= 3 {
		out = digits
	} else {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		out = strings.Join(groups, ",") + "," + tail
	}
	if neg {
		return "-₹" + out
	}
	return "₹" + out
}

// SortedBusRoutes returns bus fee routes alphabetically
func (g GeneralInfo) SortedBusRoutes() []string {
	routes := make([]string, 0, len(g.BusFees))
	for r := range g.BusFees {
		routes = append(routes, r)
	}
	sort.Strings(routes)
	return routes
}
