package counselor

import (
	"fmt"
	"strings"
)

const counselorSystem = "You are an expert and friendly AI admission counselor for a university. You help prospective students with questions about courses, fees, eligibility and the admission process."

func counselorPrompt(query, context string, lang Language) string {
	var b strings.Builder
	b.WriteString("University Knowledge Base (Source of Truth):\n")
	b.WriteString("---\n")
	b.WriteString(context)
	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "Student's Query: %q\n\n", query)
	b.WriteString("Rules:\n")
	b.WriteString("1. Answer ONLY from the University Knowledge Base above.\n")
	b.WriteString("2. Be direct and concise. Answer the question that was asked.\n")
	b.WriteString("3. If the information is not in the knowledge base, say so clearly and recommend contacting the admission office.\n")
	b.WriteString("4. Never invent courses, fees, dates or contact details.\n")
	fmt.Fprintf(&b, "5. Reply in %s.\n", lang.Name())
	return b.String()
}

func getStartedPrompt(interest, courseList string, lang Language) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A prospective student says they are interested in: %q.\n\n", interest)
	b.WriteString("Courses offered by the university:\n")
	b.WriteString(courseList)
	b.WriteString("\n\nWrite ONE short, encouraging paragraph that recommends one or two of these courses ")
	b.WriteString("that fit the interest and tells the student the next steps to apply. ")
	b.WriteString("Only recommend courses from the list.\n")
	fmt.Fprintf(&b, "Reply in %s.", lang.Name())
	return b.String()
}

func courseSummaryPrompt(courseRecord string, lang Language) string {
	var b strings.Builder
	b.WriteString("Summarize this university course for a prospective student.\n\n")
	b.WriteString(courseRecord)
	b.WriteString("\n\nReturn a JSON object with exactly these keys:\n")
	b.WriteString(`- "core_content": array of 3-6 short strings, the main subjects covered` + "\n")
	b.WriteString(`- "prerequisites": array of short strings, what the student needs before joining` + "\n")
	b.WriteString(`- "career_paths": array of 3-6 short strings, typical careers after the course` + "\n")
	fmt.Fprintf(&b, "Write the string values in %s. Return only the JSON object.", lang.Name())
	return b.String()
}

var courseSummarySchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"core_content":  map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
		"prerequisites": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
		"career_paths":  map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
	},
	"required":             []string{"core_content", "prerequisites", "career_paths"},
	"additionalProperties": false,
}
