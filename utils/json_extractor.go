package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrNoJSONFound is returned when no JSON object or array can be recovered
var ErrNoJSONFound = errors.New("no valid JSON object or array found in response")

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// ExtractJSON recovers a JSON document from model output that may wrap it in
// markdown fences or surround it with prose. Candidates are tried in order:
// fenced block, first balanced object/array, the whole trimmed text.
func ExtractJSON(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoJSONFound
	}

	candidates := make([]string, 0, 3)
	if m := fencedBlock.FindStringSubmatch(text); len(m) > 1 {
		candidates = append(candidates, strings.TrimSpace(m[1]))
	}
	candidates = append(candidates, balancedJSON(text), text)

	for _, c := range candidates {
		if c != "" && json.Valid([]byte(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: response length=%d", ErrNoJSONFound, len(text))
}

// ExtractJSONTo extracts JSON from text and unmarshals it into target
func ExtractJSONTo(text string, target interface{}) error {
	doc, err := ExtractJSON(text)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(doc), target)
}

// balancedJSON returns the first bracket-balanced object or array, honouring
// string literals and escapes. It returns "" when brackets never close.
func balancedJSON(s string) string {
	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return ""
	}
	open := s[start]
	closer := byte('}')
	if open == '[' {
		closer = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		switch {
		case escaped:
			escaped = false
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == open:
			depth++
		case ch == closer:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
