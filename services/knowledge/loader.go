package knowledge

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load returns the built-in knowledge base, or the one described by the YAML
// file at path when path is not empty. A file replaces the built-in data
// section by section: sections it leaves empty keep the defaults.
func Load(path string) (*Base, error) {
	base := Default()
	if path == "" {
		return base, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}

	var override Base
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return nil, fmt.Errorf("parse knowledge base %s: %w", path, err)
	}

	if len(override.Courses) > 0 {
		base.Courses = override.Courses
	}
	if len(override.Contacts) > 0 {
		base.Contacts = override.Contacts
	}
	if len(override.Faqs) > 0 {
		base.Faqs = override.Faqs
	}
	if override.General.Fees != "" || override.General.Eligibility != "" {
		base.General = override.General
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// Validate checks the invariants lookups depend on: unique course ids and
// codes, and a non-empty title for every course.
func (b *Base) Validate() error {
	if len(b.Courses) == 0 {
		return errors.New("knowledge base has no courses")
	}
	ids := map[string]bool{}
	codes := map[string]bool{}
	for _, c := range b.Courses {
		if c.ID == "" || c.Title == "" {
			return fmt.Errorf("course %q: id and title are required", c.Code)
		}
		id, code := strings.ToLower(c.ID), strings.ToLower(c.Code)
		if ids[id] {
			return fmt.Errorf("duplicate course id %q", c.ID)
		}
		if code != "" && codes[code] {
			return fmt.Errorf("duplicate course code %q", c.Code)
		}
		ids[id], codes[code] = true, true
	}
	return nil
}
