package content

import (
	"fmt"
	"strings"
)

// Issue is a single dataset problem.
type Issue struct {
	SectionID string
	Message   string
}

func (i Issue) String() string {
	if i.SectionID == "" {
		return i.Message
	}
	return fmt.Sprintf("section %q: %s", i.SectionID, i.Message)
}

// ValidationError collects every issue found by Validate.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		parts[i] = is.String()
	}
	return fmt.Sprintf("%d dataset issue(s): %s", len(e.Issues), strings.Join(parts, "; "))
}

// reservedIDs are element ids the page chrome already uses.
var reservedIDs = map[string]bool{"top": true, "theme-toggle": true}

// Validate checks the anchor and key invariants. It returns nil or a
// *ValidationError.
func Validate(m Model) error {
	var issues []Issue
	seenIDs := make(map[string]bool, len(m.Sections))

	for i, col := range m.Columns {
		if strings.TrimSpace(col) == "" {
			issues = append(issues, Issue{Message: fmt.Sprintf("column %d has an empty label", i+1)})
		}
	}

	for idx, s := range m.Sections {
		switch {
		case s.ID == "":
			issues = append(issues, Issue{Message: fmt.Sprintf("section %d has an empty id", idx+1)})
		case strings.ContainsAny(s.ID, " \t\n#"):
			issues = append(issues, Issue{SectionID: s.ID, Message: "id is not a valid anchor"})
		case reservedIDs[s.ID]:
			issues = append(issues, Issue{SectionID: s.ID, Message: "id is reserved by the page"})
		case seenIDs[s.ID]:
			issues = append(issues, Issue{SectionID: s.ID, Message: "duplicate section id"})
		}
		seenIDs[s.ID] = true

		seenRows := make(map[string]bool, len(s.Rows))
		for _, r := range s.Rows {
			key := s.RowKey(r)
			if seenRows[key] {
				issues = append(issues, Issue{SectionID: s.ID, Message: fmt.Sprintf("duplicate row key %q", key)})
			}
			seenRows[key] = true
		}
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
