// Package resume defines the structured-resume domain: the extracted
// record, batch result types, error codes and the ports the parsing
// service depends on.
package resume

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record is the structured output of a parse. Every scalar field is
// optional: nil means the model could not determine it, which is distinct
// from an empty string or empty list.
type Record struct {
	Name            *string  `json:"name,omitempty"`
	Phone           *string  `json:"phone,omitempty"`
	Email           *string  `json:"email,omitempty"`
	Position        *string  `json:"position,omitempty"`
	Summary         *string  `json:"summary,omitempty"`
	PrimarySkills   []string `json:"primarySkills,omitempty"`
	SecondarySkills []string `json:"secondarySkills,omitempty"`
	Experience      *string  `json:"experience,omitempty"`
	Education       *string  `json:"education,omitempty"`
	SkillsSource    *string  `json:"skillsSource,omitempty"`
}

// JSONIndent renders the record as pretty-printed JSON with 2-space
// indentation, the format used for cache entries and CLI/batch output.
func (r *Record) JSONIndent() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Markdown renders the record as a human-readable Markdown document,
// offered as a download by the web UI.
func (r *Record) Markdown() string {
	var b strings.Builder

	b.WriteString("# Resume Parsing Results\n\n")
	b.WriteString("## Personal Information\n")
	fmt.Fprintf(&b, "- **Name:** %s\n", orNotFound(r.Name))
	fmt.Fprintf(&b, "- **Email:** %s\n", orNotFound(r.Email))
	fmt.Fprintf(&b, "- **Phone:** %s\n", orNotFound(r.Phone))
	fmt.Fprintf(&b, "- **Position:** %s\n", orNotFound(r.Position))
	fmt.Fprintf(&b, "- **Experience:** %s\n", orNotFound(r.Experience))
	fmt.Fprintf(&b, "- **Education:** %s\n", orNotFound(r.Education))

	b.WriteString("\n## Summary\n")
	b.WriteString(orNotFound(r.Summary))
	b.WriteString("\n\n## Primary Skills\n")
	b.WriteString(strings.Join(r.PrimarySkills, ", "))
	b.WriteString("\n\n## Secondary Skills\n")
	b.WriteString(strings.Join(r.SecondarySkills, ", "))

	if r.SkillsSource != nil {
		b.WriteString("\n\n## Skills Source\n")
		b.WriteString(*r.SkillsSource)
	}
	b.WriteString("\n")
	return b.String()
}

func orNotFound(s *string) string {
	if s == nil || *s == "" {
		return "Not found"
	}
	return *s
}
