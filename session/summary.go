package session

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
)

// Summary renders the collected responses for respondent review: a personal
// information header followed by a table of every answered question.
func (s *Session) Summary() string {
	if s.template == nil {
		return "No form data available."
	}
	var sb strings.Builder
	sb.WriteString("Summary of ")
	sb.WriteString(s.template.Name)
	sb.WriteString("\n\n")

	if lines := s.personalLines(); len(lines) > 0 {
		sb.WriteString("Personal Information:\n")
		for _, line := range lines {
			sb.WriteString("  - ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if s.responses != nil && s.responses.Len() > 0 {
		sb.WriteString("Your Responses:\n")
		table := tablewriter.NewTable(&sb, tablewriter.WithRenderer(renderer.NewMarkdown()))
		table.Header("Question", "Answer")
		for i := range s.template.Questions {
			q := &s.template.Questions[i]
			if answer, ok := s.responses.Get(q.ID); ok {
				_ = table.Append(q.Prompt, answer)
			}
		}
		_ = table.Render()
	}
	return sb.String()
}

func (s *Session) personalLines() []string {
	var lines []string
	if name := strings.TrimSpace(s.personal.FirstName + " " + s.personal.LastName); name != "" {
		lines = append(lines, "Name: "+name)
	}
	if s.personal.EmailAddress != "" {
		lines = append(lines, "Email: "+s.personal.EmailAddress)
	}
	if s.personal.PhoneNumber != "" {
		lines = append(lines, "Phone: "+s.personal.PhoneNumber)
	}
	if s.address.City != "" {
		lines = append(lines, "City: "+s.address.City)
	}
	return lines
}
