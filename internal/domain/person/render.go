package person

import (
	"fmt"
	"strings"
)

// Render produces the canonical one-line human-readable form of the record.
// Every variant begins with "[id] ROLE |" followed by the contact fields and
// the role-specific attributes. Render is pure: it never mutates state.
func (p *Person) Render() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[%d] %s | %s | %s | %s", p.id, p.role.Tag(), p.name, p.telephone, p.email)

	switch p.role {
	case RoleTeacher:
		fmt.Fprintf(&sb, " | salary: %.2f", p.teacher.salary)
		if subjects := joinSubjects(p.teacher.subject1, p.teacher.subject2); subjects != "" {
			fmt.Fprintf(&sb, " | teaches: %s", subjects)
		}
	case RoleAdmin:
		contract := "part-time"
		if p.admin.fullTime {
			contract = "full-time"
		}
		fmt.Fprintf(&sb, " | salary: %.2f | %s | hours: %d", p.admin.salary, contract, p.admin.workingHours)
	case RoleStudent:
		if subjects := joinSubjects(p.student.subject1, p.student.subject2, p.student.subject3); subjects != "" {
			fmt.Fprintf(&sb, " | studies: %s", subjects)
		}
	}

	return sb.String()
}

// joinSubjects joins the non-empty subjects with commas.
func joinSubjects(subjects ...string) string {
	filled := make([]string, 0, len(subjects))
	for _, s := range subjects {
		if s != "" {
			filled = append(filled, s)
		}
	}
	return strings.Join(filled, ", ")
}
