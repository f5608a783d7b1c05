// Package ledger provides a read-only view over the candidate's verified
// career record. The engine never mutates ledger data; each request works
// from one consistent snapshot.
package ledger

import (
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// Snapshot is an immutable per-request copy of the career ledger.
type Snapshot struct {
	Skills       []types.Skill
	Projects     []types.Project
	Experiences  []types.Experience
	Achievements []types.Achievement
}

// IsEmpty reports whether the ledger holds no records at all.
func (s *Snapshot) IsEmpty() bool {
	return len(s.Skills) == 0 && len(s.Projects) == 0 &&
		len(s.Experiences) == 0 && len(s.Achievements) == 0
}

// SkillNames returns the ledger skill names in ledger order.
func (s *Snapshot) SkillNames() []string {
	names := make([]string, 0, len(s.Skills))
	for _, skill := range s.Skills {
		names = append(names, skill.Name)
	}
	return names
}

// AuthorizedTerms returns every term generated content may mention: skill
// names, project titles and technologies, companies, roles and achievement
// titles. The validator treats anything outside this set as a fabrication.
func (s *Snapshot) AuthorizedTerms() []string {
	var terms []string
	for _, skill := range s.Skills {
		terms = append(terms, skill.Name)
	}
	for _, project := range s.Projects {
		terms = append(terms, project.Title)
		terms = append(terms, project.Technologies...)
	}
	for _, exp := range s.Experiences {
		terms = append(terms, exp.Company, exp.Role)
		terms = append(terms, exp.Technologies...)
	}
	for _, ach := range s.Achievements {
		terms = append(terms, ach.Title)
	}
	return terms
}

// Text returns the ledger's free text as one blob for keyword alignment.
func (s *Snapshot) Text() string {
	var sb strings.Builder
	for _, skill := range s.Skills {
		sb.WriteString(skill.Name)
		sb.WriteByte(' ')
	}
	for _, project := range s.Projects {
		sb.WriteString(project.Title)
		sb.WriteByte(' ')
		sb.WriteString(project.Description)
		sb.WriteByte(' ')
		sb.WriteString(project.Domain)
		sb.WriteByte(' ')
		sb.WriteString(strings.Join(project.Technologies, " "))
		sb.WriteByte(' ')
	}
	for _, exp := range s.Experiences {
		sb.WriteString(exp.Role)
		sb.WriteByte(' ')
		sb.WriteString(exp.Description)
		sb.WriteByte(' ')
		sb.WriteString(strings.Join(exp.Technologies, " "))
		sb.WriteByte(' ')
	}
	for _, ach := range s.Achievements {
		sb.WriteString(ach.Title)
		sb.WriteByte(' ')
		sb.WriteString(ach.Description)
		sb.WriteByte(' ')
	}
	return strings.TrimSpace(sb.String())
}
