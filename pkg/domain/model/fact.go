package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// EmbeddingDimension is the dimension of the embedding vector.
// Gemini text-embedding-004 uses 768 dimensions.
const EmbeddingDimension = 768

// Fact type values stored in metadata
const (
	FactTypeProject   = "project"
	FactTypeSkill     = "skill"
	FactTypeEducation = "education"
	FactTypeSummary   = "summary"
)

// Fact is one retrievable unit derived from the résumé. Text is what gets
// embedded; Metadata carries a redundant display copy under "text" plus the
// fact type, and is what retrieval returns as a source.
type Fact struct {
	ID       string
	Text     string
	Metadata map[string]string
}

// Flatten transforms a résumé into an ordered list of facts. Ids are assigned
// by a single running counter in fixed section order (projects, skills,
// education, summary), so flattening the same document always yields the same
// ids and upserts replace rather than duplicate. Sections that would produce
// empty text are skipped.
func Flatten(resume *ResumeDocument) []Fact {
	var facts []Fact
	id := 0

	for _, project := range resume.Projects {
		if project.Name == "" && project.Description == "" {
			continue
		}
		text := fmt.Sprintf("%s: %s", project.Name, project.Description)
		facts = append(facts, Fact{
			ID:   strconv.Itoa(id),
			Text: text,
			Metadata: map[string]string{
				"type": FactTypeProject,
				"name": project.Name,
				"text": fmt.Sprintf("Project: %s\nDescription: %s", project.Name, project.Description),
			},
		})
		id++
	}

	// Map iteration order is random in Go, so sort category names to keep
	// fact ids stable across runs.
	categories := make([]string, 0, len(resume.Skills))
	for category := range resume.Skills {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		skills := resume.Skills[category]
		if len(skills) == 0 {
			continue
		}
		text := fmt.Sprintf("Skills in %s: %s", category, strings.Join(skills, ", "))
		facts = append(facts, Fact{
			ID:   strconv.Itoa(id),
			Text: text,
			Metadata: map[string]string{
				"type":     FactTypeSkill,
				"category": category,
				"text":     text,
			},
		})
		id++
	}

	if edu := resume.Education; edu != nil {
		text := fmt.Sprintf("Education: %s at %s", edu.Degree, edu.Institution)
		facts = append(facts, Fact{
			ID:   strconv.Itoa(id),
			Text: text,
			Metadata: map[string]string{
				"type": FactTypeEducation,
				"text": text,
			},
		})
		id++
	}

	if summary := strings.TrimSpace(resume.Summary); summary != "" {
		facts = append(facts, Fact{
			ID:   strconv.Itoa(id),
			Text: resume.Summary,
			Metadata: map[string]string{
				"type": FactTypeSummary,
				"text": resume.Summary,
			},
		})
	}

	return facts
}
