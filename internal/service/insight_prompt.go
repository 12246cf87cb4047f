package service

import (
	"fmt"
	"strings"

	"career-compass/internal/domain"
)

// InsightPromptBuilder arma el unico prompt batch de la sesion: vector del
// candidato, preferencias y las 5 carreras preseleccionadas.
type InsightPromptBuilder struct{}

func (InsightPromptBuilder) Build(top []domain.CareerMatch, vector domain.TraitVector, prefs domain.DomainPreference) string {
	var sb strings.Builder

	sb.WriteString("You are a career counselor. A candidate completed a questionnaire and was matched against a career catalog.\n\n")

	sb.WriteString("=== CANDIDATE TRAIT PROFILE (0.0 - 1.0) ===\n")
	for _, dim := range domain.TraitDimensions {
		fmt.Fprintf(&sb, "- %s: %.2f\n", dim, vector[dim])
	}

	sb.WriteString("\n=== DOMAIN PREFERENCES (ordered) ===\n")
	fmt.Fprintf(&sb, "1. %s\n2. %s\n3. %s\n", prefs.First, prefs.Second, prefs.Third)

	sb.WriteString("\n=== MATCHED CAREERS ===\n")
	for i, m := range top {
		fmt.Fprintf(&sb, "%d. id=%s name=%q domain=%s match=%d%%\n", i+1, m.Career.ID, m.Career.Name, m.Career.Domain, m.MatchPercentage)
	}

	sb.WriteString("\nFor EVERY career above, produce personalized guidance grounded in the trait profile.\n")
	sb.WriteString("Respond with ONLY a JSON object, no markdown fences, in this exact shape:\n")
	sb.WriteString(`{"insights":[{"career_id":"...","explanation":"why this career fits this candidate","skills_to_develop":["three or more items"],"growth_paths":["two or more items"],"salary_range":"e.g. $60,000 - $120,000"}]}`)
	sb.WriteString("\nInclude one entry per career, using the exact career_id values listed.")

	return sb.String()
}
