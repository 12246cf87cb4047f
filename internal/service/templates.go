package service

import (
	"fmt"

	"career-compass/internal/domain"
)

// templateInsight arma el insight estatico de una carrera a partir de los
// datos de plantilla del catalogo. Ultimo escalon del fallback: existe para
// toda entrada del catalogo (validado al arranque) y no puede fallar.
func templateInsight(m domain.CareerMatch) domain.CareerInsight {
	c := m.Career
	return domain.CareerInsight{
		Explanation: fmt.Sprintf(
			"Your answers show a %d%% alignment with %s. Professionals in this %s role rely on the strengths your profile highlights, and the day-to-day work matches your stated preferences.",
			m.MatchPercentage, c.Name, c.Domain,
		),
		SkillsToDevelop: c.CoreSkills,
		GrowthPaths:     c.GrowthPaths,
		SalaryRange:     c.SalaryRange,
	}
}
