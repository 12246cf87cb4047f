package service

import (
	"math"
	"sort"

	"career-compass/internal/domain"
)

// TopCareers es el tamano del shortlist que recibe insights.
const TopCareers = 5

// MatchRanker puntua el vector del candidato contra todo el catalogo.
// Funcion pura, sin locking.
type MatchRanker struct{}

// Rank devuelve un CareerMatch por cada entrada del catalogo, ordenado por
// score final descendente. Empates se resuelven por orden de insercion del
// catalogo (sort estable), nunca al azar.
func (MatchRanker) Rank(vector domain.TraitVector, prefs domain.DomainPreference, careers []domain.CareerProfile) ([]domain.CareerMatch, error) {
	if len(careers) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	matches := make([]domain.CareerMatch, len(careers))
	for i, career := range careers {
		base := cosineSimilarity(vector, career.RequiredTraits)
		weight := prefs.WeightFor(career.Domain)
		final := base * weight
		matches[i] = domain.CareerMatch{
			Career:          career,
			BaseScore:       base,
			DomainWeight:    weight,
			FinalScore:      final,
			MatchPercentage: int(math.Round(clamp01(final) * 100)),
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].FinalScore > matches[j].FinalScore
	})
	return matches, nil
}

// TopN toma los primeros n matches con peso de dominio positivo; si no
// alcanzan, completa con los restantes en orden de ranking.
func TopN(matches []domain.CareerMatch, n int) []domain.CareerMatch {
	top := make([]domain.CareerMatch, 0, n)
	for _, m := range matches {
		if len(top) == n {
			return top
		}
		if m.DomainWeight > 0 {
			top = append(top, m)
		}
	}
	for _, m := range matches {
		if len(top) == n {
			break
		}
		if m.DomainWeight == 0 {
			top = append(top, m)
		}
	}
	return top
}

// cosineSimilarity calcula la similitud coseno entre el vector del candidato
// y el vector requerido (disperso) de una carrera. Dimensiones ausentes
// cuentan como 0; si alguno de los vectores es nulo, la similitud es 0.
func cosineSimilarity(candidate domain.TraitVector, required map[string]float64) float64 {
	var dot, normA, normB float64
	for _, dim := range domain.TraitDimensions {
		a := candidate[dim]
		b := required[dim]
		dot += a * b
		normA += a * a
		normB += b * b
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
