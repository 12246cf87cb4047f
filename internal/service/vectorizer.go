package service

import (
	"fmt"

	"career-compass/internal/catalog"
	"career-compass/internal/domain"
)

// neutralScore es el valor por defecto de una dimension sin respuestas
// contribuyentes. Nunca null.
const neutralScore = 0.5

// TraitVectorizer pliega las respuestas ponderadas en un vector de rasgos
// normalizado de 9 dimensiones. Funcion pura: sin estado compartido ni azar.
type TraitVectorizer struct {
	bank *catalog.QuestionBank
}

func NewTraitVectorizer(bank *catalog.QuestionBank) *TraitVectorizer {
	return &TraitVectorizer{bank: bank}
}

// Vectorize acumula, por dimension, los aportes de cada opcion elegida
// ponderados por el peso del dominio de su pregunta (las generales pesan 1.0)
// y promedia sobre la cantidad de respuestas contribuyentes. Dimensiones sin
// aporte quedan en 0.5.
func (v *TraitVectorizer) Vectorize(answers []domain.Answer, prefs domain.DomainPreference) (domain.TraitVector, error) {
	if len(answers) < catalog.RequiredAnswers {
		return nil, fmt.Errorf("%w: got %d", domain.ErrIncompleteInput, len(answers))
	}

	sums := make(map[string]float64, len(domain.TraitDimensions))
	counts := make(map[string]int, len(domain.TraitDimensions))

	for _, a := range answers {
		q, opt, ok := v.bank.Resolve(a)
		if !ok {
			return nil, fmt.Errorf("%w: question=%s option=%s", domain.ErrUnknownQuestion, a.QuestionID, a.OptionID)
		}
		weight := prefs.WeightFor(q.Domain)
		for trait, score := range opt.Contributions {
			if !domain.IsKnownTrait(trait) {
				return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTrait, trait)
			}
			sums[trait] += score * weight
			counts[trait]++
		}
	}

	vector := make(domain.TraitVector, len(domain.TraitDimensions))
	for _, dim := range domain.TraitDimensions {
		if counts[dim] == 0 {
			vector[dim] = neutralScore
			continue
		}
		vector[dim] = clamp01(sums[dim] / float64(counts[dim]))
	}
	return vector, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
