package service

import (
	"errors"
	"testing"

	"career-compass/internal/domain"
)

func TestVectorizeProducesNineDimensionsInRange(t *testing.T) {
	v := NewTraitVectorizer(loadBank(t))

	vector, err := v.Vectorize(validAnswers(t), testPrefs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(vector) != len(domain.TraitDimensions) {
		t.Fatalf("expected %d dimensions, got %d", len(domain.TraitDimensions), len(vector))
	}
	for _, dim := range domain.TraitDimensions {
		score, ok := vector[dim]
		if !ok {
			t.Fatalf("missing dimension %s", dim)
		}
		if score < 0 || score > 1 {
			t.Fatalf("dimension %s out of range: %v", dim, score)
		}
	}
}

func TestVectorizeNeutralDefaultForUntouchedDimensions(t *testing.T) {
	v := NewTraitVectorizer(loadBank(t))

	vector, err := v.Vectorize(validAnswers(t), testPrefs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// La opcion "a" de las 10 preguntas nunca aporta a leadership ni hands_on.
	for _, dim := range []string{domain.TraitLeadership, domain.TraitHandsOn} {
		if vector[dim] != 0.5 {
			t.Fatalf("dimension %s should default to 0.5, got %v", dim, vector[dim])
		}
	}
}

func TestVectorizeDeterministic(t *testing.T) {
	v := NewTraitVectorizer(loadBank(t))
	answers := validAnswers(t)

	first, err := v.Vectorize(answers, testPrefs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := v.Vectorize(answers, testPrefs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, dim := range domain.TraitDimensions {
		if first[dim] != second[dim] {
			t.Fatalf("dimension %s differs between runs: %v vs %v", dim, first[dim], second[dim])
		}
	}
}

func TestVectorizeDomainWeightAffectsDomainQuestions(t *testing.T) {
	v := NewTraitVectorizer(loadBank(t))
	answers := validAnswers(t)

	techFirst, err := v.Vectorize(answers, domain.DomainPreference{
		First: domain.DomainTech, Second: domain.DomainData, Third: domain.DomainDesign,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	techThird, err := v.Vectorize(answers, domain.DomainPreference{
		First: domain.DomainData, Second: domain.DomainDesign, Third: domain.DomainTech,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// q7 es de dominio Tech: con Tech primero pesa 1.0, con Tech tercero 0.4.
	if techFirst[domain.TraitTechLearning] <= techThird[domain.TraitTechLearning] {
		t.Fatalf("tech_learning should drop when Tech is third preference: first=%v third=%v",
			techFirst[domain.TraitTechLearning], techThird[domain.TraitTechLearning])
	}
}

func TestVectorizeIncompleteInput(t *testing.T) {
	v := NewTraitVectorizer(loadBank(t))
	answers := validAnswers(t)[:9]

	_, err := v.Vectorize(answers, testPrefs())
	if !errors.Is(err, domain.ErrIncompleteInput) {
		t.Fatalf("expected ErrIncompleteInput, got %v", err)
	}
}

func TestVectorizeUnknownQuestionOrOption(t *testing.T) {
	v := NewTraitVectorizer(loadBank(t))

	tests := []struct {
		name   string
		answer domain.Answer
	}{
		{name: "unknown question", answer: domain.Answer{QuestionID: "q99", OptionID: "a"}},
		{name: "unknown option", answer: domain.Answer{QuestionID: "q1", OptionID: "zz"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := validAnswers(t)
			answers[0] = tt.answer
			_, err := v.Vectorize(answers, testPrefs())
			if !errors.Is(err, domain.ErrUnknownQuestion) {
				t.Fatalf("expected ErrUnknownQuestion, got %v", err)
			}
		})
	}
}
