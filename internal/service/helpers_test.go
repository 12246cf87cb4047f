package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"career-compass/internal/catalog"
	"career-compass/internal/domain"
)

func testPrefs() domain.DomainPreference {
	return domain.DomainPreference{
		First:  domain.DomainTech,
		Second: domain.DomainData,
		Third:  domain.DomainDesign,
	}
}

// validAnswers responde la opcion "a" de las 10 preguntas del banco.
func validAnswers(t *testing.T) []domain.Answer {
	t.Helper()
	bank := loadBank(t)
	answers := make([]domain.Answer, 0, catalog.RequiredAnswers)
	for _, q := range bank.Questions() {
		answers = append(answers, domain.Answer{QuestionID: q.ID, OptionID: "a"})
	}
	return answers
}

func loadBank(t *testing.T) *catalog.QuestionBank {
	t.Helper()
	bank, err := catalog.LoadQuestions()
	if err != nil {
		t.Fatalf("load question bank: %v", err)
	}
	return bank
}

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

func testVector() domain.TraitVector {
	v := make(domain.TraitVector, len(domain.TraitDimensions))
	for _, dim := range domain.TraitDimensions {
		v[dim] = 0.5
	}
	v[domain.TraitAnalytical] = 0.9
	v[domain.TraitTechLearning] = 0.8
	return v
}

func testTop5(t *testing.T) []domain.CareerMatch {
	t.Helper()
	cat := loadCatalog(t)
	matches, err := MatchRanker{}.Rank(testVector(), testPrefs(), cat.Careers())
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	return TopN(matches, TopCareers)
}

// batchInsightJSON arma una respuesta valida del generador para el top dado.
func batchInsightJSON(top []domain.CareerMatch) string {
	var entries []string
	for _, m := range top {
		entries = append(entries, fmt.Sprintf(
			`{"career_id":%q,"explanation":"fits your analytical profile","skills_to_develop":["s1","s2","s3"],"growth_paths":["g1","g2"],"salary_range":"$50,000 - $100,000"}`,
			m.Career.ID,
		))
	}
	return `{"insights":[` + strings.Join(entries, ",") + `]}`
}

// fixedClock permite avanzar el tiempo a mano en tests.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.t
}

func (c *fixedClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}
