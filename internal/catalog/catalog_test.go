package catalog

import (
	"errors"
	"testing"

	"career-compass/internal/domain"
)

func TestLoadReferenceCatalog(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cat.Len() != 44 {
		t.Fatalf("reference catalog must have 44 careers, got %d", cat.Len())
	}

	perDomain := make(map[string]int)
	for _, c := range cat.Careers() {
		perDomain[c.Domain]++
	}
	if len(perDomain) != len(domain.KnownDomains) {
		t.Fatalf("catalog must span all %d domains, got %d", len(domain.KnownDomains), len(perDomain))
	}
	// Con al menos 5 carreras por dominio, cualquier terna de preferencias
	// llena el top-5 sin recurrir a dominios no preferidos.
	for d, n := range perDomain {
		if n < 5 {
			t.Fatalf("domain %s has only %d careers", d, n)
		}
	}
}

func TestCatalogTemplatesCompleteForEveryEntry(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range cat.Careers() {
		if c.SalaryRange == "" {
			t.Fatalf("career %s: missing salary range", c.ID)
		}
		if len(c.CoreSkills) < 3 {
			t.Fatalf("career %s: needs at least 3 template skills, got %d", c.ID, len(c.CoreSkills))
		}
		if len(c.GrowthPaths) < 2 {
			t.Fatalf("career %s: needs at least 2 growth paths, got %d", c.ID, len(c.GrowthPaths))
		}
	}
}

func TestCatalogByID(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	career, ok := cat.ByID("ai-engineer")
	if !ok || career.Name != "AI Engineer" {
		t.Fatalf("expected ai-engineer entry, got ok=%v name=%q", ok, career.Name)
	}
	if _, ok := cat.ByID("no-such-career"); ok {
		t.Fatal("unknown id should miss")
	}
}

func TestNewCatalogValidation(t *testing.T) {
	valid := domain.CareerProfile{
		ID: "x", Name: "X", Domain: domain.DomainTech,
		RequiredTraits: map[string]float64{domain.TraitAnalytical: 0.5},
		SalaryRange:    "$1", CoreSkills: []string{"a", "b", "c"}, GrowthPaths: []string{"p", "q"},
	}

	tests := []struct {
		name    string
		mutate  func(domain.CareerProfile) []domain.CareerProfile
		wantErr error
	}{
		{name: "empty catalog", mutate: func(c domain.CareerProfile) []domain.CareerProfile {
			return nil
		}, wantErr: domain.ErrEmptyCatalog},
		{name: "unknown domain", mutate: func(c domain.CareerProfile) []domain.CareerProfile {
			c.Domain = "Astrology"
			return []domain.CareerProfile{c}
		}, wantErr: domain.ErrUnknownDomain},
		{name: "unknown trait", mutate: func(c domain.CareerProfile) []domain.CareerProfile {
			c.RequiredTraits = map[string]float64{"charisma": 1}
			return []domain.CareerProfile{c}
		}, wantErr: domain.ErrUnknownTrait},
		{name: "missing template data", mutate: func(c domain.CareerProfile) []domain.CareerProfile {
			c.CoreSkills = []string{"only-one"}
			return []domain.CareerProfile{c}
		}, wantErr: domain.ErrMissingTemplate},
		{name: "duplicate id", mutate: func(c domain.CareerProfile) []domain.CareerProfile {
			return []domain.CareerProfile{c, c}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newCatalog(tt.mutate(valid))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestQuestionBankLoadsAndResolves(t *testing.T) {
	bank, err := LoadQuestions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bank.Questions()) != RequiredAnswers {
		t.Fatalf("expected %d questions, got %d", RequiredAnswers, len(bank.Questions()))
	}

	q, opt, ok := bank.Resolve(domain.Answer{QuestionID: "q1", OptionID: "a"})
	if !ok || q.ID != "q1" || opt.ID != "a" {
		t.Fatalf("resolve q1/a failed: ok=%v q=%s opt=%s", ok, q.ID, opt.ID)
	}
	if _, _, ok := bank.Resolve(domain.Answer{QuestionID: "q1", OptionID: "zz"}); ok {
		t.Fatal("unknown option should not resolve")
	}
}

func TestQuestionBankContributionsUseKnownTraits(t *testing.T) {
	bank, err := LoadQuestions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, q := range bank.Questions() {
		for _, opt := range q.Options {
			for trait, score := range opt.Contributions {
				if !domain.IsKnownTrait(trait) {
					t.Fatalf("question %s option %s references unknown trait %q", q.ID, opt.ID, trait)
				}
				if score < 0 || score > 1 {
					t.Fatalf("question %s option %s: contribution out of range: %v", q.ID, opt.ID, score)
				}
			}
		}
	}
}
