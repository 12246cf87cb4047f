package catalog

import (
	"fmt"

	"career-compass/internal/domain"
)

// QuestionBank es el banco fijo de 10 preguntas del cuestionario. Igual que
// el catalogo, se carga una vez y es de solo lectura.
type QuestionBank struct {
	questions []domain.Question
	byID      map[string]int
}

// RequiredAnswers es la cantidad de respuestas que completa un cuestionario.
const RequiredAnswers = 10

// LoadQuestions construye y valida el banco embebido.
func LoadQuestions() (*QuestionBank, error) {
	return newQuestionBank(questionTable)
}

func newQuestionBank(entries []domain.Question) (*QuestionBank, error) {
	if len(entries) != RequiredAnswers {
		return nil, fmt.Errorf("question bank must have %d questions, got %d", RequiredAnswers, len(entries))
	}
	byID := make(map[string]int, len(entries))
	for i, q := range entries {
		if q.ID == "" || len(q.Options) < 2 {
			return nil, fmt.Errorf("question at index %d: missing id or options", i)
		}
		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("question %s: duplicate id", q.ID)
		}
		if q.Domain != domain.DomainGeneral && !domain.IsKnownDomain(q.Domain) {
			return nil, fmt.Errorf("question %s: %w: %q", q.ID, domain.ErrUnknownDomain, q.Domain)
		}
		for _, opt := range q.Options {
			if opt.ID == "" || len(opt.Contributions) == 0 {
				return nil, fmt.Errorf("question %s: option without id or contributions", q.ID)
			}
			for trait, score := range opt.Contributions {
				if !domain.IsKnownTrait(trait) {
					return nil, fmt.Errorf("question %s option %s: %w: %q", q.ID, opt.ID, domain.ErrUnknownTrait, trait)
				}
				if score < 0 || score > 1 {
					return nil, fmt.Errorf("question %s option %s: contribution out of range: %v", q.ID, opt.ID, score)
				}
			}
		}
		byID[q.ID] = i
	}
	return &QuestionBank{questions: entries, byID: byID}, nil
}

// Questions devuelve las preguntas en orden. Slice compartido, no mutar.
func (b *QuestionBank) Questions() []domain.Question {
	return b.questions
}

// Resolve busca la pregunta y la opcion elegida de una respuesta.
func (b *QuestionBank) Resolve(a domain.Answer) (domain.Question, domain.QuestionOption, bool) {
	i, ok := b.byID[a.QuestionID]
	if !ok {
		return domain.Question{}, domain.QuestionOption{}, false
	}
	q := b.questions[i]
	opt, ok := q.Option(a.OptionID)
	if !ok {
		return domain.Question{}, domain.QuestionOption{}, false
	}
	return q, opt, true
}

// questionTable: 6 preguntas generales + 1 por cada dominio tematico salvo
// Manufacturing y Sales, cubiertas por las de trabajo manual y trato con gente.
var questionTable = []domain.Question{
	{
		ID: "q1", Text: "When facing a complex problem, what is your first instinct?",
		Options: []domain.QuestionOption{
			{ID: "a", Text: "Break it into smaller parts and analyze each one", Contributions: map[string]float64{domain.TraitAnalytical: 0.9, domain.TraitOrganization: 0.4}},
			{ID: "b", Text: "Brainstorm unconventional approaches", Contributions: map[string]float64{domain.TraitCreative: 0.9, domain.TraitRiskTaking: 0.4}},
			{ID: "c", Text: "Ask others how they have solved it before", Contributions: map[string]float64{domain.TraitExtroversion: 0.7, domain.TraitEmpathy: 0.5}},
			{ID: "d", Text: "Try things hands-on until something works", Contributions: map[string]float64{domain.TraitHandsOn: 0.9, domain.TraitRiskTaking: 0.5}},
		},
	},
	{
		ID: "q2", Text: "How do you prefer to spend a working day?",
		Options: []domain.QuestionOption{
			{ID: "a", Text: "Deep focus on one hard problem", Contributions: map[string]float64{domain.TraitAnalytical: 0.8, domain.TraitTechLearning: 0.4}},
			{ID: "b", Text: "Meetings and collaboration with many people", Contributions: map[string]float64{domain.TraitExtroversion: 0.9, domain.TraitLeadership: 0.4}},
			{ID: "c", Text: "Making or building something tangible", Contributions: map[string]float64{domain.TraitHandsOn: 0.8, domain.TraitCreative: 0.4}},
			{ID: "d", Text: "Planning and organizing upcoming work", Contributions: map[string]float64{domain.TraitOrganization: 0.9}},
		},
	},
	{
		ID: "q3", Text: "A teammate is struggling and deadlines are close. You...",
		Options: []domain.QuestionOption{
			{ID: "a", Text: "Sit with them and help them work through it", Contributions: map[string]float64{domain.TraitEmpathy: 0.9, domain.TraitExtroversion: 0.4}},
			{ID: "b", Text: "Re-plan the schedule to absorb the delay", Contributions: map[string]float64{domain.TraitOrganization: 0.8, domain.TraitLeadership: 0.5}},
			{ID: "c", Text: "Take over the riskiest piece yourself", Contributions: map[string]float64{domain.TraitRiskTaking: 0.7, domain.TraitLeadership: 0.6}},
			{ID: "d", Text: "Analyze where the process failed", Contributions: map[string]float64{domain.TraitAnalytical: 0.7}},
		},
	},
	{
		ID: "q4", Text: "Which achievement would make you proudest?",
		Options: []domain.QuestionOption{
			{ID: "a", Text: "Publishing an original piece of work", Contributions: map[string]float64{domain.TraitCreative: 0.9}},
			{ID: "b", Text: "Leading a team through a difficult launch", Contributions: map[string]float64{domain.TraitLeadership: 0.9, domain.TraitExtroversion: 0.5}},
			{ID: "c", Text: "Mastering a technology few people understand", Contributions: map[string]float64{domain.TraitTechLearning: 0.9, domain.TraitAnalytical: 0.5}},
			{ID: "d", Text: "Building something people use every day", Contributions: map[string]float64{domain.TraitHandsOn: 0.7, domain.TraitEmpathy: 0.4}},
		},
	},
	{
		ID: "q5", Text: "How do you react to sudden changes of plan?",
		Options: []domain.QuestionOption{
			{ID: "a", Text: "Energized, I like improvising", Contributions: map[string]float64{domain.TraitRiskTaking: 0.9, domain.TraitCreative: 0.4}},
			{ID: "b", Text: "I quickly draft a new plan", Contributions: map[string]float64{domain.TraitOrganization: 0.8, domain.TraitAnalytical: 0.4}},
			{ID: "c", Text: "I check how everyone else is coping first", Contributions: map[string]float64{domain.TraitEmpathy: 0.8}},
			{ID: "d", Text: "I rally the group and assign new tasks", Contributions: map[string]float64{domain.TraitLeadership: 0.8, domain.TraitExtroversion: 0.5}},
		},
	},
	{
		ID: "q6", Text: "What do you do when you hit a topic you know nothing about?",
		Options: []domain.QuestionOption{
			{ID: "a", Text: "Read documentation until it clicks", Contributions: map[string]float64{domain.TraitTechLearning: 0.8, domain.TraitAnalytical: 0.5}},
			{ID: "b", Text: "Find someone who knows and ask", Contributions: map[string]float64{domain.TraitExtroversion: 0.8}},
			{ID: "c", Text: "Experiment and learn by doing", Contributions: map[string]float64{domain.TraitHandsOn: 0.8, domain.TraitTechLearning: 0.5}},
			{ID: "d", Text: "Look for an analogy from another field", Contributions: map[string]float64{domain.TraitCreative: 0.8}},
		},
	},
	{
		ID: "q7", Domain: domain.DomainTech, Text: "A new framework ships a breaking major version. You...",
		Options: []domain.QuestionOption{
			{ID: "a", Text: "Read the changelog and migrate methodically", Contributions: map[string]float64{domain.TraitTechLearning: 0.9, domain.TraitOrganization: 0.5}},
			{ID: "b", Text: "Prototype on the new version right away", Contributions: map[string]float64{domain.TraitTechLearning: 0.7, domain.TraitRiskTaking: 0.7}},
			{ID: "c", Text: "Wait and let others find the bugs first", Contributions: map[string]float64{domain.TraitOrganization: 0.6, domain.TraitAnalytical: 0.4}},
		},
	},
	{
		ID: "q8", Domain: domain.DomainData, Text: "You get a dataset with a surprising pattern. You...",
		Options: []domain.QuestionOption{
			{ID: "a", Text: "Check for collection errors before believing it", Contributions: map[string]float64{domain.TraitAnalytical: 0.9}},
			{ID: "b", Text: "Visualize it in different ways to tell the story", Contributions: map[string]float64{domain.TraitCreative: 0.6, domain.TraitAnalytical: 0.5}},
			{ID: "c", Text: "Share it immediately to get reactions", Contributions: map[string]float64{domain.TraitExtroversion: 0.7, domain.TraitRiskTaking: 0.4}},
		},
	},
	{
		ID: "q9", Domain: domain.DomainDesign, Text: "A client rejects a design you believe in. You...",
		Options: []domain.QuestionOption{
			{ID: "a", Text: "Explore three alternative directions", Contributions: map[string]float64{domain.TraitCreative: 0.9}},
			{ID: "b", Text: "Dig into why it does not work for them", Contributions: map[string]float64{domain.TraitEmpathy: 0.8, domain.TraitAnalytical: 0.4}},
			{ID: "c", Text: "Defend the concept with usage evidence", Contributions: map[string]float64{domain.TraitAnalytical: 0.6, domain.TraitLeadership: 0.5}},
		},
	},
	{
		ID: "q10", Domain: domain.DomainMarketing, Text: "A campaign underperforms at launch. You...",
		Options: []domain.QuestionOption{
			{ID: "a", Text: "Segment the metrics to find what broke", Contributions: map[string]float64{domain.TraitAnalytical: 0.8}},
			{ID: "b", Text: "Ship a bold variation and measure again", Contributions: map[string]float64{domain.TraitRiskTaking: 0.8, domain.TraitCreative: 0.5}},
			{ID: "c", Text: "Interview customers about the message", Contributions: map[string]float64{domain.TraitEmpathy: 0.8, domain.TraitExtroversion: 0.4}},
		},
	},
}
