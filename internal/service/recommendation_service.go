package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"career-compass/internal/catalog"
	"career-compass/internal/domain"
	"career-compass/internal/repository"
)

// RecommendationService orquesta el pipeline completo de una sesion:
// vectorizar → rankear → top-5 → insights → persistir best-effort.
type RecommendationService struct {
	vectorizer     *TraitVectorizer
	ranker         MatchRanker
	catalog        *catalog.Catalog
	insights       *InsightService
	results        repository.ResultRepository
	persistBreaker *CircuitBreaker
	logger         *zap.Logger
}

func NewRecommendationService(
	vectorizer *TraitVectorizer,
	cat *catalog.Catalog,
	insights *InsightService,
	results repository.ResultRepository,
	persistBreaker *CircuitBreaker,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		vectorizer:     vectorizer,
		catalog:        cat,
		insights:       insights,
		results:        results,
		persistBreaker: persistBreaker,
		logger:         logger,
	}
}

// Recommend procesa un cuestionario finalizado y devuelve el set completo:
// vector de rasgos, exactamente 5 recomendaciones con porcentajes en [0,100]
// y el desglose de origenes de insight. Solo los errores de input llegan al
// llamador; los de dependencia los absorbe la cadena de fallback.
func (s *RecommendationService) Recommend(ctx context.Context, sessionID string, answers []domain.Answer, prefs domain.DomainPreference) (domain.RecommendationSet, error) {
	if err := prefs.Validate(); err != nil {
		return domain.RecommendationSet{}, err
	}

	vector, err := s.vectorizer.Vectorize(answers, prefs)
	if err != nil {
		return domain.RecommendationSet{}, err
	}

	matches, err := s.ranker.Rank(vector, prefs, s.catalog.Careers())
	if err != nil {
		return domain.RecommendationSet{}, fmt.Errorf("rank: %w", err)
	}
	top := TopN(matches, TopCareers)

	recs := s.insights.GetInsights(ctx, top, vector, prefs)

	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	result := domain.RecommendationSet{
		SessionID:       sessionID,
		Vector:          vector,
		Recommendations: recs,
		Sources:         sourceBreakdown(recs),
		CreatedAt:       time.Now().UTC(),
	}

	s.persist(ctx, result)

	s.logger.Info("session recommended",
		zap.String("session_id", result.SessionID),
		zap.Int("generated", result.Sources[domain.SourceGenerated]),
		zap.Int("cached", result.Sources[domain.SourceCached]),
		zap.Int("template", result.Sources[domain.SourceTemplate]),
	)
	return result, nil
}

// persist guarda el resultado detras del breaker de persistencia. Fallos
// aqui nunca llegan al usuario: el set ya esta completo en memoria.
func (s *RecommendationService) persist(ctx context.Context, result domain.RecommendationSet) {
	if s.results == nil {
		return
	}
	if !s.persistBreaker.Allow() {
		s.logger.Warn("persistence breaker rejecting writes, result not saved",
			zap.String("session_id", result.SessionID))
		return
	}

	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	if err := s.results.Save(saveCtx, result); err != nil {
		s.persistBreaker.RecordFailure()
		s.logger.Warn("persist result failed", zap.Error(err), zap.String("session_id", result.SessionID))
		return
	}
	s.persistBreaker.RecordSuccess()
}

func sourceBreakdown(recs []domain.Recommendation) map[domain.InsightSource]int {
	sources := make(map[domain.InsightSource]int, 3)
	for _, r := range recs {
		sources[r.Source]++
	}
	return sources
}
