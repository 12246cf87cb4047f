package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"career-compass/internal/domain"
	"career-compass/internal/llm"
)

// Parametros de referencia de la llamada externa.
const (
	defaultInsightTimeout  = 5 * time.Second
	defaultInsightAttempts = 3
	defaultBackoffBase     = 200 * time.Millisecond

	// Tokens de salida presupuestados por carrera al reservar. Sobrestimar
	// solo adelanta el fallback a plantillas; nunca rompe la garantia.
	outputTokensPerCareer = 350
)

// InsightOptions ajusta timeouts y reintentos del cliente de insights.
// Ceros caen a los valores de referencia.
type InsightOptions struct {
	Timeout     time.Duration
	MaxAttempts int
	BackoffBase time.Duration
	CacheTTL    time.Duration
}

// InsightService produce los insights del top-5 con la cadena de fallback
// cache → llamada externa → plantillas. GetInsights nunca falla: esa es la
// garantia de resiliencia del sistema.
type InsightService struct {
	client  llm.Client
	cache   InsightCache
	budget  *TokenBudget
	breaker *CircuitBreaker
	counter *TokenCounter
	prompts InsightPromptBuilder
	parser  InsightResponseParser
	logger  *zap.Logger

	timeout     time.Duration
	maxAttempts int
	backoffBase time.Duration
	cacheTTL    time.Duration
	sleep       func(time.Duration)
}

func NewInsightService(
	client llm.Client,
	cache InsightCache,
	budget *TokenBudget,
	breaker *CircuitBreaker,
	counter *TokenCounter,
	logger *zap.Logger,
	opts InsightOptions,
) *InsightService {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultInsightTimeout
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultInsightAttempts
	}
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = defaultBackoffBase
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultInsightTTL
	}
	return &InsightService{
		client:      client,
		cache:       cache,
		budget:      budget,
		breaker:     breaker,
		counter:     counter,
		logger:      logger,
		timeout:     opts.Timeout,
		maxAttempts: opts.MaxAttempts,
		backoffBase: opts.BackoffBase,
		cacheTTL:    opts.CacheTTL,
		sleep:       time.Sleep,
	}
}

// GetInsights devuelve exactamente una Recommendation por match recibido,
// siempre. Orden de decision: cache, luego presupuesto y breaker, luego una
// unica llamada batch con reintentos, y plantillas como cierre.
func (s *InsightService) GetInsights(ctx context.Context, top []domain.CareerMatch, vector domain.TraitVector, prefs domain.DomainPreference) []domain.Recommendation {
	signature := InsightSignature(top, vector)

	if entries, ok := s.cache.Get(ctx, signature); ok {
		if recs, ok := assemble(top, entries, domain.SourceCached); ok {
			return recs
		}
		// Entrada cacheada incompleta: tratar como miss.
	}

	prompt := s.prompts.Build(top, vector, prefs)

	// Presupuesto antes de la admision del breaker, para que un dia sin
	// tokens no consuma trials de half-open.
	estimate := s.counter.Count(prompt) + len(top)*outputTokensPerCareer
	if !s.budget.Reserve(estimate) {
		s.logger.Info("insight budget denied, using templates",
			zap.Int("estimated_tokens", estimate),
			zap.Int("remaining", s.budget.Remaining()))
		return templates(top)
	}

	if !s.breaker.Allow() {
		s.logger.Info("insight breaker rejecting calls, using templates",
			zap.String("breaker", s.breaker.Name()))
		return templates(top)
	}

	entries, tokens, err := s.callOnce(ctx, prompt, top)
	if err != nil {
		s.breaker.RecordFailure()
		s.logger.Warn("insight generation failed, using templates", zap.Error(err))
		return templates(top)
	}
	s.breaker.RecordSuccess()
	s.budget.Commit(tokens)
	s.cache.Put(context.WithoutCancel(ctx), signature, entries, s.cacheTTL)

	recs, ok := assemble(top, entries, domain.SourceGenerated)
	if !ok {
		// No deberia pasar: el parser ya valido cobertura completa.
		return templates(top)
	}
	return recs
}

// callOnce hace la unica llamada batch de la sesion, con hasta maxAttempts
// intentos y backoff exponencial, contados como UN solo resultado hacia el
// breaker. Corre sobre un contexto desacoplado de la cancelacion de la
// sesion: un abandono no interrumpe la llamada en vuelo.
func (s *InsightService) callOnce(ctx context.Context, prompt string, top []domain.CareerMatch) (map[string]domain.CareerInsight, int, error) {
	detached := context.WithoutCancel(ctx)

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if attempt > 1 {
			s.sleep(s.backoffBase << (attempt - 2))
		}

		callCtx, cancel := context.WithTimeout(detached, s.timeout)
		completion, err := s.client.Generate(callCtx, prompt)
		cancel()
		if err != nil {
			lastErr = err
			continue
		}

		entries, err := s.parser.Parse(completion.Text, top)
		if err != nil {
			// Respuesta malformada o parcial: fallo del batch completo.
			lastErr = err
			continue
		}

		tokens := completion.Tokens
		if tokens <= 0 {
			tokens = s.counter.Count(prompt) + s.counter.Count(completion.Text)
		}
		return entries, tokens, nil
	}
	return nil, 0, lastErr
}

func assemble(top []domain.CareerMatch, entries map[string]domain.CareerInsight, source domain.InsightSource) ([]domain.Recommendation, bool) {
	recs := make([]domain.Recommendation, 0, len(top))
	for _, m := range top {
		insight, ok := entries[m.Career.ID]
		if !ok {
			return nil, false
		}
		recs = append(recs, domain.Recommendation{Match: m, Insight: insight, Source: source})
	}
	return recs, true
}

func templates(top []domain.CareerMatch) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(top))
	for _, m := range top {
		recs = append(recs, domain.Recommendation{
			Match:   m,
			Insight: templateInsight(m),
			Source:  domain.SourceTemplate,
		})
	}
	return recs
}
