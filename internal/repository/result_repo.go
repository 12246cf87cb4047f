package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"career-compass/internal/domain"
)

// ResultRepository persiste el resultado de una sesion completada. Es el
// colaborador de persistencia: el pipeline lo llama best-effort detras del
// breaker correspondiente.
type ResultRepository interface {
	Save(ctx context.Context, result domain.RecommendationSet) error
	FindBySessionID(ctx context.Context, sessionID string) (domain.RecommendationSet, error)
}

type PgResultRepository struct {
	pool *pgxpool.Pool
}

func NewPgResultRepository(pool *pgxpool.Pool) *PgResultRepository {
	return &PgResultRepository{pool: pool}
}

func (r *PgResultRepository) Save(ctx context.Context, result domain.RecommendationSet) error {
	const query = `
		INSERT INTO session_results (session_id, trait_vector, recommendations, insight_sources, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id)
		DO UPDATE SET
			trait_vector = EXCLUDED.trait_vector,
			recommendations = EXCLUDED.recommendations,
			insight_sources = EXCLUDED.insight_sources,
			created_at = EXCLUDED.created_at
	`

	recs, err := json.Marshal(result.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}
	sources, err := json.Marshal(result.Sources)
	if err != nil {
		return fmt.Errorf("marshal sources: %w", err)
	}

	values := result.Vector.Values()
	vec := make([]float32, len(values))
	for i, v := range values {
		vec[i] = float32(v)
	}

	_, err = r.pool.Exec(ctx, query,
		result.SessionID,
		pgvector.NewVector(vec),
		recs,
		sources,
		result.CreatedAt,
	)
	return err
}

func (r *PgResultRepository) FindBySessionID(ctx context.Context, sessionID string) (domain.RecommendationSet, error) {
	const query = `
		SELECT session_id, trait_vector, recommendations, insight_sources, created_at
		FROM session_results
		WHERE session_id = $1
	`

	var (
		result  domain.RecommendationSet
		vec     pgvector.Vector
		recs    []byte
		sources []byte
	)
	row := r.pool.QueryRow(ctx, query, sessionID)
	if err := row.Scan(&result.SessionID, &vec, &recs, &sources, &result.CreatedAt); err != nil {
		return domain.RecommendationSet{}, err
	}

	result.Vector = make(domain.TraitVector, len(domain.TraitDimensions))
	for i, dim := range domain.TraitDimensions {
		if slice := vec.Slice(); i < len(slice) {
			result.Vector[dim] = float64(slice[i])
		}
	}
	if err := json.Unmarshal(recs, &result.Recommendations); err != nil {
		return domain.RecommendationSet{}, fmt.Errorf("unmarshal recommendations: %w", err)
	}
	if err := json.Unmarshal(sources, &result.Sources); err != nil {
		return domain.RecommendationSet{}, fmt.Errorf("unmarshal sources: %w", err)
	}
	return result, nil
}
