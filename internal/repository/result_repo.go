package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bigfive-api/internal/domain"
)

// ErrResultNotFound indica que el id no corresponde a un resultado guardado.
var ErrResultNotFound = errors.New("result not found")

type ResultRepository interface {
	Save(ctx context.Context, result *domain.PersonalityResult) error
	GetByID(ctx context.Context, id string) (*domain.PersonalityResult, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]*domain.PersonalityResult, error)
	GetAll(ctx context.Context) ([]*domain.PersonalityResult, error)
	SaveInterpretations(ctx context.Context, interps []*domain.TraitInterpretation) error
	InterpretationsByResultID(ctx context.Context, resultID string) (map[domain.Trait]string, error)
	DeleteInterpretationsByResultID(ctx context.Context, resultID string) error
}

type PgResultRepository struct {
	pool *pgxpool.Pool
}

func NewPgResultRepository(pool *pgxpool.Pool) *PgResultRepository {
	return &PgResultRepository{pool: pool}
}

func (r *PgResultRepository) Save(ctx context.Context, result *domain.PersonalityResult) error {
	const query = `
		INSERT INTO personality_results (
			id, session_id, extraversion, agreeableness,
			conscientiousness, emotional_stability, openness, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		result.ID,
		result.SessionID,
		result.Extraversion,
		result.Agreeableness,
		result.Conscientiousness,
		result.EmotionalStability,
		result.Openness,
		result.CreatedAt,
	)
	return err
}

func (r *PgResultRepository) GetByID(ctx context.Context, id string) (*domain.PersonalityResult, error) {
	const query = `
		SELECT id, session_id, extraversion, agreeableness,
			conscientiousness, emotional_stability, openness, created_at
		FROM personality_results
		WHERE id = $1
	`
	var result domain.PersonalityResult
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.SessionID,
		&result.Extraversion,
		&result.Agreeableness,
		&result.Conscientiousness,
		&result.EmotionalStability,
		&result.Openness,
		&result.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrResultNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *PgResultRepository) GetBySessionID(ctx context.Context, sessionID string) ([]*domain.PersonalityResult, error) {
	const query = `
		SELECT id, session_id, extraversion, agreeableness,
			conscientiousness, emotional_stability, openness, created_at
		FROM personality_results
		WHERE session_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanResults(rows)
}

func (r *PgResultRepository) GetAll(ctx context.Context) ([]*domain.PersonalityResult, error) {
	const query = `
		SELECT id, session_id, extraversion, agreeableness,
			conscientiousness, emotional_stability, openness, created_at
		FROM personality_results
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanResults(rows)
}

func scanResults(rows pgx.Rows) ([]*domain.PersonalityResult, error) {
	var results []*domain.PersonalityResult
	for rows.Next() {
		var result domain.PersonalityResult
		if err := rows.Scan(
			&result.ID,
			&result.SessionID,
			&result.Extraversion,
			&result.Agreeableness,
			&result.Conscientiousness,
			&result.EmotionalStability,
			&result.Openness,
			&result.CreatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *PgResultRepository) SaveInterpretations(ctx context.Context, interps []*domain.TraitInterpretation) error {
	const query = `
		INSERT INTO trait_interpretations (id, result_id, trait, interpretation, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (result_id, trait)
		DO UPDATE SET
			interpretation = EXCLUDED.interpretation,
			created_at = EXCLUDED.created_at
	`
	for _, interp := range interps {
		if _, err := r.pool.Exec(ctx, query,
			interp.ID,
			interp.ResultID,
			string(interp.Trait),
			interp.Interpretation,
			interp.CreatedAt,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *PgResultRepository) InterpretationsByResultID(ctx context.Context, resultID string) (map[domain.Trait]string, error) {
	const query = `
		SELECT trait, interpretation
		FROM trait_interpretations
		WHERE result_id = $1
	`
	rows, err := r.pool.Query(ctx, query, resultID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interps := make(map[domain.Trait]string)
	for rows.Next() {
		var trait, interpretation string
		if err := rows.Scan(&trait, &interpretation); err != nil {
			return nil, err
		}
		interps[domain.Trait(trait)] = interpretation
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return interps, nil
}

func (r *PgResultRepository) DeleteInterpretationsByResultID(ctx context.Context, resultID string) error {
	const query = `DELETE FROM trait_interpretations WHERE result_id = $1`
	_, err := r.pool.Exec(ctx, query, resultID)
	return err
}
