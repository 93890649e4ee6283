package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate crea las tablas si no existen. El layout del almacenamiento es
// una preocupacion externa al core del cuestionario.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS personality_results (
			id UUID PRIMARY KEY,
			session_id TEXT NOT NULL,
			extraversion INTEGER NOT NULL,
			agreeableness INTEGER NOT NULL,
			conscientiousness INTEGER NOT NULL,
			emotional_stability INTEGER NOT NULL,
			openness INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS idx_personality_results_session_id
			ON personality_results(session_id);

		CREATE INDEX IF NOT EXISTS idx_personality_results_created_at
			ON personality_results(created_at DESC);

		CREATE TABLE IF NOT EXISTS trait_interpretations (
			id UUID PRIMARY KEY,
			result_id UUID NOT NULL REFERENCES personality_results(id),
			trait TEXT NOT NULL,
			interpretation TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE(result_id, trait)
		);

		CREATE INDEX IF NOT EXISTS idx_trait_interpretations_result_id
			ON trait_interpretations(result_id);
	`
	_, err := pool.Exec(ctx, schema)
	return err
}
