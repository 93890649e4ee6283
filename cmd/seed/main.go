package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"bigfive-api/internal/config"
	"bigfive-api/internal/db"
	"bigfive-api/internal/domain"
	"bigfive-api/internal/repository"
)

// Siembra cinco perfiles de ejemplo para poblar la vista de admin en
// ambientes de desarrollo.
func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if err := repository.Migrate(ctx, pool); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	resultRepo := repository.NewPgResultRepository(pool)

	profiles := []struct {
		name   string
		scores domain.TraitScores
	}{
		{"High Extravert", domain.TraitScores{
			domain.TraitExtraversion:       85,
			domain.TraitAgreeableness:      60,
			domain.TraitConscientiousness:  55,
			domain.TraitEmotionalStability: 50,
			domain.TraitOpenness:           70,
		}},
		{"Conscientious Achiever", domain.TraitScores{
			domain.TraitExtraversion:       45,
			domain.TraitAgreeableness:      70,
			domain.TraitConscientiousness:  90,
			domain.TraitEmotionalStability: 65,
			domain.TraitOpenness:           55,
		}},
		{"Creative Thinker", domain.TraitScores{
			domain.TraitExtraversion:       60,
			domain.TraitAgreeableness:      55,
			domain.TraitConscientiousness:  40,
			domain.TraitEmotionalStability: 50,
			domain.TraitOpenness:           95,
		}},
		{"Agreeable Helper", domain.TraitScores{
			domain.TraitExtraversion:       50,
			domain.TraitAgreeableness:      92,
			domain.TraitConscientiousness:  60,
			domain.TraitEmotionalStability: 70,
			domain.TraitOpenness:           50,
		}},
		{"Balanced Individual", domain.TraitScores{
			domain.TraitExtraversion:       55,
			domain.TraitAgreeableness:      55,
			domain.TraitConscientiousness:  55,
			domain.TraitEmotionalStability: 55,
			domain.TraitOpenness:           55,
		}},
	}

	log.Printf("seeding %d exemplary results...", len(profiles))

	for i, p := range profiles {
		result := &domain.PersonalityResult{
			ID:        uuid.NewString(),
			SessionID: "seed-" + uuid.NewString()[:8],
			// Escalonar created_at para que la vista de admin tenga orden visible.
			CreatedAt: time.Now().UTC().Add(-time.Duration(i) * time.Hour),
		}
		result.ApplyScores(p.scores)

		if err := resultRepo.Save(ctx, result); err != nil {
			log.Printf("save %s: %v", p.name, err)
			continue
		}
		log.Printf("created %s (id %s)", p.name, result.ID[:8])
	}

	log.Println("seeding complete")
}
