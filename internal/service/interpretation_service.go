package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bigfive-api/internal/domain"
	"bigfive-api/internal/llm"
)

const (
	// Reintentos por rasgo, con backoff exponencial 1s, 2s, 4s.
	interpretationMaxRetries = 3
	interpretationRetryBase  = time.Second
	// Timeout por llamada individual al LLM.
	interpretationCallTimeout = 60 * time.Second
)

var ErrInterpreterNotConfigured = errors.New("interpretation service not configured")

// InterpretationService genera explicaciones en lenguaje natural para
// los puntajes de un resultado, un rasgo por llamada al LLM.
type InterpretationService struct {
	llmClient llm.LLMClient
	logger    *zap.Logger
}

func NewInterpretationService(llmClient llm.LLMClient, logger *zap.Logger) *InterpretationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InterpretationService{
		llmClient: llmClient,
		logger:    logger,
	}
}

// GenerateOne produce la interpretacion de un rasgo, con reintentos.
func (s *InterpretationService) GenerateOne(ctx context.Context, trait domain.Trait, score int, language string) (string, error) {
	if s == nil || s.llmClient == nil {
		return "", ErrInterpreterNotConfigured
	}

	prompt := SystemPrompt(language) + "\n\n" + BuildInterpretationPrompt(trait, score, language)

	var lastErr error
	for attempt := 0; attempt < interpretationMaxRetries; attempt++ {
		if attempt > 0 {
			delay := interpretationRetryBase * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, interpretationCallTimeout)
		text, err := s.llmClient.Generate(callCtx, prompt)
		cancel()
		if err != nil {
			lastErr = err
			s.logger.Warn("interpretation attempt failed",
				zap.String("trait", string(trait)),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			continue
		}
		return text, nil
	}

	return "", fmt.Errorf("interpretation for %s: %w", trait, lastErr)
}

// GenerateAll genera las interpretaciones de los cinco rasgos en paralelo.
// Devuelve las que salieron bien; si ninguna salio, devuelve el error.
func (s *InterpretationService) GenerateAll(ctx context.Context, result *domain.PersonalityResult, language string) ([]*domain.TraitInterpretation, error) {
	if s == nil || s.llmClient == nil {
		return nil, ErrInterpreterNotConfigured
	}

	scores := result.Scores()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		out     []*domain.TraitInterpretation
		lastErr error
	)

	for _, trait := range domain.AllTraits() {
		wg.Add(1)
		go func(trait domain.Trait, score int) {
			defer wg.Done()

			text, err := s.GenerateOne(ctx, trait, score, language)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				lastErr = err
				return
			}
			out = append(out, &domain.TraitInterpretation{
				ID:             uuid.NewString(),
				ResultID:       result.ID,
				Trait:          trait,
				Interpretation: text,
				CreatedAt:      time.Now().UTC(),
			})
		}(trait, scores[trait])
	}
	wg.Wait()

	if len(out) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return out, nil
}
