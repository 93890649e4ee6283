package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bigfive-api/internal/domain"
	"bigfive-api/internal/questionnaire"
	"bigfive-api/internal/repository"
)

var (
	ErrNoAnswers            = errors.New("no answers provided")
	ErrIncompleteSubmission = errors.New("submission incomplete")
)

// Timeout global de la generacion en background; debe superar el
// timeout por llamada multiplicado por los reintentos.
const backgroundInterpretationTimeout = 5 * time.Minute

// PersonalityService orquesta el calculo de resultados: puntua con el
// motor del cuestionario, persiste y dispara interpretaciones.
type PersonalityService struct {
	catalog         *questionnaire.Catalog
	repo            repository.ResultRepository
	interpreter     *InterpretationService
	logger          *zap.Logger
	defaultLanguage string
}

func NewPersonalityService(
	catalog *questionnaire.Catalog,
	repo repository.ResultRepository,
	interpreter *InterpretationService,
	logger *zap.Logger,
	defaultLanguage string,
) *PersonalityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultLanguage == "" {
		defaultLanguage = "de"
	}
	return &PersonalityService{
		catalog:         catalog,
		repo:            repo,
		interpreter:     interpreter,
		logger:          logger,
		defaultLanguage: defaultLanguage,
	}
}

// Catalog expone el catalogo activo.
func (s *PersonalityService) Catalog() *questionnaire.Catalog {
	return s.catalog
}

// SubmitAnswers puntua un set crudo de respuestas (contrato sin sesion
// del lado del servidor) y persiste el resultado.
func (s *PersonalityService) SubmitAnswers(ctx context.Context, sessionID string, answers []domain.AnswerInput, language string) (*domain.PersonalityResult, error) {
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}

	ledger := questionnaire.NewLedger(s.catalog)
	for _, a := range answers {
		if err := ledger.Upsert(a.ItemID, a.Value); err != nil {
			return nil, err
		}
	}

	scores, err := questionnaire.Score(s.catalog, ledger)
	if err != nil {
		if errors.Is(err, questionnaire.ErrIncompleteTrait) {
			return nil, fmt.Errorf("%w: %v", ErrIncompleteSubmission, err)
		}
		return nil, err
	}

	return s.finalize(ctx, sessionID, scores, language)
}

// SubmitSession puntua una sesion del lado del servidor y persiste el
// resultado. La sesion queda intacta: si el guardado falla, el caller
// puede reintentar sin recalcular.
func (s *PersonalityService) SubmitSession(ctx context.Context, sessionID string, sess *questionnaire.Session, language string) (*domain.PersonalityResult, error) {
	scores, err := sess.Score()
	if err != nil {
		if errors.Is(err, questionnaire.ErrIncompleteTrait) {
			return nil, fmt.Errorf("%w: %v", ErrIncompleteSubmission, err)
		}
		return nil, err
	}

	return s.finalize(ctx, sessionID, scores, language)
}

// finalize arma el registro inmutable, lo guarda y dispara la
// generacion de interpretaciones sin bloquear la respuesta.
func (s *PersonalityService) finalize(ctx context.Context, sessionID string, scores domain.TraitScores, language string) (*domain.PersonalityResult, error) {
	result := &domain.PersonalityResult{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
	}
	result.ApplyScores(scores)

	if s.repo != nil {
		if err := s.repo.Save(ctx, result); err != nil {
			return nil, fmt.Errorf("save result: %w", err)
		}
	}

	if language == "" {
		language = s.defaultLanguage
	}
	if s.interpreter != nil && s.repo != nil {
		go s.generateInterpretationsInBackground(result, language)
	}

	return result, nil
}

// generateInterpretationsInBackground corre en su propia goroutine; un
// panico aca no debe tumbar el proceso.
func (s *PersonalityService) generateInterpretationsInBackground(result *domain.PersonalityResult, language string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic generating interpretations",
				zap.String("result_id", result.ID),
				zap.Any("panic", r),
			)
		}
	}()

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), backgroundInterpretationTimeout)
	defer cancel()

	interps, err := s.interpreter.GenerateAll(ctx, result, language)
	if err != nil {
		s.logger.Warn("interpretation generation failed",
			zap.String("result_id", result.ID),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return
	}
	if len(interps) == 0 {
		s.logger.Warn("no interpretations generated", zap.String("result_id", result.ID))
		return
	}

	if err := s.repo.SaveInterpretations(ctx, interps); err != nil {
		s.logger.Warn("saving interpretations failed",
			zap.String("result_id", result.ID),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("interpretations saved",
		zap.String("result_id", result.ID),
		zap.Int("count", len(interps)),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// GetResult recupera un resultado con sus interpretaciones.
func (s *PersonalityService) GetResult(ctx context.Context, id string) (*domain.PersonalityResult, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	interps, err := s.repo.InterpretationsByResultID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(interps) > 0 {
		result.Interpretations = interps
	}
	return result, nil
}

// GetAllResults devuelve todos los resultados para la vista de admin.
func (s *PersonalityService) GetAllResults(ctx context.Context) ([]*domain.PersonalityResult, error) {
	return s.repo.GetAll(ctx)
}

// RegenerateInterpretations descarta y vuelve a generar las
// interpretaciones de un resultado existente, de forma sincrona.
func (s *PersonalityService) RegenerateInterpretations(ctx context.Context, id, language string) (*domain.PersonalityResult, error) {
	if s.interpreter == nil {
		return nil, ErrInterpreterNotConfigured
	}

	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteInterpretationsByResultID(ctx, id); err != nil {
		return nil, fmt.Errorf("delete interpretations: %w", err)
	}

	if language == "" {
		language = s.defaultLanguage
	}
	interps, err := s.interpreter.GenerateAll(ctx, result, language)
	if err != nil {
		return nil, fmt.Errorf("generate interpretations: %w", err)
	}
	if err := s.repo.SaveInterpretations(ctx, interps); err != nil {
		return nil, fmt.Errorf("save interpretations: %w", err)
	}

	result.Interpretations = make(map[domain.Trait]string, len(interps))
	for _, interp := range interps {
		result.Interpretations[interp.Trait] = interp.Interpretation
	}
	return result, nil
}
