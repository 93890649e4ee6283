package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bigfive-api/internal/domain"
	"bigfive-api/internal/questionnaire"
	"bigfive-api/internal/repository"
	"bigfive-api/internal/service"
)

// ResultsHandler maneja el contrato sin sesion (respuestas crudas), la
// consulta de resultados y la vista de admin.
type ResultsHandler struct {
	logger  *zap.Logger
	svc     *service.PersonalityService
	limiter service.SubmitRateLimiter
}

func NewResultsHandler(logger *zap.Logger, svc *service.PersonalityService, limiter service.SubmitRateLimiter) *ResultsHandler {
	return &ResultsHandler{logger: logger, svc: svc, limiter: limiter}
}

// SubmitAnswers maneja POST /api/results: recibe todas las respuestas y
// puntua del lado del servidor (misma formula que el submit por sesion).
func (h *ResultsHandler) SubmitAnswers(c *gin.Context) {
	var req struct {
		SessionID string               `json:"session_id" binding:"required"`
		Answers   []domain.AnswerInput `json:"answers" binding:"required"`
		Language  string               `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(req.SessionID) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many submissions"})
		return
	}

	result, err := h.svc.SubmitAnswers(c.Request.Context(), req.SessionID, req.Answers, req.Language)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoAnswers):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no answers provided"})
		case errors.Is(err, questionnaire.ErrValueOutOfRange):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "answer values must be between 1 and 5"})
		case errors.Is(err, questionnaire.ErrUnknownItem):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown item id"})
		case errors.Is(err, service.ErrIncompleteSubmission):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "questionnaire incomplete"})
		default:
			h.logger.Error("submit answers failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not calculate results"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": result})
}

// GetResult maneja GET /api/results/:id.
func (h *ResultsHandler) GetResult(c *gin.Context) {
	result, err := h.svc.GetResult(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrResultNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
			return
		}
		h.logger.Error("get result failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not retrieve result"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// RegenerateInterpretations maneja POST /api/results/:id/regenerate.
func (h *ResultsHandler) RegenerateInterpretations(c *gin.Context) {
	var req struct {
		Language string `json:"language"`
	}
	if c.Request.Body != nil {
		_ = c.ShouldBindJSON(&req)
	}

	result, err := h.svc.RegenerateInterpretations(c.Request.Context(), c.Param("id"), req.Language)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrResultNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
		case errors.Is(err, service.ErrInterpreterNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "interpretations not available"})
		default:
			h.logger.Error("regenerate failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not regenerate interpretations"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetAllResults maneja GET /api/admin/results.
func (h *ResultsHandler) GetAllResults(c *gin.Context) {
	results, err := h.svc.GetAllResults(c.Request.Context())
	if err != nil {
		h.logger.Error("list results failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not retrieve results"})
		return
	}
	if results == nil {
		results = []*domain.PersonalityResult{}
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
