package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bigfive-api/internal/service"
)

// QuestionnaireHandler expone el catalogo de items.
type QuestionnaireHandler struct {
	logger *zap.Logger
	svc    *service.PersonalityService
}

func NewQuestionnaireHandler(logger *zap.Logger, svc *service.PersonalityService) *QuestionnaireHandler {
	return &QuestionnaireHandler{logger: logger, svc: svc}
}

// GetQuestions maneja GET /api/questions.
func (h *QuestionnaireHandler) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.svc.Catalog().Items()})
}
