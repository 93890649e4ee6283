package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bigfive-api/internal/domain"
	"bigfive-api/internal/questionnaire"
	"bigfive-api/internal/service"
)

// SessionHandler maneja las sesiones de cuestionario del lado del servidor:
// una sesion por encuestado, identificada por un id opaco.
type SessionHandler struct {
	logger  *zap.Logger
	store   *questionnaire.SessionStore
	svc     *service.PersonalityService
	limiter service.SubmitRateLimiter
}

func NewSessionHandler(
	logger *zap.Logger,
	store *questionnaire.SessionStore,
	svc *service.PersonalityService,
	limiter service.SubmitRateLimiter,
) *SessionHandler {
	return &SessionHandler{
		logger:  logger,
		store:   store,
		svc:     svc,
		limiter: limiter,
	}
}

// sessionState es la vista que consume el UI: item actual, valor ya
// elegido (para preseleccionar al revisitar), progreso y completitud.
type sessionState struct {
	SessionID     string       `json:"session_id"`
	Current       *domain.Item `json:"current,omitempty"`
	SelectedValue *int         `json:"selected_value,omitempty"`
	Position      int          `json:"position"`
	Total         int          `json:"total"`
	Answered      int          `json:"answered"`
	Progress      float64      `json:"progress"`
	Complete      bool         `json:"complete"`
}

func stateOf(id string, sess *questionnaire.Session) sessionState {
	state := sessionState{
		SessionID: id,
		Position:  sess.Position(),
		Total:     sess.Catalog().Len(),
		Answered:  sess.AnsweredCount(),
		Progress:  sess.Progress(),
		Complete:  sess.IsComplete(),
	}
	if item, ok := sess.Current(); ok {
		state.Current = &item
		if v, answered := sess.ValueFor(item.ID); answered {
			state.SelectedValue = &v
		}
	}
	return state
}

// CreateSession maneja POST /api/sessions.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	id, sess := h.store.Create()
	c.JSON(http.StatusCreated, stateOf(id, sess))
}

// GetState maneja GET /api/sessions/:id.
func (h *SessionHandler) GetState(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, stateOf(c.Param("id"), sess))
}

// Answer maneja POST /api/sessions/:id/answers: registra el valor para
// el item actual y avanza el cursor.
func (h *SessionHandler) Answer(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	// Sin binding:"required": un 0 explicito debe llegar al ledger y
	// salir como valor fuera de rango, no como body invalido.
	var req struct {
		Value int `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid answer request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := sess.Answer(req.Value); err != nil {
		switch {
		case errors.Is(err, questionnaire.ErrValueOutOfRange):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "value must be between 1 and 5"})
		case errors.Is(err, questionnaire.ErrSessionComplete):
			c.JSON(http.StatusConflict, gin.H{"error": "questionnaire already complete"})
		default:
			h.logger.Error("answer failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record answer"})
		}
		return
	}

	c.JSON(http.StatusOK, stateOf(c.Param("id"), sess))
}

// Back maneja POST /api/sessions/:id/back.
func (h *SessionHandler) Back(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	sess.Back()
	c.JSON(http.StatusOK, stateOf(c.Param("id"), sess))
}

// Reset maneja POST /api/sessions/:id/reset ("start over"): vacia el
// ledger y vuelve el cursor al inicio.
func (h *SessionHandler) Reset(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	sess.Reset()
	c.JSON(http.StatusOK, stateOf(c.Param("id"), sess))
}

// Submit maneja POST /api/sessions/:id/submit: puntua la sesion y
// persiste el resultado.
func (h *SessionHandler) Submit(c *gin.Context) {
	id := c.Param("id")
	sess, ok := h.session(c)
	if !ok {
		return
	}

	if h.limiter != nil && !h.limiter.Allow(id) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many submissions"})
		return
	}

	var req struct {
		Language string `json:"language"`
	}
	if c.Request.Body != nil {
		_ = c.ShouldBindJSON(&req)
	}

	result, err := h.svc.SubmitSession(c.Request.Context(), id, sess, req.Language)
	if err != nil {
		if errors.Is(err, service.ErrIncompleteSubmission) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "questionnaire incomplete"})
			return
		}
		h.logger.Error("session submit failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not calculate results"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": result})
}

func (h *SessionHandler) session(c *gin.Context) (*questionnaire.Session, bool) {
	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return sess, true
}
