package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	questionnaireH *QuestionnaireHandler,
	sessionH *SessionHandler,
	resultsH *ResultsHandler,
	corsOrigin string,
	dbPing func(ctx context.Context) error,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery, CORS y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware(corsOrigin), jsonContentTypeMiddleware())

	api := r.Group("/api")
	api.GET("/questions", questionnaireH.GetQuestions)

	sessions := api.Group("/sessions")
	sessions.POST("", sessionH.CreateSession)
	sessions.GET("/:id", sessionH.GetState)
	sessions.POST("/:id/answers", sessionH.Answer)
	sessions.POST("/:id/back", sessionH.Back)
	sessions.POST("/:id/reset", sessionH.Reset)
	sessions.POST("/:id/submit", sessionH.Submit)

	api.POST("/results", resultsH.SubmitAnswers)
	api.GET("/results/:id", resultsH.GetResult)
	api.POST("/results/:id/regenerate", resultsH.RegenerateInterpretations)

	// Vista de admin: sin auth, la autorizacion queda fuera de alcance.
	api.GET("/admin/results", resultsH.GetAllResults)

	r.GET("/health", func(c *gin.Context) {
		if dbPing != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := dbPing(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

// corsMiddleware habilita el origen del frontend (Nuxt corre aparte).
func corsMiddleware(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = "*"
	}
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
