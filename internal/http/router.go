package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prakriti-api/internal/service"
)

// RouterOptions agrupa ajustes opcionales del router.
type RouterOptions struct {
	// AllowedOrigins habilita CORS para esos origenes; vacio lo deja apagado.
	AllowedOrigins []string
	IPRatePerMin   int
	IPRateBurst    int
}

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	prakritiH *PrakritiHandler,
	analyticsH *AnalyticsHandler,
	opts RouterOptions,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  opts.AllowedOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:  []string{"Authorization", "Content-Type"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}
	r.Use(IPRateLimitMiddleware(opts.IPRatePerMin, opts.IPRateBurst))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/prakriti/questionnaire", prakritiH.GetQuestionnaire)

	authed := r.Group("", JWTAuthMiddleware(jwtSvc))

	prakriti := authed.Group("/prakriti")
	prakriti.POST("/assessments", prakritiH.SubmitAssessment)
	prakriti.GET("/result", prakritiH.GetLatestResult)
	prakriti.GET("/history", prakritiH.GetHistory)

	authed.POST("/food-log", analyticsH.LogFood)
	authed.GET("/analytics/daily", analyticsH.GetDailyBalance)

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
