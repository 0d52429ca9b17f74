package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prakriti-api/internal/domain"
	"prakriti-api/internal/service"
)

// AnalyticsHandler mantiene dependencias para el registro de comidas y el balance diario.
type AnalyticsHandler struct {
	logger       *zap.Logger
	analyticsSvc *service.AnalyticsService
}

func NewAnalyticsHandler(logger *zap.Logger, analyticsSvc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		logger:       logger,
		analyticsSvc: analyticsSvc,
	}
}

// LogFood maneja POST /food-log.
func (h *AnalyticsHandler) LogFood(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Name        string             `json:"name" binding:"required"`
		Calories    int                `json:"calories"`
		DoshaImpact domain.DoshaVector `json:"dosha_impact"`
		ConsumedAt  *time.Time         `json:"consumed_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid food log request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	input := service.FoodEntryInput{
		UserID:      userID,
		Name:        req.Name,
		Calories:    req.Calories,
		DoshaImpact: req.DoshaImpact,
	}
	if req.ConsumedAt != nil {
		input.ConsumedAt = *req.ConsumedAt
	}

	entry, err := h.analyticsSvc.LogFood(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFoodEntry) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food entry"})
			return
		}
		h.logger.Error("log food failed", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log food"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// GetDailyBalance maneja GET /analytics/daily?date=YYYY-MM-DD.
func (h *AnalyticsHandler) GetDailyBalance(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	day := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	balance, err := h.analyticsSvc.DailyBalance(c.Request.Context(), userID, day)
	if err != nil {
		h.logger.Error("daily balance failed", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute daily balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}
