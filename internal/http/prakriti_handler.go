package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prakriti-api/internal/service"
)

// PrakritiHandler mantiene dependencias para endpoints del cuestionario de prakriti.
type PrakritiHandler struct {
	logger      *zap.Logger
	prakritiSvc *service.PrakritiService
}

// NewPrakritiHandler crea una instancia de PrakritiHandler con dependencias necesarias.
func NewPrakritiHandler(logger *zap.Logger, prakritiSvc *service.PrakritiService) *PrakritiHandler {
	return &PrakritiHandler{
		logger:      logger,
		prakritiSvc: prakritiSvc,
	}
}

// GetQuestionnaire maneja GET /prakriti/questionnaire.
func (h *PrakritiHandler) GetQuestionnaire(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": service.Questionnaire()})
}

// SubmitAssessment maneja POST /prakriti/assessments.
func (h *PrakritiHandler) SubmitAssessment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Answers map[string]string `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid assessment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.prakritiSvc.Assess(c.Request.Context(), userID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "answers do not match any known option"})
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		default:
			h.logger.Error("assess prakriti failed", zap.Error(err), zap.String("user_id", userID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not assess prakriti"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": result})
}

// GetLatestResult maneja GET /prakriti/result.
func (h *PrakritiHandler) GetLatestResult(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.prakritiSvc.Latest(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrPrakritiNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "prakriti result not found"})
			return
		}
		h.logger.Error("get prakriti result failed", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch prakriti result"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetHistory maneja GET /prakriti/history?limit=n.
func (h *PrakritiHandler) GetHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a number"})
			return
		}
		limit = n
	}

	results, err := h.prakritiSvc.History(c.Request.Context(), userID, limit)
	if err != nil {
		h.logger.Error("list prakriti history failed", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch prakriti history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// currentUserID responde 401 si la ruta no paso por JWTAuthMiddleware.
func currentUserID(c *gin.Context) (string, bool) {
	userID := GetAuthUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return "", false
	}
	return userID, true
}
