package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"career-compass/internal/domain"
	"career-compass/internal/service"
)

// RecommendationHandler expone el pipeline de recomendacion.
type RecommendationHandler struct {
	logger          *zap.Logger
	recommendations *service.RecommendationService
}

func NewRecommendationHandler(logger *zap.Logger, recommendations *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		logger:          logger,
		recommendations: recommendations,
	}
}

// Recommend maneja POST /recommendations. Los errores de input devuelven su
// causa especifica; cualquier otro error sale generico, sin detalle interno.
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req struct {
		SessionID   string          `json:"session_id"`
		Answers     []domain.Answer `json:"answers" binding:"required"`
		Preferences struct {
			First  string `json:"first" binding:"required"`
			Second string `json:"second" binding:"required"`
			Third  string `json:"third" binding:"required"`
		} `json:"preferences" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid recommendation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	prefs := domain.DomainPreference{
		First:  req.Preferences.First,
		Second: req.Preferences.Second,
		Third:  req.Preferences.Third,
	}

	result, err := h.recommendations.Recommend(c.Request.Context(), req.SessionID, req.Answers, prefs)
	if err != nil {
		if isInputError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("recommendation pipeline failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process questionnaire"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func isInputError(err error) bool {
	return errors.Is(err, domain.ErrIncompleteInput) ||
		errors.Is(err, domain.ErrUnknownTrait) ||
		errors.Is(err, domain.ErrUnknownQuestion) ||
		errors.Is(err, domain.ErrDuplicateDomain) ||
		errors.Is(err, domain.ErrUnknownDomain)
}
