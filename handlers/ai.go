package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nutriplan/apperr"
	"nutriplan/models"
	"nutriplan/services"
	"nutriplan/store"
)

type AIHandler struct {
	gateway  services.AIGateway
	profiles store.Profiles
	chat     store.ChatLog
}

func NewAIHandler(gateway services.AIGateway, profiles store.Profiles, chat store.ChatLog) *AIHandler {
	return &AIHandler{gateway: gateway, profiles: profiles, chat: chat}
}

func (h *AIHandler) Recommend(c *gin.Context) {
	var req models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	recommendations, err := h.gateway.Recommend(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}

func (h *AIHandler) PredictDeficiency(c *gin.Context) {
	var req models.DeficiencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	prediction, err := h.gateway.PredictDeficiency(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to predict deficiencies"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"prediction": prediction})
}

// MealPlan looks up the profile, asks the AI service for a plan and
// returns the normalized result. Note: the lookup is by profile id, not
// scoped to the authenticated owner.
func (h *AIHandler) MealPlan(c *gin.Context) {
	profileID, err := strconv.ParseInt(c.Param("profileId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile id"})
		return
	}

	profile, err := h.profiles.ByID(c.Request.Context(), profileID)
	if errors.Is(err, apperr.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	plan, err := h.gateway.GenerateMealPlan(c.Request.Context(), profile)
	if errors.Is(err, apperr.ErrMalformedUpstream) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse meal plan from AI response"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate meal plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profileId": profileID, "mealPlan": plan})
}

type ChatInput struct {
	Message string `json:"message" binding:"required"`
}

// Chat forwards the message to the AI service and records the exchange.
// The log write is awaited before replying: a failed write is a 500 even
// though the AI call already succeeded, so the entry is never silently
// lost.
func (h *AIHandler) Chat(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.gateway.Chat(c.Request.Context(), input.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reach the assistant"})
		return
	}

	if err := h.chat.RecordTurn(c.Request.Context(), input.Message, reply); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record chat message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"aiResponse": reply})
}

func (h *AIHandler) ChatHistory(c *gin.Context) {
	turns, err := h.chat.Recent(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chat history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": turns})
}
