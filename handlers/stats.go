package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutriplan/store"
)

type StatsHandler struct {
	profiles store.Profiles
	chat     store.ChatLog
}

func NewStatsHandler(profiles store.Profiles, chat store.ChatLog) *StatsHandler {
	return &StatsHandler{profiles: profiles, chat: chat}
}

// Overview powers the dashboard insights card.
func (h *StatsHandler) Overview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var stats struct {
		ProfileCount int    `json:"profile_count"`
		LatestBMI    string `json:"latest_bmi"`
		ChatMessages int64  `json:"chat_messages"`
	}

	profiles, err := h.profiles.ByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profiles"})
		return
	}
	stats.ProfileCount = len(profiles)
	if len(profiles) > 0 {
		stats.LatestBMI = profiles[0].BMI
	}

	// Chat volume is best effort; the log is not scoped per user.
	if n, err := h.chat.Count(c.Request.Context()); err == nil {
		stats.ChatMessages = n
	}

	c.JSON(http.StatusOK, stats)
}
