package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutriplan/store"
)

type ProfileHandler struct {
	profiles store.Profiles
}

func NewProfileHandler(profiles store.Profiles) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type SaveProfileInput struct {
	Name                string  `json:"name" binding:"required"`
	Age                 int     `json:"age"`
	Gender              string  `json:"gender"`
	Weight              float64 `json:"weight"`
	Height              float64 `json:"height"`
	BMI                 string  `json:"bmi"`
	HealthConditions    string  `json:"healthConditions"`
	DietaryRestrictions string  `json:"dietaryRestrictions"`
	FoodAllergies       string  `json:"foodAllergies"`
}

func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var input SaveProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profileID, err := h.profiles.Create(c.Request.Context(), store.NewProfile{
		UserID:              userID,
		Name:                input.Name,
		Age:                 input.Age,
		Gender:              input.Gender,
		Weight:              input.Weight,
		Height:              input.Height,
		BMI:                 input.BMI,
		HealthConditions:    input.HealthConditions,
		DietaryRestrictions: input.DietaryRestrictions,
		Allergies:           input.FoodAllergies,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Profile saved successfully", "profileId": profileID})
}

func (h *ProfileHandler) GetProfiles(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	profiles, err := h.profiles.ByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profiles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}
