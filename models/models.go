package models

import (
	"time"
)

type Profile struct {
	ID     int64   `json:"id"`
	UserID int64   `json:"user_id"`
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Gender string  `json:"gender"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	// BMI is stored exactly as submitted by the client, not recomputed.
	BMI                 string    `json:"bmi"`
	HealthConditions    string    `json:"health_conditions"`
	DietaryRestrictions string    `json:"dietary_restrictions"`
	Allergies           string    `json:"allergies"`
	CreatedAt           time.Time `json:"created_at"`
}

// ChatTurn is one user/assistant exchange, stored in the document store.
// Append-only: there is no update or delete path.
type ChatTurn struct {
	UserMessage string    `json:"userMessage" bson:"userMessage"`
	AIResponse  string    `json:"aiResponse" bson:"aiResponse"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}

// MealPlanDay is derived per-request from the AI service, never persisted.
type MealPlanDay struct {
	Day       string `json:"day"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// RecommendRequest carries macro targets. Field names match both the
// inbound API and the upstream AI service contract.
type RecommendRequest struct {
	CaloricValue  float64 `json:"caloricValue"`
	Fat           float64 `json:"fat"`
	Carbohydrates float64 `json:"carbohydrates"`
}

type DeficiencyRequest struct {
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Calories float64 `json:"calories"`
}
