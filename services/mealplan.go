package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"nutriplan/apperr"
	"nutriplan/models"
)

// BuildMealPlanPrompt embeds the profile's demographic and health fields
// into the natural-language request sent to the AI service.
func BuildMealPlanPrompt(p models.Profile) string {
	return fmt.Sprintf(`Generate a 7-day meal plan for the following profile:
- Name: %s
- Age: %d
- Gender: %s
- Weight: %.1f kg
- Height: %.1f cm
- BMI: %s
- Health Conditions: %s
- Dietary Restrictions: %s
- Allergies: %s

The meal plan should be healthy, varied, and personalized for these conditions.
Return the output in JSON array format like:
[
  { "day": "Monday", "breakfast": "...", "lunch": "...", "dinner": "..." },
  ...
]
Only output the JSON array, no extra text.`,
		p.Name, p.Age, p.Gender, p.Weight, p.Height, p.BMI,
		p.HealthConditions, p.DietaryRestrictions, p.Allergies)
}

// NormalizeMealPlan converts the upstream meal_plan payload into typed
// per-day entries. The upstream shape is not guaranteed: it may be a JSON
// array, or a string that itself contains a JSON array. Anything else
// (null, object, number, unparseable text) is ErrMalformedUpstream.
// This is the only place the loose payload is inspected.
func NormalizeMealPlan(raw json.RawMessage) ([]models.MealPlanDay, error) {
	data := bytes.TrimSpace(raw)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, fmt.Errorf("%w: meal_plan is missing", apperr.ErrMalformedUpstream)
	}

	// String case: unwrap, then parse the embedded text.
	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return nil, fmt.Errorf("%w: %v", apperr.ErrMalformedUpstream, err)
		}
		data = bytes.TrimSpace([]byte(text))
	}

	if len(data) == 0 || data[0] != '[' {
		return nil, fmt.Errorf("%w: meal_plan is not an array", apperr.ErrMalformedUpstream)
	}

	var days []models.MealPlanDay
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrMalformedUpstream, err)
	}

	return days, nil
}
