package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"nutriplan/apperr"
	"nutriplan/models"
)

// AIGateway is the outbound contract with the AI microservice. Handlers
// depend on this interface so tests can substitute a fake.
type AIGateway interface {
	Recommend(ctx context.Context, req models.RecommendRequest) ([]map[string]any, error)
	PredictDeficiency(ctx context.Context, req models.DeficiencyRequest) (string, error)
	GenerateMealPlan(ctx context.Context, profile models.Profile) ([]models.MealPlanDay, error)
	Chat(ctx context.Context, message string) (string, error)
}

type AIClient struct {
	baseURL string
	http    *http.Client
}

// NewAIClient builds a client with a bounded timeout so a hung upstream
// surfaces as ErrUpstream instead of stalling the inbound request.
func NewAIClient(baseURL string, timeout time.Duration) *AIClient {
	return &AIClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *AIClient) Recommend(ctx context.Context, req models.RecommendRequest) ([]map[string]any, error) {
	var out struct {
		Recommendations []map[string]any `json:"recommendations"`
		Error           string           `json:"error"`
	}
	if err := c.postJSON(ctx, "/api/recommend", req, &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, fmt.Errorf("%w: %s", apperr.ErrUpstream, out.Error)
	}
	// The recommendation list is passed through verbatim.
	return out.Recommendations, nil
}

func (c *AIClient) PredictDeficiency(ctx context.Context, req models.DeficiencyRequest) (string, error) {
	var out struct {
		Prediction string `json:"prediction"`
		Error      string `json:"error"`
	}
	if err := c.postJSON(ctx, "/api/predict-deficiency", req, &out); err != nil {
		return "", err
	}
	if out.Error != "" {
		return "", fmt.Errorf("%w: %s", apperr.ErrUpstream, out.Error)
	}
	return out.Prediction, nil
}

func (c *AIClient) GenerateMealPlan(ctx context.Context, profile models.Profile) ([]models.MealPlanDay, error) {
	var out struct {
		MealPlan json.RawMessage `json:"meal_plan"`
		Error    string          `json:"error"`
	}
	body := map[string]string{"prompt": BuildMealPlanPrompt(profile)}
	if err := c.postJSON(ctx, "/api/meal-plan", body, &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, fmt.Errorf("%w: %s", apperr.ErrUpstream, out.Error)
	}
	return NormalizeMealPlan(out.MealPlan)
}

func (c *AIClient) Chat(ctx context.Context, message string) (string, error) {
	var out struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}
	body := map[string]string{"message": message}
	if err := c.postJSON(ctx, "/api/chat", body, &out); err != nil {
		return "", err
	}
	if out.Error != "" {
		return "", fmt.Errorf("%w: %s", apperr.ErrUpstream, out.Error)
	}
	return out.Response, nil
}

// postJSON sends one request and decodes the reply. The context comes
// from the inbound request, so a disconnected caller cancels the
// upstream call instead of leaving it in flight.
func (c *AIClient) postJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: status %d from %s", apperr.ErrUpstream, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %v", apperr.ErrUpstream, path, err)
	}

	return nil
}
