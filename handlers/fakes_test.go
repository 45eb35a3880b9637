package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"nutriplan/apperr"
	"nutriplan/models"
	"nutriplan/store"
)

// In-memory store fakes; the handlers only see the interfaces.

type fakeUsers struct {
	users     map[string]models.User
	nextID    int64
	createErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u store.NewUser) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	if _, exists := f.users[u.Email]; exists {
		return 0, apperr.ErrEmailExists
	}
	f.nextID++
	f.users[u.Email] = models.User{
		ID:           f.nextID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Age:          u.Age,
		Gender:       u.Gender,
		CreatedAt:    time.Now(),
	}
	return f.nextID, nil
}

func (f *fakeUsers) ByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return models.User{}, apperr.ErrUserNotFound
	}
	return u, nil
}

type fakeProfiles struct {
	profiles  []models.Profile
	nextID    int64
	createErr error
}

func (f *fakeProfiles) Create(_ context.Context, p store.NewProfile) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	f.profiles = append(f.profiles, models.Profile{
		ID:                  f.nextID,
		UserID:              p.UserID,
		Name:                p.Name,
		Age:                 p.Age,
		Gender:              p.Gender,
		Weight:              p.Weight,
		Height:              p.Height,
		BMI:                 p.BMI,
		HealthConditions:    p.HealthConditions,
		DietaryRestrictions: p.DietaryRestrictions,
		Allergies:           p.Allergies,
		CreatedAt:           time.Now().Add(time.Duration(f.nextID) * time.Second),
	})
	return f.nextID, nil
}

func (f *fakeProfiles) ByUser(_ context.Context, userID int64) ([]models.Profile, error) {
	out := []models.Profile{}
	// Inserted oldest first; walk backwards for newest-first order.
	for i := len(f.profiles) - 1; i >= 0; i-- {
		if f.profiles[i].UserID == userID {
			out = append(out, f.profiles[i])
		}
	}
	return out, nil
}

func (f *fakeProfiles) ByID(_ context.Context, id int64) (models.Profile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Profile{}, apperr.ErrProfileNotFound
}

type fakeChatLog struct {
	turns     []models.ChatTurn
	recordErr error
}

func (f *fakeChatLog) RecordTurn(_ context.Context, userMessage, aiResponse string) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.turns = append(f.turns, models.ChatTurn{
		UserMessage: userMessage,
		AIResponse:  aiResponse,
		Timestamp:   time.Now(),
	})
	return nil
}

func (f *fakeChatLog) Recent(_ context.Context, limit int64) ([]models.ChatTurn, error) {
	out := []models.ChatTurn{}
	for i := len(f.turns) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, f.turns[i])
	}
	return out, nil
}

func (f *fakeChatLog) Count(_ context.Context) (int64, error) {
	return int64(len(f.turns)), nil
}

type fakeGateway struct {
	recommendations []map[string]any
	prediction      string
	plan            []models.MealPlanDay
	chatReply       string
	err             error

	lastChatMessage string
	lastProfile     models.Profile
}

func (f *fakeGateway) Recommend(_ context.Context, _ models.RecommendRequest) ([]map[string]any, error) {
	return f.recommendations, f.err
}

func (f *fakeGateway) PredictDeficiency(_ context.Context, _ models.DeficiencyRequest) (string, error) {
	return f.prediction, f.err
}

func (f *fakeGateway) GenerateMealPlan(_ context.Context, profile models.Profile) ([]models.MealPlanDay, error) {
	f.lastProfile = profile
	return f.plan, f.err
}

func (f *fakeGateway) Chat(_ context.Context, message string) (string, error) {
	f.lastChatMessage = message
	return f.chatReply, f.err
}

// asUser fakes the auth middleware by injecting a subject id.
func asUser(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return out
}

func init() {
	gin.SetMode(gin.TestMode)
}
