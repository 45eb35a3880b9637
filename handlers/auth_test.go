package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutriplan/auth"
)

var testSecret = []byte("test-secret")

func setupAuthRouter(users *fakeUsers) *gin.Engine {
	h := NewAuthHandler(users, testSecret, nil)
	r := gin.New()
	r.POST("/api/signup", h.Signup)
	r.POST("/api/login", h.Login)
	return r
}

func TestSignup(t *testing.T) {
	users := newFakeUsers()
	r := setupAuthRouter(users)

	w := doJSON(t, r, http.MethodPost, "/api/signup", gin.H{
		"name": "Alice", "email": "alice@example.com", "password": "hunter2hunter2",
		"age": 31, "gender": "female",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "User created successfully", body["message"])

	// The token is bound to the freshly created user.
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	userID, err := auth.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)

	// The store never saw the plaintext password.
	u := users.users["alice@example.com"]
	assert.NotEqual(t, "hunter2hunter2", u.PasswordHash)
	assert.NotEmpty(t, u.PasswordHash)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	users := newFakeUsers()
	r := setupAuthRouter(users)

	input := gin.H{"name": "Alice", "email": "alice@example.com", "password": "hunter2hunter2"}

	w := doJSON(t, r, http.MethodPost, "/api/signup", input)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/signup", input)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", decodeBody(t, w)["error"])
}

func TestSignup_InvalidInput(t *testing.T) {
	r := setupAuthRouter(newFakeUsers())

	cases := []struct {
		name  string
		input gin.H
	}{
		{"missing name", gin.H{"email": "a@b.com", "password": "hunter2hunter2"}},
		{"bad email", gin.H{"name": "A", "email": "not-an-email", "password": "hunter2hunter2"}},
		{"short password", gin.H{"name": "A", "email": "a@b.com", "password": "short"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/signup", tc.input)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	users := newFakeUsers()
	r := setupAuthRouter(users)

	w := doJSON(t, r, http.MethodPost, "/api/signup", gin.H{
		"name": "Alice", "email": "alice@example.com", "password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email": "alice@example.com", "password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	token, _ := decodeBody(t, w)["token"].(string)
	require.NotEmpty(t, token)
	userID, err := auth.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	r := setupAuthRouter(newFakeUsers())

	w := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email": "nobody@example.com", "password": "whatever123",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeBody(t, w)["error"])
}

func TestLogin_WrongPassword(t *testing.T) {
	users := newFakeUsers()
	r := setupAuthRouter(users)

	w := doJSON(t, r, http.MethodPost, "/api/signup", gin.H{
		"name": "Alice", "email": "alice@example.com", "password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email": "alice@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
}
