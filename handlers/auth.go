package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"nutriplan/apperr"
	"nutriplan/auth"
	"nutriplan/services"
	"nutriplan/store"
)

type AuthHandler struct {
	users   store.Users
	secret  []byte
	welcome *services.WelcomeMailer
}

func NewAuthHandler(users store.Users, secret []byte, welcome *services.WelcomeMailer) *AuthHandler {
	return &AuthHandler{users: users, secret: secret, welcome: welcome}
}

type SignupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The plaintext is discarded once hashed; only the hash is stored.
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	userID, err := h.users.Create(c.Request.Context(), store.NewUser{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Age:          input.Age,
		Gender:       input.Gender,
	})
	if errors.Is(err, apperr.ErrEmailExists) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := auth.GenerateToken(userID, h.secret, auth.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if h.welcome != nil {
		go h.welcome.Send(input.Name, input.Email)
	}

	log.Printf("New user created: id=%d email=%s", userID, input.Email)
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "token": token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.ByEmail(c.Request.Context(), input.Email)
	if errors.Is(err, apperr.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(user.ID, h.secret, auth.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	log.Printf("Login success: id=%d email=%s", user.ID, user.Email)
	c.JSON(http.StatusOK, gin.H{"token": token})
}
