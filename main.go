package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"nutriplan/config"
	"nutriplan/db"
	"nutriplan/handlers"
	"nutriplan/middleware"
	"nutriplan/services"
	"nutriplan/store"
)

func runMigrations(conn *sql.DB) {
	sqlBytes, err := os.ReadFile("schema.sql")
	if err != nil {
		log.Fatal("Failed to read schema.sql: ", err)
	}

	if _, err := conn.Exec(string(sqlBytes)); err != nil {
		log.Fatal("Failed to apply schema: ", err)
	}
	log.Println("Database schema verified")
}

func main() {
	cfg := config.Load()

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	runMigrations(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mongoDB, err := db.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	log.Println("Connected to MongoDB")

	users := store.NewPostgresUsers(conn)
	profiles := store.NewPostgresProfiles(conn)
	chatLog := store.NewMongoChatLog(mongoDB)
	gateway := services.NewAIClient(cfg.AIServiceURL, cfg.AITimeout)
	welcome := services.NewWelcomeMailer(cfg.SendGridKey, cfg.WelcomeFrom)

	secret := []byte(cfg.JWTSecret)
	authH := handlers.NewAuthHandler(users, secret, welcome)
	profileH := handlers.NewProfileHandler(profiles)
	aiH := handlers.NewAIHandler(gateway, profiles, chatLog)
	statsH := handlers.NewStatsHandler(profiles, chatLog)

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Backend server is running"})
	})

	api := r.Group("/api")
	api.POST("/signup", authH.Signup)
	api.POST("/login", authH.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(secret))
	{
		protected.POST("/save-profile", profileH.SaveProfile)
		protected.GET("/get-profiles", profileH.GetProfiles)

		protected.POST("/recommend", aiH.Recommend)
		protected.POST("/predict-deficiency", aiH.PredictDeficiency)
		protected.GET("/meal-plan/:profileId", aiH.MealPlan)

		protected.POST("/chat", aiH.Chat)
		protected.GET("/chat-history", aiH.ChatHistory)

		protected.GET("/stats/overview", statsH.Overview)
	}

	log.Println("Server starting on port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
