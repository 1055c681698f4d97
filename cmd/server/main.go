package main

import (
	"context"
	"log"
	"os"

	"rx-education-api/config"
	"rx-education-api/internal/auth"
	"rx-education-api/internal/education"
	"rx-education-api/internal/logs"
	"rx-education-api/internal/lookup"
	"rx-education-api/internal/pages"
	"rx-education-api/internal/videos"

	"cloud.google.com/go/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"google.golang.org/genai"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&education.Pharmacy{},
		&auth.Pharmacist{},
		&education.DrugEducation{},
		&logs.SystemLog{},
	); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	ctx := context.Background()

	logService := &logs.LogService{DB: db}
	authService := &auth.AuthService{DB: db}
	educationService := &education.EducationService{DB: db}
	lookupService := lookup.NewLookupService(db)

	// Gemini drafts are optional; without a project the endpoint reports
	// itself unconfigured instead of blocking startup.
	summarizer := &education.GenAISummarizer{}
	if cfg.GenAIProject != "" {
		genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			Backend:  genai.BackendVertexAI,
			Project:  cfg.GenAIProject,
			Location: cfg.GenAILocation,
		})
		if err != nil {
			log.Printf("genai client unavailable: %v", err)
		} else {
			summarizer.Client = genaiClient
		}
	}

	videoService := &videos.VideoService{Bucket: cfg.GCSBucket}
	gcsClient, err := storage.NewClient(ctx)
	if err != nil {
		log.Printf("GCS client unavailable, video hosting disabled: %v", err)
	} else {
		videoService.Client = gcsClient
	}

	auth.RegisterRoutes(r, authService, logService)
	education.RegisterRoutes(r, educationService, summarizer, logService)
	lookup.RegisterRoutes(r, lookupService)
	videos.RegisterRoutes(r, videoService)
	logs.RegisterRoutes(r, logService)
	pages.RegisterRoutes(r, cfg, authService, educationService, lookupService)

	// Cloud Run expects plain HTTP, on $PORT, bound to 0.0.0.0
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
