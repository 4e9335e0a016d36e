package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"quiz-session-service/internal/bank"
	"quiz-session-service/internal/config"
	"quiz-session-service/internal/db"
	"quiz-session-service/internal/event"
	"quiz-session-service/internal/generator"
	"quiz-session-service/internal/handlers"
	"quiz-session-service/internal/repository"
	"quiz-session-service/internal/service"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	questionBank := loadBank(cfg)
	log.Printf("Question bank ready: %d questions", questionBank.Size())

	// RabbitMQ event publisher
	var notifier event.Notifier = event.LogNotifier{}
	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		publisher, err := event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		notifier = publisher
	} else {
		log.Println("RabbitMQ not configured, session events stay local")
	}

	gen := generator.New(questionBank)
	quizService := service.NewQuizService(questionBank, gen)
	sessionService := service.NewSessionService(gen, notifier, cfg.Quiz.LoadingDelay, cfg.Quiz.TickInterval)

	quizHandler := handlers.NewQuizHandler(quizService)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", quizHandler.Health)

	api := r.Group("/api")
	{
		api.GET("/topics", quizHandler.Topics)
		api.POST("/generate-quiz", quizHandler.GenerateQuiz)
		api.POST("/submit-quiz", quizHandler.SubmitQuiz)
	}

	sessionRoutes := api.Group("/session")
	{
		sessionRoutes.POST("/", sessionHandler.StartSession)
		sessionRoutes.GET("/", sessionHandler.GetSession)
		sessionRoutes.POST("/answer", sessionHandler.SelectAnswer)
		sessionRoutes.POST("/next", sessionHandler.NextQuestion)
		sessionRoutes.POST("/previous", sessionHandler.PreviousQuestion)
		sessionRoutes.POST("/finish", sessionHandler.FinishSession)
		sessionRoutes.POST("/pause", sessionHandler.PauseSession)
		sessionRoutes.POST("/resume", sessionHandler.ResumeSession)
		sessionRoutes.POST("/restart", sessionHandler.RestartSession)
		sessionRoutes.GET("/results", sessionHandler.GetResults)
	}

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// loadBank picks the question bank source: MongoDB when configured, then a
// JSON file, then the embedded seed data. An empty Mongo store is seeded
// from the embedded bank so content management can start from something.
func loadBank(cfg *config.Config) *bank.Bank {
	if cfg.Quiz.BankFile != "" {
		b, err := bank.LoadFile(cfg.Quiz.BankFile)
		if err != nil {
			log.Fatalf("Failed to load bank file: %v", err)
		}
		return b
	}

	if cfg.MongoDB.URI == "" {
		log.Println("MongoDB not configured, using embedded question bank")
		return bank.Default()
	}

	db.InitMongo(cfg.MongoDB.URI)
	repo := repository.NewQuestionRepository(db.Client.Database(cfg.MongoDB.Database))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	count, err := repo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to inspect question store: %v", err)
	}
	if count == 0 {
		seed := bank.Default()
		if err := repo.BulkCreate(ctx, seed.Questions()); err != nil {
			log.Printf("Failed to seed question store: %v", err)
		}
		return seed
	}

	questions, err := repo.FindAll(ctx)
	if err != nil {
		log.Fatalf("Failed to load questions: %v", err)
	}
	if len(questions) == 0 {
		return bank.Default()
	}
	return bank.FromQuestions(questions)
}
