package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/interview-simulator/internal/config"
	"github.com/fadilmartias/interview-simulator/internal/domain/fiber/handler"
	"github.com/fadilmartias/interview-simulator/internal/middleware"
	"github.com/fadilmartias/interview-simulator/internal/model"
	"github.com/fadilmartias/interview-simulator/internal/repository"
	"github.com/fadilmartias/interview-simulator/internal/service"
	"github.com/fadilmartias/interview-simulator/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     appConfig.FrontendURL,
		AllowCredentials: true,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env != "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	var repo repository.InterviewRepository
	if config.LoadDBConfig().Enabled() {
		repo = repository.NewGormInterviewRepository(connectDB())
	} else {
		log.Println("No database configured, running in demo mode (data stored in memory)")
		repo = repository.NewMemoryInterviewRepository()
	}

	interviewer := service.NewInterviewerService()

	var llm usecase.AnswerScorer
	if config.LoadGeminiConfig().APIKey != "" {
		gemini, err := service.NewGeminiService(ctx)
		if err != nil {
			log.Fatal(err)
		}
		llm = gemini
	} else if config.LoadOpenRouterConfig().APIKey != "" {
		llm = service.NewOpenRouterService()
	}

	uc := usecase.NewInterviewUsecase(repo, interviewer, llm)
	h := handler.NewInterviewHandler(uc)
	h.RegisterRoutes(app)

	addr := fmt.Sprintf(":%s", appConfig.Port)
	log.Println("Server running on", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
}

func connectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&model.Interview{}); err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
