package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/campuspulse/feedback-api/internal/auth"
	"github.com/campuspulse/feedback-api/internal/config"
	"github.com/campuspulse/feedback-api/internal/domain/fiber/handler"
	"github.com/campuspulse/feedback-api/internal/middleware"
	"github.com/campuspulse/feedback-api/internal/model"
	"github.com/campuspulse/feedback-api/internal/repository"
	"github.com/campuspulse/feedback-api/internal/service"
	"github.com/campuspulse/feedback-api/internal/usecase"
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
	"gorm.io/driver/sqlite"
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

			return ctx.Status(code).JSON(fiber.Map{"detail": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	feedbackRepo := repository.NewFeedbackRepository(db)
	classifier := buildClassifier(ctx)

	feedbackUC := usecase.NewFeedbackUsecase(feedbackRepo, classifier)
	dashboardUC := usecase.NewDashboardUsecase(feedbackRepo)

	handler.NewFeedbackHandler(feedbackUC).RegisterRoutes(app)
	handler.NewDashboardHandler(dashboardUC).RegisterRoutes(app)
	handler.NewAuthHandler(buildAuthenticator()).RegisterRoutes(app)

	log.Println("Server running on", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()

	var dialector gorm.Dialector
	if dbConfig.IsPostgres() {
		dialector = postgres.Open(dbConfig.URL)
	} else {
		dialector = sqlite.Open(dbConfig.URL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	if err := db.AutoMigrate(&model.Feedback{}); err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}

func buildClassifier(ctx context.Context) service.ClassifierInterface {
	cfg := config.LoadClassifierConfig()
	if cfg.Provider == "gemini" {
		gemini, err := service.NewGeminiService(ctx)
		if err != nil {
			log.Printf("gemini classifier unavailable (%v), falling back to huggingface", err)
			return service.NewHuggingFaceService()
		}
		return gemini
	}
	return service.NewHuggingFaceService()
}

func buildAuthenticator() auth.Authenticator {
	cfg := config.LoadAuthConfig()
	if cfg.JWTSecret != "" {
		return auth.NewJWTAuthenticator(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)
	}
	return auth.NewStaticAuthenticator(cfg.AdminUsername, cfg.AdminPassword, cfg.StaticToken)
}
