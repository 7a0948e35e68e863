package config

import (
	"Nutrition-Density-Backend/domain"
	"Nutrition-Density-Backend/internal/api/handlers"
	"Nutrition-Density-Backend/internal/api/routes"
	"Nutrition-Density-Backend/internal/middleware"
	"Nutrition-Density-Backend/internal/utils"
	"Nutrition-Density-Backend/internal/utils/storage"
	"Nutrition-Density-Backend/pkg/jwt"
	"Nutrition-Density-Backend/pkg/label"
	"Nutrition-Density-Backend/pkg/meal"
	"Nutrition-Density-Backend/pkg/regression"
	"Nutrition-Density-Backend/pkg/user"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func NewApp(ctx context.Context, db *gorm.DB, cfg utils.Config) (*fiber.App, error) {
	utils.InitValidator()
	maxUploadBytes := int64(cfg.MaxUploadMB) * 1024 * 1024

	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		// multipart overhead on top of the image itself
		BodyLimit: int(maxUploadBytes) + 1024*1024,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		cfg.LogFile,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	// external collaborators, loaded once and shared read-only
	awsCfg, err := storage.LoadAWSConfig(ctx, cfg.AWSRegion, cfg.AWSAccessKey, cfg.AWSSecretKey)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if cfg.AWSRegion == "" {
		log.Warn("AWS_REGION not set; label OCR and s3 model paths will fail")
	}
	s3 := storage.NewAwsS3(awsCfg)

	model, source, err := regression.Load(ctx, regression.Source{
		Path:    cfg.ModelPath,
		URL:     cfg.ModelURL,
		Timeout: cfg.ModelTimeout(),
	}, domain.NutrientNames, s3)
	if err != nil {
		return nil, fmt.Errorf("load regression model: %w", err)
	}
	log.Infof("Regression model loaded from %s", source)

	detector := label.NewRekognitionDetector(awsCfg)
	extractor := label.NewGeminiExtractor(label.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
	}, &http.Client{Timeout: cfg.LLMTimeoutDuration()})

	// Repository
	userRepository := user.NewUserRepository(db)
	mealRepository := meal.NewMealRepository(db)

	// Service
	jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.JWTTTL())
	userService := user.NewUserService(userRepository, jwtService)
	mealService := meal.NewMealService(mealRepository, userRepository, model)
	labelService := label.NewLabelService(detector, extractor, cfg.OCRTimeoutDuration(), cfg.LLMTimeoutDuration())

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	labelHandler := handlers.NewLabelHandler(labelService, maxUploadBytes)

	// routes
	routesConfig := routes.Config{
		App:           app,
		UserHandler:   userHandler,
		MealHandler:   mealHandler,
		LabelHandler:  labelHandler,
		Middleware:    middlewares,
		TokenVerifier: userService,
		FrontendDir:   cfg.FrontendDir,
		RateLimit:     cfg.RateLimitPerSecond,
	}
	routesConfig.Setup()
	return app, nil
}
