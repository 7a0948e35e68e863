package utils

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort            string `yaml:"APP_PORT" envconfig:"APP_PORT"`
	FrontendDir        string `yaml:"FRONTEND_DIR" envconfig:"FRONTEND_DIR"`
	LogFile            string `yaml:"LOG_FILE" envconfig:"LOG_FILE"`
	RateLimitPerSecond int    `yaml:"RATE_LIMIT_PER_SECOND" envconfig:"RATE_LIMIT_PER_SECOND"`
	MaxUploadMB        int    `yaml:"MAX_UPLOAD_MB" envconfig:"MAX_UPLOAD_MB"`

	// Database configuration
	DBUser     string `yaml:"DB_USER" envconfig:"DB_USER"`
	DBName     string `yaml:"DB_NAME" envconfig:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD" envconfig:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT" envconfig:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST" envconfig:"DB_HOST"`

	// JWT
	JWTSecret     string `yaml:"JWT_SECRET" envconfig:"JWT_SECRET"`
	JWTTTLMinutes int    `yaml:"JWT_TTL_MINUTES" envconfig:"JWT_TTL_MINUTES"`

	// Regression model
	ModelPath           string `yaml:"MODEL_PATH" envconfig:"MODEL_PATH"`
	ModelURL            string `yaml:"MODEL_URL" envconfig:"MODEL_URL"`
	ModelTimeoutSeconds int    `yaml:"MODEL_TIMEOUT_SECONDS" envconfig:"MODEL_TIMEOUT_SECONDS"`

	// AWS configuration (S3 model artifacts, Rekognition OCR)
	AWSRegion    string `yaml:"AWS_REGION" envconfig:"AWS_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY" envconfig:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY" envconfig:"AWS_SECRET_KEY"`
	OCRTimeout   int    `yaml:"OCR_TIMEOUT_SECONDS" envconfig:"OCR_TIMEOUT_SECONDS"`

	// Gemini API configuration
	GeminiAPIKey  string `yaml:"GEMINI_API_KEY" envconfig:"GEMINI_API_KEY"`
	GeminiModel   string `yaml:"GEMINI_MODEL" envconfig:"GEMINI_MODEL"`
	GeminiBaseURL string `yaml:"GEMINI_BASE_URL" envconfig:"GEMINI_BASE_URL"`
	LLMTimeout    int    `yaml:"LLM_TIMEOUT_SECONDS" envconfig:"LLM_TIMEOUT_SECONDS"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:             "8080",
		FrontendDir:         "./frontend",
		LogFile:             "./logs/app.log",
		RateLimitPerSecond:  10,
		MaxUploadMB:         5,
		DBPort:              "5432",
		JWTTTLMinutes:       30,
		ModelPath:           "model/linear_regression_model.json",
		ModelTimeoutSeconds: 10,
		OCRTimeout:          30,
		GeminiModel:         "gemini-1.5-flash",
		GeminiBaseURL:       "https://generativelanguage.googleapis.com/v1beta",
		LLMTimeout:          30,
	}
}

// LoadConfig reads config.yaml, then lets the environment (and an optional
// .env file) override any key.
func LoadConfig() {
	cfg := defaultConfig()

	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &cfg); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	_ = godotenv.Load()
	if err := envconfig.Process("", &cfg); err != nil {
		log.Printf("Error reading environment: %s\n", err)
	}

	config = cfg
}

// SetConfig replaces the active configuration.
func SetConfig(cfg Config) {
	config = cfg
}

func AppConfig() Config {
	return config
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "FRONTEND_DIR":
		return config.FrontendDir
	case "LOG_FILE":
		return config.LogFile
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "MODEL_PATH":
		return config.ModelPath
	case "MODEL_URL":
		return config.ModelURL
	case "AWS_REGION":
		return config.AWSRegion
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "GEMINI_API_KEY":
		return config.GeminiAPIKey
	case "GEMINI_MODEL":
		return config.GeminiModel
	case "GEMINI_BASE_URL":
		return config.GeminiBaseURL
	case "RATE_LIMIT_PER_SECOND":
		return strconv.Itoa(config.RateLimitPerSecond)
	case "MAX_UPLOAD_MB":
		return strconv.Itoa(config.MaxUploadMB)
	default:
		return ""
	}
}

func (c Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

func (c Config) ModelTimeout() time.Duration {
	return time.Duration(c.ModelTimeoutSeconds) * time.Second
}

func (c Config) OCRTimeoutDuration() time.Duration {
	return time.Duration(c.OCRTimeout) * time.Second
}

func (c Config) LLMTimeoutDuration() time.Duration {
	return time.Duration(c.LLMTimeout) * time.Second
}
