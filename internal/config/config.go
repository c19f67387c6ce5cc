package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"query-router/internal/adapter/client"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Gateway   client.GatewayConfig
	Limiter   LimiterConfig
	Knowledge KnowledgeConfig
}

type AppConfig struct {
	Port         string
	Environment  string
	Version      string
	LogFilePath  string
	ModelTimeout time.Duration
}

type LimiterConfig struct {
	RedisAddr string // empty selects the in-memory limiter
	Limit     int
	Window    time.Duration
}

type KnowledgeConfig struct {
	File string // empty selects the built-in record
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		App: AppConfig{
			Port:         getEnv("PORT", "8080"),
			Environment:  getEnv("ENV", "development"),
			Version:      getEnv("APP_VERSION", "dev"),
			LogFilePath:  getEnv("LOG_FILE_PATH", ""),
			ModelTimeout: getEnvAsDuration("MODEL_TIMEOUT", 8*time.Second),
		},
		Gateway: client.GatewayConfig{
			APIKey:       getEnv("GEMINI_API_KEY", ""),
			Project:      getEnv("GOOGLE_CLOUD_PROJECT", ""),
			Location:     getEnv("GOOGLE_CLOUD_LOCATION", "us-central1"),
			GeneralModel: getEnv("GENERAL_MODEL", "gemini-2.5-flash"),
			CompanyModel: getEnv("COMPANY_MODEL", "gemini-2.5-flash"),
		},
		Limiter: LimiterConfig{
			RedisAddr: getEnv("REDIS_ADDR", ""),
			Limit:     getEnvAsInt("QUERY_LIMIT", 60),
			Window:    getEnvAsDuration("QUERY_WINDOW", time.Minute),
		},
		Knowledge: KnowledgeConfig{
			File: getEnv("KNOWLEDGE_FILE", ""),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration ignores unparsable and non-positive values.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil && value > 0 {
		return value
	}
	return fallback
}
