package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"wine-club-be/pkg/database"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Ai       AIConfig
	Wine     WineConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	ScanLogFilePath    string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	BodyLimitBytes     int
}

type DatabaseConfig struct {
	Connection      string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
	SampleRatio float64
}

type AuthConfig struct {
	JwtSecret string
}

type AIConfig struct {
	VisionProvider string // "openai", "ollama" or "gemini"
	VisionModel    string
	VisionBaseURL  string
	OpenAIKey      string
	GeminiKey      string
	MaxTokens      int
	Timeout        time.Duration
}

type WineConfig struct {
	CuratorName        string
	ScanResultTTL      time.Duration
	CollectionCacheTTL time.Duration
	CuratedSeedPath    string
	ScanTopic          string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("PORT", "3001"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			ScanLogFilePath:    getEnv("SCAN_LOG_FILE_PATH", "logs/scans.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			BodyLimitBytes:     getEnvAsInt("BODY_LIMIT_BYTES", 10*1024*1024),
		},
		Database: DatabaseConfig{
			Connection:      getEnv("DB_CONNECTION_STRING", ""),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 50),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			LogLevel:        getEnv("DB_LOG_LEVEL", "warn"),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", ""),
		},
		Ai: AIConfig{
			VisionProvider: getEnv("VISION_PROVIDER", "openai"),
			VisionModel:    getEnv("VISION_MODEL", ""),
			VisionBaseURL:  getEnv("VISION_BASE_URL", ""),
			OpenAIKey:      getEnv("OPENAI_API_KEY", ""),
			GeminiKey:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
			MaxTokens:      getEnvAsInt("VISION_MAX_TOKENS", 500),
			Timeout:        getEnvAsDuration("VISION_TIMEOUT", 60*time.Second),
		},
		Wine: WineConfig{
			CuratorName:        getEnv("CURATOR_NAME", "Frank"),
			ScanResultTTL:      getEnvAsDuration("SCAN_RESULT_TTL", 30*time.Minute),
			CollectionCacheTTL: getEnvAsDuration("COLLECTION_CACHE_TTL", 10*time.Minute),
			CuratedSeedPath:    getEnv("CURATED_SEED_PATH", "data/franks_notes.json"),
			ScanTopic:          getEnv("SCAN_TOPIC_NAME", "WINE_SCANNED"),
		},
		Tracing: TracingConfig{
			Enabled:     getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "wine-club-backend"),
			SampleRatio: getEnvAsFloat("OTEL_SAMPLE_RATIO", 1.0),
		},
	}
}

// GormConfig maps the database settings onto the connection pool options.
func (c DatabaseConfig) GormConfig() database.Config {
	return database.Config{
		DSN:             c.Connection,
		MaxIdleConns:    c.MaxIdleConns,
		MaxOpenConns:    c.MaxOpenConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
		LogLevel:        c.LogLevel,
	}
}

// APIKey returns the key matching the configured vision provider.
func (c AIConfig) APIKey() string {
	if c.VisionProvider == "gemini" {
		return c.GeminiKey
	}
	return c.OpenAIKey
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
