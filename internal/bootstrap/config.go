package bootstrap

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr string

	EngineURL     string
	ModelPath     string
	EngineTimeout time.Duration

	TempDir       string
	MaxImageBytes int64
	MaxVideoBytes int64

	LogLevel string
}

func LoadConfig() *Config {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8000"),

		EngineURL:     getEnv("ENGINE_URL", "http://localhost:8001"),
		ModelPath:     getEnv("MODEL_PATH", "Qwen/Qwen3-VL-235B-A22B-Instruct"),
		EngineTimeout: getEnvDuration("ENGINE_TIMEOUT", 5*time.Minute),

		TempDir:       getEnv("TEMP_DIR", ""),
		MaxImageBytes: getEnvInt64("MAX_IMAGE_BYTES", 64<<20),
		MaxVideoBytes: getEnvInt64("MAX_VIDEO_BYTES", 1<<30),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
