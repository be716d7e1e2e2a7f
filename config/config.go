// Package config loads run configuration from the environment, with
// optional .env support.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Data     DataConfig
	Training TrainingConfig
	Logging  LoggingConfig
}

type DataConfig struct {
	Dir string
}

type TrainingConfig struct {
	Epochs       int
	HiddenNodes  int
	LearningRate float64
	Seed         int64
	ModelPath    string
}

type LoggingConfig struct {
	Level string
}

// Load reads configuration from a .env file, when present, and the
// environment. Unset keys fall back to defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Data: DataConfig{
			Dir: getEnv("DATA_DIR", "data"),
		},
		Training: TrainingConfig{
			Epochs:       getEnvInt("EPOCHS", 10000),
			HiddenNodes:  getEnvInt("HIDDEN_NODES", 64),
			LearningRate: getEnvFloat("LEARNING_RATE", 0.1),
			Seed:         int64(getEnvInt("SEED", 1)),
			ModelPath:    getEnv("MODEL_PATH", "kanjiffnn.json.zlib"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
