package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	Path string
}

type LoggerConfig struct {
	FilePath string
}

type Config struct {
	Database DatabaseConfig
	Logger   LoggerConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	return &Config{
		Database: DatabaseConfig{
			Path: getEnv("INVENTORY_DB_PATH", "inventory.db"),
		},
		Logger: LoggerConfig{
			FilePath: getEnv("LOG_FILE_PATH", "./logs/app.log"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
