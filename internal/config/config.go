package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string
	JWTSecret  string

	// APIKey is the shared secret for the integration endpoints.
	APIKey string

	// StorageDriver selects the snapshot store: "postgres" or "file".
	StorageDriver string
	StateFile     string

	MigrationsPath string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "teamboard_user"),
		DBPassword:     getEnv("DB_PASSWORD", "teamboard_pass"),
		DBName:         getEnv("DB_NAME", "teamboard_db"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		JWTSecret:      getEnv("JWT_SECRET", "supersecretkey"),
		APIKey:         getEnv("INTEGRATION_API_KEY", ""),
		StorageDriver:  getEnv("STORAGE_DRIVER", "postgres"),
		StateFile:      getEnv("STATE_FILE", "teamboard-state.json"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
