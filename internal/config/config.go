package config

import (
	"os"
	"strconv"

	"github.com/hikaru-dev/calc-forest-api/internal/constants"
)

type Config struct {
	Port          string
	GinMode       string
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SQLitePath    string
	JWTSecret     string
	TokenTTLHours int
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		DBDriver:      getEnv("DB_DRIVER", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "calcuser"),
		DBPassword:    getEnv("DB_PASSWORD", "calcpassword"),
		DBName:        getEnv("DB_NAME", "calc_forest"),
		SQLitePath:    getEnv("SQLITE_PATH", "calc_forest.db"),
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key"),
		TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", constants.DefaultTokenTTLHours),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}
