package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Elziee/BIOOO-comp/models"
)

// Config holds application configuration read from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	SecretKey   string
	LogLevel    string

	USDAAPIKey  string
	USDABaseURL string

	// Glob for the HTML views; relative to the working directory.
	TemplatesGlob string
}

// Load reads .env if present, then builds the config from environment
// variables with development defaults.
func Load() *Config {
	// .env is optional outside local development
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: normalizeDatabaseURL(getEnv("DATABASE_URL", "")),
		SecretKey:   getEnv("SECRET_KEY", "dev-key-change-in-production"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		USDAAPIKey:  getEnv("USDA_API_KEY", "DEMO_KEY"),
		USDABaseURL: getEnv("USDA_API_BASE_URL", "https://api.nal.usda.gov/fdc/v1"),

		TemplatesGlob: "templates/*.html",
	}
}

// Some hosts hand out postgres:// URLs, which lib-level parsers want
// spelled postgresql://.
func normalizeDatabaseURL(u string) string {
	if strings.HasPrefix(u, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(u, "postgres://")
	}
	return u
}

// OpenDB connects to Postgres and migrates the schema.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_NAME", "nutrition"),
			getEnv("DB_PORT", "5432"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the three application tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.FoodLog{},
		&models.NutritionGoal{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
