package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	SourceBuiltin  = "builtin"
	SourceDatabase = "database"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port           string
	GinMode        string
	AllowedOrigins []string

	// CatalogSource is "builtin", "database", or a path to a JSON catalog file.
	CatalogSource  string
	DatabaseDriver string
	DatabaseURL    string

	MaxProposals       int
	FallbackConfidence int
}

// Load reads the .env file (if any) and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        os.Getenv("GIN_MODE"),
		AllowedOrigins: allowedOrigins(os.Getenv("FRONTEND_URL")),

		CatalogSource:  getEnv("CATALOG_SOURCE", SourceBuiltin),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "postgres"),
		DatabaseURL:    buildDSN(),

		MaxProposals:       getEnvInt("MAX_PROPOSALS", 3),
		FallbackConfidence: getEnvInt("FALLBACK_CONFIDENCE", 45),
	}
}

func allowedOrigins(frontendURLs string) []string {
	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	for _, u := range strings.Split(frontendURLs, ",") {
		u = strings.TrimSpace(u)
		if u != "" {
			origins = append(origins, u)
		}
	}
	return origins
}

func buildDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	// Fallback to individual vars (local dev)
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	pass := getEnv("DB_PASSWORD", "postgres")
	name := getEnv("DB_NAME", "tripplanner")
	sslmode := getEnv("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, sslmode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
