package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// This function will Load the ENVIORNMENT VARIABLES from .env if GO_ENV variable is not set
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		err := godotenv.Load()
		if err != nil {
			return err
		}
	}

	return nil
}

type EnviornmentVariable struct {
	// All variables
	GO_ENV       string
	DB_USER_NAME string
	DB_PASSWORD  string
	DB_NAME      string
	DB_HOST      string
	DB_PORT      string
	DB_SSL_MODE  string
	PORT         int
	// JWT Configuration
	JWT_SECRET string
	JWT_ISSUER string
	// Redis Configuration
	REDIS_URL      string
	REDIS_PASSWORD string
	REDIS_DB       string
	// Generative model
	LLM_PROVIDER        string
	MODEL_ACCESS_KEY    string
	INFERENCE_MODEL     string
	GEMINI_API_KEY      string
	GEMINI_MODEL        string
	LLM_TIMEOUT_SECONDS int
	// Leads
	LEAD_STORE string
	MONGO_URI  string
	MONGO_DB   string
	// Counselor
	SESSION_TTL_MINUTES int
	KNOWLEDGE_BASE_PATH string
	// DigitalOcean Spaces
	DO_SPACES_ACCESS_KEY   string
	DO_SPACES_SECRET_KEY   string
	DO_SPACES_BUCKET       string
	DO_SPACES_REGION       string
	DO_SPACES_ENDPOINT     string
	DO_SPACES_CDN_ENDPOINT string
	// Misc
	ALLOWED_ORIGINS string
	CRON_ENABLED    bool
	ADMIN_EMAIL     string
	ADMIN_PASSWORD  string
}

func Get() (*EnviornmentVariable, error) {

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	// Database defaults
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}

	provider := strings.ToLower(os.Getenv("LLM_PROVIDER"))
	if provider == "" {
		provider = "digitalocean"
	}

	leadStore := strings.ToLower(os.Getenv("LEAD_STORE"))
	if leadStore == "" {
		leadStore = "postgres"
	}

	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		mongoDB = "admissions"
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "admission-counselor-api"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
	}

	envVariables := &EnviornmentVariable{
		GO_ENV:       os.Getenv("GO_ENV"),
		DB_USER_NAME: os.Getenv("DB_USER_NAME"),
		DB_PASSWORD:  os.Getenv("DB_PASSWORD"),
		DB_NAME:      os.Getenv("DB_NAME"),
		DB_HOST:      dbHost,
		DB_PORT:      dbPort,
		DB_SSL_MODE:  os.Getenv("DB_SSL_MODE"),
		PORT:         port,
		// JWT
		JWT_SECRET: os.Getenv("JWT_SECRET"),
		JWT_ISSUER: jwtIssuer,
		// Redis
		REDIS_URL:      os.Getenv("REDIS_URL"),
		REDIS_PASSWORD: os.Getenv("REDIS_PASSWORD"),
		REDIS_DB:       os.Getenv("REDIS_DB"),
		// Model
		LLM_PROVIDER:        provider,
		MODEL_ACCESS_KEY:    os.Getenv("MODEL_ACCESS_KEY"),
		INFERENCE_MODEL:     os.Getenv("INFERENCE_MODEL"),
		GEMINI_API_KEY:      os.Getenv("GEMINI_API_KEY"),
		GEMINI_MODEL:        os.Getenv("GEMINI_MODEL"),
		LLM_TIMEOUT_SECONDS: intOrDefault("LLM_TIMEOUT_SECONDS", 60),
		// Leads
		LEAD_STORE: leadStore,
		MONGO_URI:  os.Getenv("MONGO_URI"),
		MONGO_DB:   mongoDB,
		// Counselor
		SESSION_TTL_MINUTES: intOrDefault("SESSION_TTL_MINUTES", 120),
		KNOWLEDGE_BASE_PATH: os.Getenv("KNOWLEDGE_BASE_PATH"),
		// Spaces
		DO_SPACES_ACCESS_KEY:   os.Getenv("DO_SPACES_ACCESS_KEY"),
		DO_SPACES_SECRET_KEY:   os.Getenv("DO_SPACES_SECRET_KEY"),
		DO_SPACES_BUCKET:       os.Getenv("DO_SPACES_BUCKET"),
		DO_SPACES_REGION:       os.Getenv("DO_SPACES_REGION"),
		DO_SPACES_ENDPOINT:     os.Getenv("DO_SPACES_ENDPOINT"),
		DO_SPACES_CDN_ENDPOINT: os.Getenv("DO_SPACES_CDN_ENDPOINT"),
		// Misc
		ALLOWED_ORIGINS: allowedOrigins,
		CRON_ENABLED:    os.Getenv("CRON_ENABLED") != "false", // Default to enabled
		ADMIN_EMAIL:     os.Getenv("ADMIN_EMAIL"),
		ADMIN_PASSWORD:  os.Getenv("ADMIN_PASSWORD"),
	}

	return envVariables, nil
}

// IsProduction reports whether GO_ENV is set to production
func (e *EnviornmentVariable) IsProduction() bool {
	return e.GO_ENV == "production"
}

// LLMTimeout is the per-call deadline applied around generator requests
func (e *EnviornmentVariable) LLMTimeout() time.Duration {
	return time.Duration(e.LLM_TIMEOUT_SECONDS) * time.Second
}

// SessionTTL is how long an idle chat session is kept
func (e *EnviornmentVariable) SessionTTL() time.Duration {
	return time.Duration(e.SESSION_TTL_MINUTES) * time.Minute
}

// Origins splits ALLOWED_ORIGINS on commas
func (e *EnviornmentVariable) Origins() []string {
	parts := strings.Split(e.ALLOWED_ORIGINS, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func intOrDefault(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
