package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string
	LogLevel string
	LogMode  string
	Seed     bool

	// Default export files loaded at startup
	SleepFiles []string
	// Optional YAML file with dashboard presets
	DashboardConfig string

	// OpenAI configuration
	OpenAIAPIKey        string
	OpenAIInsightsModel string

	// Trace exporter: otlp, stdout or none
	OtelExporter string

	// Langfuse configuration
	LangfuseBaseURL   string
	LangfusePublicKey string
	LangfuseSecretKey string
	LangfuseEnv       string
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Addr:     getEnv("ADDR", ":8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogMode:  getEnv("LOG_MODE", "development"),
		Seed:     getEnv("SEED", "false") == "true",

		SleepFiles:      splitList(getEnv("SLEEP_FILES", "")),
		DashboardConfig: getEnv("DASHBOARD_CONFIG", ""),

		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIInsightsModel: getEnv("OPENAI_INSIGHTS_MODEL", "gpt-4o-mini"),

		OtelExporter: strings.ToLower(getEnv("OTEL_EXPORTER", "otlp")),

		LangfuseBaseURL:   getEnv("LANGFUSE_BASE_URL", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseEnv:       getEnv("LANGFUSE_ENV", "development"),
	}
}

// LangfuseConfigured reports whether traces can be shipped to Langfuse.
func (c *Config) LangfuseConfigured() bool {
	return c.LangfuseBaseURL != "" && c.LangfusePublicKey != "" && c.LangfuseSecretKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
