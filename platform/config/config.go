// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// DiscoveryConfig provides settings for the contact discovery provider.
type DiscoveryConfig interface {
	GetHunterAPIKey() string
	GetHunterBaseURL() string
	GetDiscoveryLimit() int
	IsDiscoveryEnabled() bool
}

// ResearchConfig provides settings for the company research provider.
type ResearchConfig interface {
	GetPerplexityAPIKey() string
	GetPerplexityBaseURL() string
	GetResearchModel() string
	IsResearchEnabled() bool
}

// SchedulerConfig provides settings for the asynq scheduler.
type SchedulerConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
	GetRescanInterval() time.Duration
}

// ProspectsConfig provides settings for the prospect evaluation workflow.
type ProspectsConfig interface {
	GetSearchConcurrency() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env               string
	HTTPAddr          string
	DatabaseURL       string
	CORSAllowAll      bool
	CORSOrigins       []string
	CORSAllowCreds    bool
	HunterAPIKey      string
	HunterBaseURL     string
	DiscoveryLimit    int
	PerplexityAPIKey  string
	PerplexityBaseURL string
	ResearchModel     string
	RedisURL          string
	RedisTLSInsecure  bool
	AsynqQueueName    string
	AsynqConcurrency  int
	RescanInterval    time.Duration
	SearchConcurrency int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// DiscoveryConfig implementation
func (c *Config) GetHunterAPIKey() string  { return c.HunterAPIKey }
func (c *Config) GetHunterBaseURL() string { return c.HunterBaseURL }
func (c *Config) GetDiscoveryLimit() int   { return c.DiscoveryLimit }
func (c *Config) IsDiscoveryEnabled() bool { return c.HunterAPIKey != "" }

// ResearchConfig implementation
func (c *Config) GetPerplexityAPIKey() string  { return c.PerplexityAPIKey }
func (c *Config) GetPerplexityBaseURL() string { return c.PerplexityBaseURL }
func (c *Config) GetResearchModel() string     { return c.ResearchModel }
func (c *Config) IsResearchEnabled() bool      { return c.PerplexityAPIKey != "" }

// SchedulerConfig implementation
func (c *Config) GetRedisURL() string                { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool          { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string          { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int           { return c.AsynqConcurrency }
func (c *Config) GetRescanInterval() time.Duration   { return c.RescanInterval }

// ProspectsConfig implementation
func (c *Config) GetSearchConcurrency() int { return c.SearchConcurrency }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		CORSAllowAll:      corsAllowAll,
		CORSOrigins:       corsOrigins,
		CORSAllowCreds:    strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		HunterAPIKey:      getEnv("HUNTER_API_KEY", ""),
		HunterBaseURL:     getEnv("HUNTER_BASE_URL", "https://api.hunter.io/v2"),
		DiscoveryLimit:    mustInt(getEnv("DISCOVERY_LIMIT", "25")),
		PerplexityAPIKey:  getEnv("PERPLEXITY_API_KEY", ""),
		PerplexityBaseURL: getEnv("PERPLEXITY_BASE_URL", "https://api.perplexity.ai"),
		ResearchModel:     getEnv("RESEARCH_MODEL", "sonar-pro"),
		RedisURL:          getEnv("REDIS_URL", ""),
		RedisTLSInsecure:  strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:    getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency:  mustInt(getEnv("ASYNQ_CONCURRENCY", "10")),
		RescanInterval:    mustDuration(getEnv("RESCAN_INTERVAL", "168h")),
		SearchConcurrency: mustInt(getEnv("SEARCH_CONCURRENCY", "4")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.DiscoveryLimit < 1 {
		return nil, fmt.Errorf("DISCOVERY_LIMIT must be positive")
	}
	if cfg.SearchConcurrency < 1 {
		return nil, fmt.Errorf("SEARCH_CONCURRENCY must be positive")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
