package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a local .env file.
//
// It is composed of smaller structs that represent different concerns of the
// system: the HTTP server, the two upstream data providers (SIX exchange and
// the SNB statistics cube), and cache lifetimes.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	CORS_ORIGIN=http://localhost:5173
//	SIX_FQS_BASE_URL=https://www.six-group.com/fqs
//	SIX_SHELDON_BASE_URL=https://www.six-group.com/sheldon
//	SNB_BASE_URL=https://data.snb.ch/api/cube/rendeiduebm/data/json/en
type Config struct {
	Server ServerConfig // HTTP server configuration
	Six    SixConfig    // SIX exchange upstream settings
	SNB    SNBConfig    // SNB data cube upstream settings
	Cache  CacheConfig  // In-memory cache lifetimes
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port       string // TCP port the HTTP server listens on (e.g., "8080")
	CORSOrigin string // Origin allowed to call the API from a browser
}

// SixConfig defines how to reach the SIX exchange APIs.
//
// Fields:
//   - FQSBaseURL: base of the FQS query service (bond lists, market data).
//   - SheldonBaseURL: base of the Sheldon detail service (bond_details payloads).
//   - Timeout: per-request timeout for SIX calls.
type SixConfig struct {
	FQSBaseURL     string
	SheldonBaseURL string
	Timeout        time.Duration
}

// SNBConfig defines how to reach the SNB data cube serving the government
// yield curve.
type SNBConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CacheConfig holds TTLs for the in-memory caches in front of the upstreams.
type CacheConfig struct {
	SearchTTL time.Duration // bond list responses
	DetailTTL time.Duration // per-bond detail payloads
	CurveTTL  time.Duration // SNB curve snapshot
	VolumeTTL time.Duration // per-bond volume info
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read throughout the application
// instead of reloading environment variables in each package.
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from a .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables end up empty, validateConfig() terminates the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("CORS_ORIGIN", "http://localhost:5173")

	viper.SetDefault("SIX_FQS_BASE_URL", "https://www.six-group.com/fqs")
	viper.SetDefault("SIX_SHELDON_BASE_URL", "https://www.six-group.com/sheldon")
	viper.SetDefault("SIX_TIMEOUT_SECONDS", 15)

	viper.SetDefault("SNB_BASE_URL", "https://data.snb.ch/api/cube/rendeiduebm/data/json/en")
	viper.SetDefault("SNB_TIMEOUT_SECONDS", 20)

	viper.SetDefault("SEARCH_CACHE_TTL_SECONDS", 300)
	viper.SetDefault("DETAIL_CACHE_TTL_SECONDS", 600)
	viper.SetDefault("CURVE_CACHE_TTL_SECONDS", 24*60*60)
	viper.SetDefault("VOLUME_CACHE_TTL_SECONDS", 3600)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	seconds := func(key string) time.Duration {
		return time.Duration(viper.GetInt(key)) * time.Second
	}

	AppConfig = Config{
		Server: ServerConfig{
			Port:       viper.GetString("SERVER_PORT"),
			CORSOrigin: viper.GetString("CORS_ORIGIN"),
		},
		Six: SixConfig{
			FQSBaseURL:     viper.GetString("SIX_FQS_BASE_URL"),
			SheldonBaseURL: viper.GetString("SIX_SHELDON_BASE_URL"),
			Timeout:        seconds("SIX_TIMEOUT_SECONDS"),
		},
		SNB: SNBConfig{
			BaseURL: viper.GetString("SNB_BASE_URL"),
			Timeout: seconds("SNB_TIMEOUT_SECONDS"),
		},
		Cache: CacheConfig{
			SearchTTL: seconds("SEARCH_CACHE_TTL_SECONDS"),
			DetailTTL: seconds("DETAIL_CACHE_TTL_SECONDS"),
			CurveTTL:  seconds("CURVE_CACHE_TTL_SECONDS"),
			VolumeTTL: seconds("VOLUME_CACHE_TTL_SECONDS"),
		},
	}

	validateConfig()
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing. This avoids unexpected runtime failures
// due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Six.FQSBaseURL == "" {
		missing = append(missing, "SIX_FQS_BASE_URL")
	}
	if AppConfig.Six.SheldonBaseURL == "" {
		missing = append(missing, "SIX_SHELDON_BASE_URL")
	}
	if AppConfig.SNB.BaseURL == "" {
		missing = append(missing, "SNB_BASE_URL")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
