package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// AuthRateLimit is a ulule/limiter formatted rate, e.g. "5-M".
	AuthRateLimit string
	// APIRateLimit throttles the whole authenticated API per IP.
	APIRateLimit string

	// Forecast tuning. Zero values fall back to the engine defaults.
	ForecastWindowDays  int
	ForecastSafeBalance int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "finora-backend")
	viper.SetDefault("AUTH_RATE_LIMIT", "5-M")
	viper.SetDefault("API_RATE_LIMIT", "120-M")
	viper.SetDefault("FORECAST_WINDOW_DAYS", 30)
	viper.SetDefault("FORECAST_SAFE_BALANCE", 5_000_000)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")
	cfg.APIRateLimit = viper.GetString("API_RATE_LIMIT")

	cfg.ForecastWindowDays = viper.GetInt("FORECAST_WINDOW_DAYS")
	if cfg.ForecastWindowDays < 0 {
		log.Printf("Warning: FORECAST_WINDOW_DAYS is negative (%d). Falling back to the engine default.\n", cfg.ForecastWindowDays)
		cfg.ForecastWindowDays = 0
	}

	cfg.ForecastSafeBalance = viper.GetInt64("FORECAST_SAFE_BALANCE")
	if cfg.ForecastSafeBalance < 0 {
		log.Printf("Warning: FORECAST_SAFE_BALANCE is negative (%d). Falling back to the engine default.\n", cfg.ForecastSafeBalance)
		cfg.ForecastSafeBalance = 0
	}

	return cfg, nil
}
