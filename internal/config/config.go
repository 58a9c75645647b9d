package config

import (
	"errors"
	"os"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	MySQLDSN    string
	JWTSecret   string
	SwaggerHost string
}

// ErrMissingJWTSecret is returned when JWT_SECRET is unset. Tokens must never
// be signed with a baked-in default, so this is fatal at startup.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Load builds Config from environment. All values except JWT_SECRET have
// development defaults.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "5000"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/cinema?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
