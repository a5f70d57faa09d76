package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DB   DBEnv
	JWT  JWTEnv
	CORS CORSEnv
}

// DBEnv holds MySQL connection settings.
type DBEnv struct {
	User         string
	Password     string
	Host         string
	Port         string
	Name         string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
	AutoMigrate  bool
}

// DefaultJWTSecret is only fit for local development.
const DefaultJWTSecret = "change-me-in-production"

var ErrDefaultJWTSecret = errors.New("JWT_SECRET must be set when GIN_MODE=release")

type JWTEnv struct {
	Secret string
	TTL    time.Duration
}

type CORSEnv struct {
	AllowedOrigins []string
}

// LoadEnv reads .env (when present) and the process environment.
func LoadEnv() Env {
	// .env is optional; real deployments inject variables directly.
	if err := godotenv.Load(".env"); err != nil {
		_ = godotenv.Load("../.env")
	}

	return Env{
		AppAddr: getEnv("APP_ADDR", ":8080"),
		GinMode: getEnv("GIN_MODE", ""),
		DB: DBEnv{
			User:         getEnv("DB_USER", "root"),
			Password:     getEnv("DB_PASSWORD", ""),
			Host:         getEnv("DB_HOST", "127.0.0.1"),
			Port:         getEnv("DB_PORT", "3306"),
			Name:         getEnv("DB_NAME", "trip_planner"),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 10*time.Minute),
			AutoMigrate:  getBoolEnv("DB_AUTO_MIGRATE", true),
		},
		JWT: JWTEnv{
			Secret: getEnv("JWT_SECRET", DefaultJWTSecret),
			TTL:    getDurationEnv("JWT_TTL", 24*time.Hour),
		},
		CORS: CORSEnv{
			AllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:4200"}),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getListEnv(key string, fallback []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// UsesDefaultSecret reports whether tokens would be signed with the
// well-known development secret.
func (j JWTEnv) UsesDefaultSecret() bool {
	return j.Secret == DefaultJWTSecret
}

// Validate rejects settings that are unsafe to serve with. Release mode
// requires a real JWT secret since role claims gate admin routes.
func (e Env) Validate() error {
	if e.JWT.UsesDefaultSecret() && strings.EqualFold(e.GinMode, "release") {
		return ErrDefaultJWTSecret
	}
	return nil
}
