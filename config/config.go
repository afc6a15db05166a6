package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port     string `yaml:"port"`
	DBDriver string `yaml:"db_driver"` // sqlite|postgres|mongo
	DBPath   string `yaml:"db_path"`

	DatabaseURL   string `yaml:"database_url"`
	MongoURI      string `yaml:"mongodb_uri"`
	MongoDatabase string `yaml:"mongodb_database"`

	JWTSecret    string        `yaml:"jwt_secret"`
	JWTTTL       time.Duration `yaml:"jwt_ttl"`
	AuthRequired bool          `yaml:"auth_required"`
	CORSOrigin   string        `yaml:"cors_origin"`
	RateLimit    float64       `yaml:"rate_limit"` // req/s per client, 0 = off

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // console|json

	IDMaxAttempts int `yaml:"id_max_attempts"`
}

func defaults() AppConfig {
	return AppConfig{
		Port:          "8080",
		DBDriver:      "sqlite",
		DBPath:        "farmtrack.db",
		MongoDatabase: "farmtrack",
		JWTTTL:        24 * time.Hour,
		CORSOrigin:    "http://localhost:5173",
		LogLevel:      "info",
		LogFormat:     "console",
		IDMaxAttempts: 50,
	}
}

// Load resolves configuration from defaults, then the optional YAML file
// named by CONFIG_FILE, then environment variables (.env included).
func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadYAML(path, &cfg); err != nil {
			log.Printf("[cfg] config file %s: %v", path, err)
		}
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg.Port = get("PORT", cfg.Port)
	cfg.DBDriver = strings.ToLower(get("DB_DRIVER", cfg.DBDriver))
	cfg.DBPath = get("DB_PATH", cfg.DBPath)
	cfg.DatabaseURL = get("DATABASE_URL", cfg.DatabaseURL)
	cfg.MongoURI = get("MONGODB_URI", cfg.MongoURI)
	cfg.MongoDatabase = get("MONGODB_DATABASE", cfg.MongoDatabase)
	cfg.JWTSecret = get("JWT_SECRET", cfg.JWTSecret)
	cfg.CORSOrigin = get("CORS_ORIGIN", cfg.CORSOrigin)
	cfg.LogLevel = get("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = get("LOG_FORMAT", cfg.LogFormat)

	if v := os.Getenv("AUTH_REQUIRED"); v != "" {
		cfg.AuthRequired = v == "true" || v == "1"
	}
	if v := os.Getenv("JWT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.JWTTTL = d
		} else {
			log.Printf("[cfg] bad JWT_TTL %q: %v", v, err)
		}
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimit = f
		}
	}
	if v := os.Getenv("ID_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.IDMaxAttempts = n
		}
	}
	return cfg
}

func loadYAML(path string, cfg *AppConfig) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, cfg)
}
