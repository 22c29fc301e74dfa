package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Limits    LimitsConfig
}

type AppConfig struct {
	Name      string
	Port      string
	Debug     bool
	LogPath   string
	APIPrefix string
}

type DatabaseConfig struct {
	Driver   string
	MongoURL string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
	Timeout  time.Duration
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// LimitsConfig caps list endpoints; there is no pagination beyond the cap.
type LimitsConfig struct {
	CatalogList int
	OrderList   int
}

// LoadConfig reads an optional .env file and then the process environment.
// Environment variables win over the file.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "rk-commerce")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("DB_DRIVER", DriverMongo)
	v.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	v.SetDefault("DB_NAME", "rk_commerce")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_TIMEOUT_SECONDS", 10)
	v.SetDefault("JWT_EXPIRY_MINUTES", 30)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	v.SetDefault("CATALOG_LIST_LIMIT", 1000)
	v.SetDefault("ORDER_LIST_LIMIT", 1000)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:      v.GetString("APP_NAME"),
			Port:      v.GetString("PORT"),
			Debug:     v.GetBool("DEBUG"),
			LogPath:   v.GetString("LOG_PATH"),
			APIPrefix: strings.TrimRight(v.GetString("API_PREFIX"), "/"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			MongoURL: v.GetString("MONGO_URL"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
			Timeout:  time.Duration(v.GetInt("DB_TIMEOUT_SECONDS")) * time.Second,
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Expiry: time.Duration(v.GetInt("JWT_EXPIRY_MINUTES")) * time.Minute,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   time.Duration(v.GetInt("RATE_LIMIT_WINDOW_SECONDS")) * time.Second,
		},
		Limits: LimitsConfig{
			CatalogList: v.GetInt("CATALOG_LIST_LIMIT"),
			OrderList:   v.GetInt("ORDER_LIST_LIMIT"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWT.Expiry <= 0 {
		return errors.New("JWT_EXPIRY_MINUTES must be positive")
	}
	if c.Database.Name == "" {
		return errors.New("DB_NAME is required")
	}
	if c.Database.Timeout <= 0 {
		return errors.New("DB_TIMEOUT_SECONDS must be positive")
	}

	switch c.Database.Driver {
	case DriverMongo:
		if c.Database.MongoURL == "" {
			return errors.New("MONGO_URL is required for the mongo driver")
		}
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.User == "" {
			return errors.New("DB_HOST and DB_USER are required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.Limits.CatalogList < 1 || c.Limits.OrderList < 1 {
		return errors.New("list limits must be at least 1")
	}

	return nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
