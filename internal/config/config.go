package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the whole application configuration.
// It is populated from environment variables (and an optional .env file
// loaded by cmd/*).
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	MinIO    MinIOConfig
	Menu     MenuConfig
	Cart     CartConfig
	Order    OrderConfig
	Worker   WorkerConfig
	Branches []BranchConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	AdminKey    string // guards /admin routes; empty leaves them open
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// =====================================================
// MENU / CART / ORDER
// =====================================================

type MenuConfig struct {
	Source          string // file | minio
	Path            string // local JSON document (Source=file)
	ObjectKey       string // object key inside MinIO.Bucket (Source=minio)
	DefaultCurrency string
}

type CartConfig struct {
	Storage            string // memory | redis | postgres
	TTL                time.Duration
	LegacyKey          string // format with the session id, empty to disable
	ClearAfterCheckout time.Duration
	MaxQuantity        int
}

type OrderConfig struct {
	Currency        string
	Decimals        int
	DefaultLanguage string // ar | en
	NumberPrefix    string
}

type WorkerConfig struct {
	Concurrency int
	PurgeCron   string // cart:purge_expired schedule, postgres storage only
	HealthPort  string
}

type BranchConfig struct {
	ID       string
	NameAR   string
	NameEN   string
	Phone    string
	WhatsApp string
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Kahramana API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			AdminKey:    getEnv("ADMIN_API_KEY", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "kahramana"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 10),
			MinConns: getEnvInt("DB_MIN_CONNS", 2),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "kahramana"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Menu: MenuConfig{
			Source:          getEnv("MENU_SOURCE", "file"),
			Path:            getEnv("MENU_PATH", "data/menu.json"),
			ObjectKey:       getEnv("MENU_OBJECT_KEY", "menu/menu.json"),
			DefaultCurrency: getEnv("MENU_DEFAULT_CURRENCY", "BHD"),
		},
		Cart: CartConfig{
			Storage:            getEnv("CART_STORAGE", "redis"),
			TTL:                getEnvDuration("CART_TTL", 30*24*time.Hour),
			LegacyKey:          getEnv("CART_LEGACY_KEY", ""),
			ClearAfterCheckout: getEnvDuration("CART_CLEAR_AFTER_CHECKOUT", 0),
			MaxQuantity:        getEnvInt("CART_MAX_QUANTITY", 99),
		},
		Order: OrderConfig{
			Currency:        getEnv("ORDER_CURRENCY", "BHD"),
			Decimals:        getEnvInt("ORDER_DECIMALS", 3),
			DefaultLanguage: getEnv("ORDER_DEFAULT_LANGUAGE", "ar"),
			NumberPrefix:    getEnv("ORDER_NUMBER_PREFIX", "ORD"),
		},
		Worker: WorkerConfig{
			Concurrency: getEnvInt("WORKER_CONCURRENCY", 10),
			PurgeCron:   getEnv("WORKER_PURGE_CRON", "@hourly"),
			HealthPort:  getEnv("WORKER_HEALTH_PORT", "9999"),
		},
		Branches: []BranchConfig{
			{
				ID:       "riffa",
				NameAR:   getEnv("BRANCH_RIFFA_NAME_AR", "فرع الرفاع (الحجيات)"),
				NameEN:   getEnv("BRANCH_RIFFA_NAME_EN", "Riffa Branch (Hajiyat)"),
				Phone:    getEnv("BRANCH_RIFFA_PHONE", "17131413"),
				WhatsApp: getEnv("BRANCH_RIFFA_WHATSAPP", "97317131413"),
			},
			{
				ID:       "qalali",
				NameAR:   getEnv("BRANCH_QALALI_NAME_AR", "فرع قلالي (المحرق)"),
				NameEN:   getEnv("BRANCH_QALALI_NAME_EN", "Qalali Branch (Muharraq)"),
				Phone:    getEnv("BRANCH_QALALI_PHONE", "17131213"),
				WhatsApp: getEnv("BRANCH_QALALI_WHATSAPP", "97317131213"),
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail late at runtime
func (c *Config) Validate() error {
	switch c.Cart.Storage {
	case "memory", "redis", "postgres":
	default:
		return fmt.Errorf("CART_STORAGE must be one of memory, redis, postgres (got %q)", c.Cart.Storage)
	}

	// memory carts live in one process; the worker cannot reach them
	if c.Cart.Storage == "memory" {
		if c.Cart.ClearAfterCheckout > 0 {
			return fmt.Errorf("CART_CLEAR_AFTER_CHECKOUT needs redis or postgres cart storage")
		}
		if c.App.Environment == "production" {
			return fmt.Errorf("CART_STORAGE=memory is not allowed in production")
		}
	}

	switch c.Menu.Source {
	case "file", "minio":
	default:
		return fmt.Errorf("MENU_SOURCE must be file or minio (got %q)", c.Menu.Source)
	}

	if c.Order.Decimals < 0 || c.Order.Decimals > 6 {
		return fmt.Errorf("ORDER_DECIMALS must be between 0 and 6")
	}

	lang := strings.ToLower(c.Order.DefaultLanguage)
	if lang != "ar" && lang != "en" {
		return fmt.Errorf("ORDER_DEFAULT_LANGUAGE must be ar or en")
	}

	if c.Cart.MaxQuantity < 1 {
		return fmt.Errorf("CART_MAX_QUANTITY must be >= 1")
	}

	if c.App.Environment == "production" && c.App.AdminKey == "" {
		return fmt.Errorf("ADMIN_API_KEY must be set in production")
	}

	if c.Worker.Concurrency < 1 {
		return fmt.Errorf("WORKER_CONCURRENCY must be >= 1")
	}

	if c.App.Environment == "production" && c.Cart.Storage == "postgres" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD must be set in production")
	}

	return nil
}

// Branch returns the configured branch with the given id
func (c *Config) Branch(id string) (BranchConfig, bool) {
	for _, b := range c.Branches {
		if b.ID == id {
			return b, true
		}
	}
	return BranchConfig{}, false
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
