package common

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	Extract  ExtractConfig
	LLM      LLMConfig
	Worker   WorkerConfig
	Billing  BillingConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StorageConfig holds blob-storage configuration
type StorageConfig struct {
	RootDir     string
	MaxFileSize int64
}

// ExtractConfig holds text-extraction tool configuration
type ExtractConfig struct {
	PdfToText string
	Tesseract string
	Languages string
	Timeout   time.Duration
}

// LLMConfig holds completion-API configuration
type LLMConfig struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// WorkerConfig holds the async refinement pool configuration
type WorkerConfig struct {
	Concurrency int
	JobTimeout  time.Duration
	QueueDepth  int
}

// BillingConfig holds token pricing and balance-enforcement settings
type BillingConfig struct {
	// UnitPrices maps model name to price per 1000 tokens.
	UnitPrices       map[string]decimal.Decimal
	DefaultUnitPrice decimal.Decimal
	// MinBalance is the advisory sufficiency threshold for CheckBalance.
	MinBalance     decimal.Decimal
	EnforceBalance bool
	// SeedActors get SeedBalance credited when their account is first created.
	SeedActors  []string
	SeedBalance decimal.Decimal
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			RootDir:     getEnv("STORAGE_DIR", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 20<<20),
		},
		Extract: ExtractConfig{
			PdfToText: getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Tesseract: getEnv("TESSERACT_BIN", "tesseract"),
			Languages: getEnv("TESSERACT_LANGS", "eng+chi_sim"),
			Timeout:   getEnvAsDuration("EXTRACT_TIMEOUT", 60*time.Second),
		},
		LLM: LLMConfig{
			BaseURL:     getEnv("LLM_BASE_URL", "https://api.deepseek.com/v1"),
			Model:       getEnv("LLM_MODEL", "deepseek-chat"),
			APIKey:      getEnv("LLM_API_KEY", ""),
			Temperature: getEnvAsFloat32("LLM_TEMPERATURE", 0.1),
			MaxTokens:   getEnvAsInt("LLM_MAX_TOKENS", 4096),
			Timeout:     getEnvAsDuration("LLM_TIMEOUT", 90*time.Second),
		},
		Worker: WorkerConfig{
			Concurrency: getEnvAsInt("WORKER_CONCURRENCY", 6),
			JobTimeout:  getEnvAsDuration("WORKER_JOB_TIMEOUT", 5*time.Minute),
			QueueDepth:  getEnvAsInt("WORKER_QUEUE_DEPTH", 100),
		},
		Billing: BillingConfig{
			UnitPrices:       getEnvAsPriceMap("MODEL_UNIT_PRICES", map[string]decimal.Decimal{"deepseek-chat": decimal.RequireFromString("0.01")}),
			DefaultUnitPrice: getEnvAsDecimal("DEFAULT_UNIT_PRICE", decimal.RequireFromString("0.01")),
			MinBalance:       getEnvAsDecimal("MIN_BALANCE", decimal.RequireFromString("0.20")),
			EnforceBalance:   getEnvAsBool("BILLING_ENFORCE_BALANCE", false),
			SeedActors:       getEnvAsList("SEED_ACTORS"),
			SeedBalance:      getEnvAsDecimal("SEED_BALANCE", decimal.RequireFromString("10.00")),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsPriceMap parses "model=price,model=price" pairs.
func getEnvAsPriceMap(key string, defaultValue map[string]decimal.Decimal) map[string]decimal.Decimal {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	prices := make(map[string]decimal.Decimal)
	for _, pair := range strings.Split(value, ",") {
		name, raw, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		if d, err := decimal.NewFromString(strings.TrimSpace(raw)); err == nil {
			prices[strings.TrimSpace(name)] = d
		}
	}
	if len(prices) == 0 {
		return defaultValue
	}
	return prices
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "LLM_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Worker.Concurrency <= 0 {
		return NewAppError("CONFIG_ERROR", "WORKER_CONCURRENCY must be positive", ErrInvalidInput)
	}
	return nil
}
