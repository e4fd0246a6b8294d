package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageMySQL  = "mysql"
)

// Config holds all configuration for our application
type Config struct {
	Port        string
	Origin      string
	Environment string
	LogLevel    string
	JWTSecret   string
	SessionTTL  time.Duration
	CatalogSeed int64
	Storage     StorageConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Delays      DelayConfig
}

// StorageConfig selects the persistence backend for client storage.
type StorageConfig struct {
	Driver string
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DelayConfig holds the simulated response latencies.
type DelayConfig struct {
	DoctorReplyBase time.Duration
	DoctorReplyMax  time.Duration
	DoctorPerChar   time.Duration
	AssistantReply  time.Duration
	AgentGreeting   time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load database configuration
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "telehealth"),
	}

	// Build DSN (Data Source Name) for MySQL connection
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	redisDB, err := getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	sessionTTLMinutes, err := getInt("SESSION_TTL_MINUTES", 120)
	if err != nil {
		return nil, err
	}

	seed, err := strconv.ParseInt(getEnv("CATALOG_SEED", "42"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_SEED: %w", err)
	}

	delays, err := loadDelays()
	if err != nil {
		return nil, err
	}

	driver := getEnv("STORAGE_DRIVER", StorageMemory)
	switch driver {
	case StorageMemory, StorageRedis, StorageMySQL:
	default:
		return nil, fmt.Errorf("invalid STORAGE_DRIVER: %q", driver)
	}

	// Return complete configuration
	return &Config{
		Port:        getEnv("PORT", "3001"),
		Origin:      getEnv("ORIGIN", "http://localhost:5173"),
		Environment: getEnv("NODE_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		JWTSecret:   getEnv("JWT_SECRET", "default_jwt_secret"),
		SessionTTL:  time.Duration(sessionTTLMinutes) * time.Minute,
		CatalogSeed: seed,
		Storage:     StorageConfig{Driver: driver},
		Database:    dbConfig,
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Delays: delays,
	}, nil
}

type delayEnv struct {
	env string
	def int
	dst *time.Duration
}

func loadDelays() (DelayConfig, error) {
	var d DelayConfig
	keys := []delayEnv{
		{"DOCTOR_REPLY_BASE_MS", 1000, &d.DoctorReplyBase},
		{"DOCTOR_REPLY_MAX_MS", 2000, &d.DoctorReplyMax},
		{"DOCTOR_REPLY_PER_CHAR_MS", 10, &d.DoctorPerChar},
		{"ASSISTANT_REPLY_MS", 1500, &d.AssistantReply},
		{"AGENT_GREETING_MS", 3000, &d.AgentGreeting},
	}
	for _, k := range keys {
		ms, err := getInt(k.env, k.def)
		if err != nil {
			return DelayConfig{}, err
		}
		*k.dst = time.Duration(ms) * time.Millisecond
	}
	return d, nil
}

// DoctorReplyDelay is the typing delay for a doctor reply to message:
// base + perChar*len, capped at max.
func (d DelayConfig) DoctorReplyDelay(message string) time.Duration {
	delay := d.DoctorReplyBase + time.Duration(len(message))*d.DoctorPerChar
	if delay > d.DoctorReplyMax {
		return d.DoctorReplyMax
	}
	return delay
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
