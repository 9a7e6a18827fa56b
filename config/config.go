package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Port        string
	BindAddress string

	// DBDriver is "sqlite" (default, file-backed) or "postgres".
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisHost  string
	RedisPort  string
	AttemptTTL time.Duration

	JWTSecret        string
	TokenExpiryHours int

	AdminName     string
	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		BindAddress:      getEnv("BIND_ADDRESS", "localhost"),
		DBDriver:         getEnv("DB_DRIVER", "sqlite"),
		DBPath:           getEnv("DB_PATH", "quiz.db"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "quizapp"),
		DBPassword:       getEnv("DB_PASSWORD", "quizapp123"),
		DBName:           getEnv("DB_NAME", "quizapp"),
		RedisHost:        getEnv("REDIS_HOST", "localhost"),
		RedisPort:        getEnv("REDIS_PORT", "6379"),
		AttemptTTL:       time.Duration(getEnvInt("ATTEMPT_TTL_MINUTES", 120)) * time.Minute,
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		TokenExpiryHours: getEnvInt("TOKEN_EXPIRY_HOURS", 24),
		AdminName:        getEnv("ADMIN_NAME", "Admin"),
		AdminEmail:       getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func InitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	return client
}
