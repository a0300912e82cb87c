package config

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultJWTSecret = "your-very-strong-access-secret"

type Config struct {
	App struct {
		Env         string `env:"APP_ENV"      envDefault:"development"`
		Port        string `env:"PORT"         envDefault:"8088"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	}
	DB struct {
		Host     string `env:"DB_HOST"     envDefault:"localhost"`
		Port     string `env:"DB_PORT"     envDefault:"5432"`
		User     string `env:"DB_USER"     envDefault:"postgres"`
		Password string `env:"DB_PASSWORD" envDefault:"password"`
		Name     string `env:"DB_NAME"     envDefault:"livescore_db"`
		SSLMode  string `env:"DB_SSLMODE"  envDefault:"disable"`
		TimeZone string `env:"DB_TIMEZONE" envDefault:"Asia/Kolkata"`
	}
	Redis struct {
		Addr          string        `env:"REDIS_ADDR"` // empty disables the live cache and stream
		Password      string        `env:"REDIS_PASSWORD"`
		DB            int           `env:"REDIS_DB"            envDefault:"0"`
		Stream        string        `env:"LIVE_STREAM"         envDefault:"livescore:updates"`
		ConsumerGroup string        `env:"LIVE_CONSUMER_GROUP" envDefault:"livescore-ws"`
		ConsumerID    string        `env:"LIVE_CONSUMER_ID"`
		LiveTTL       time.Duration `env:"LIVE_TTL"            envDefault:"6h"`
		FinalTTL      time.Duration `env:"FINAL_TTL"           envDefault:"168h"`
	}
	JWT struct {
		AccessTokenSecret string `env:"JWT_ACCESS_TOKEN_SECRET" envDefault:"your-very-strong-access-secret"`
	}
	Scoring struct {
		DefaultMaxOvers   int  `env:"DEFAULT_MAX_OVERS"   envDefault:"20"`
		RequireNewBatsman bool `env:"REQUIRE_NEW_BATSMAN" envDefault:"true"`
		LocalFallback     bool `env:"LOCAL_FALLBACK"      envDefault:"true"`
	}
}

// RedisEnabled reports whether a redis address was configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Addr != ""
}

// Global DB instance, accessible after ConnectDB() is called via Initialize.
var DB *gorm.DB

// Global Redis client, nil when REDIS_ADDR is unset.
var Redis *redis.Client

var appConfig *Config
var once sync.Once

// ParseEnv fills target from environment variables using its env tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadConfig loads configuration from the environment (and .env when present) into the Config struct.
func LoadConfig() (*Config, error) {
	// It's okay if .env doesn't exist, especially in production where env vars are set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.JWT.AccessTokenSecret == defaultJWTSecret {
		log.Println("WARNING: Using default JWT secret. Please set JWT_ACCESS_TOKEN_SECRET for production.")
	}
	if cfg.DB.Password == "password" && cfg.App.Env == "production" {
		log.Println("WARNING: Using default DB password in production. Please set DB_PASSWORD environment variable.")
	}

	appConfig = cfg
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Scoring.DefaultMaxOvers < 1 {
		return fmt.Errorf("DEFAULT_MAX_OVERS must be at least 1, got %d", c.Scoring.DefaultMaxOvers)
	}
	if c.Redis.LiveTTL <= 0 || c.Redis.FinalTTL <= 0 {
		return fmt.Errorf("LIVE_TTL and FINAL_TTL must be positive")
	}
	if c.RedisEnabled() && c.Redis.Stream == "" {
		return fmt.Errorf("LIVE_STREAM must not be empty when REDIS_ADDR is set")
	}
	return nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DB.Host,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.Port,
		c.DB.SSLMode,
		c.DB.TimeZone,
	)
}

// ConnectDB establishes a connection to the database using the provided configuration.
// It sets the global DB variable.
func ConnectDB(dbCfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if dbCfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(postgres.Open(dbCfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	log.Println("Successfully connected to database!")
	return gormDB, nil
}

// ConnectRedis opens the redis client and pings it. Returns nil, nil when redis is disabled.
func ConnectRedis(ctx context.Context, cfg Config) (*redis.Client, error) {
	if !cfg.RedisEnabled() {
		log.Println("REDIS_ADDR not set, live cache and stream disabled")
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	Redis = client
	log.Printf("Successfully connected to redis at %s", cfg.Redis.Addr)
	return client, nil
}

// Initialize loads all configurations and connects to the database and redis.
// This should be called once at the start of the application.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}

		_, err = ConnectDB(*loadedCfg)
		if err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}

		_, err = ConnectRedis(context.Background(), *loadedCfg)
		if err != nil {
			loadErr = fmt.Errorf("failed to connect to redis during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
// It exits if the configuration has not been loaded yet.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}
