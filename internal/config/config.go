package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime settings of the site.
type Config struct {
	AppPort           string        `mapstructure:"APP_PORT"`
	DatabaseDriver    string        `mapstructure:"DATABASE_DRIVER"`
	DatabaseDSN       string        `mapstructure:"DATABASE_DSN"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	TokenDuration     time.Duration `mapstructure:"TOKEN_DURATION"`
	SessionExpiration time.Duration `mapstructure:"SESSION_EXPIRATION"`
	CookieSecure      bool          `mapstructure:"COOKIE_SECURE"`
	RedisAddr         string        `mapstructure:"REDIS_ADDR"`
	RedisPassword     string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB           int           `mapstructure:"REDIS_DB"`
	RabbitMQURL       string        `mapstructure:"RABBITMQ_URL"`
	SeedSampleData    bool          `mapstructure:"SEED_SAMPLE_DATA"`
	AdminUsername     string        `mapstructure:"ADMIN_USERNAME"`
	AdminEmail        string        `mapstructure:"ADMIN_EMAIL"`
	AdminPassword     string        `mapstructure:"ADMIN_PASSWORD"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "travel.db")
	v.SetDefault("JWT_SECRET", "change-me-in-production")
	v.SetDefault("TOKEN_DURATION", 24*time.Hour)
	v.SetDefault("SESSION_EXPIRATION", 24*time.Hour)
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("SEED_SAMPLE_DATA", true)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_EMAIL", "admin@dreamtravels.com")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
}

// Load reads an optional .env file, then environment variables on top of the defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
