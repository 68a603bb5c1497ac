package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Port     string
	LogLevel string

	DB        DBConfig
	Redis     RedisConfig
	AWS       AWSConfig
	Auth      AuthConfig
	OpenAI    OpenAIConfig
	Holidays  HolidaysConfig
	Vacations VacationsConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN builds the lib/pq connection string
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a Redis address was configured
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

type AWSConfig struct {
	Region string
	Bucket string
	Prefix string
}

// Enabled reports whether contract files should go to S3
func (c AWSConfig) Enabled() bool { return c.Bucket != "" }

type AuthConfig struct {
	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type HolidaysConfig struct {
	URL      string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type VacationsConfig struct {
	AllowOverlap bool
}

const insecureJWTSecret = "super-secret-key-please-change-me-in-production"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")

	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_pass", "")
	v.SetDefault("db_name", "laboral")
	v.SetDefault("db_sslmode", "disable")

	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_pass", "")
	v.SetDefault("redis_db", 0)

	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("aws_bucket", "")
	v.SetDefault("aws_prefix", "uploads")

	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_ttl", "5h")
	v.SetDefault("bcrypt_cost", 10)

	v.SetDefault("openai_api_key", "")
	v.SetDefault("openai_model", "gpt-3.5-turbo")

	v.SetDefault("holidays_url", "https://www.feriadosapp.com/api/holidays.json")
	v.SetDefault("holidays_timeout", "10s")
	v.SetDefault("holidays_cache_ttl", "24h")

	v.SetDefault("vacation_allow_overlap", false)
}

// Load reads .env files (missing files are ignored) and then the environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:     v.GetString("port"),
		LogLevel: v.GetString("log_level"),
		DB: DBConfig{
			Host:     v.GetString("db_host"),
			Port:     v.GetString("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_pass"),
			Name:     v.GetString("db_name"),
			SSLMode:  v.GetString("db_sslmode"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis_addr"),
			Password: v.GetString("redis_pass"),
			DB:       v.GetInt("redis_db"),
		},
		AWS: AWSConfig{
			Region: v.GetString("aws_region"),
			Bucket: v.GetString("aws_bucket"),
			Prefix: v.GetString("aws_prefix"),
		},
		Auth: AuthConfig{
			JWTSecret:  v.GetString("jwt_secret"),
			JWTTTL:     v.GetDuration("jwt_ttl"),
			BcryptCost: v.GetInt("bcrypt_cost"),
		},
		OpenAI: OpenAIConfig{
			APIKey: v.GetString("openai_api_key"),
			Model:  v.GetString("openai_model"),
		},
		Holidays: HolidaysConfig{
			URL:      v.GetString("holidays_url"),
			Timeout:  v.GetDuration("holidays_timeout"),
			CacheTTL: v.GetDuration("holidays_cache_ttl"),
		},
		Vacations: VacationsConfig{
			AllowOverlap: v.GetBool("vacation_allow_overlap"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.Auth.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be a positive duration")
	}
	if c.Holidays.Timeout <= 0 {
		return errors.New("HOLIDAYS_TIMEOUT must be a positive duration")
	}
	if c.Holidays.URL == "" {
		return errors.New("HOLIDAYS_URL is required")
	}
	return nil
}

// JWTSecretOrDefault returns the configured secret and whether it was the insecure fallback
func (c AuthConfig) JWTSecretOrDefault() (string, bool) {
	if c.JWTSecret == "" {
		return insecureJWTSecret, true
	}
	return c.JWTSecret, false
}
