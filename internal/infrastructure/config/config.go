package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTL bounds session tokens; OTPTTL bounds verification codes.
	TokenTTL       time.Duration `env:"TOKEN_TTL,        default=720h"`
	OTPTTL         time.Duration `env:"OTP_TTL,          default=5m"`
	MinPasswordLen int           `env:"MIN_PASSWORD_LEN, default=6"`

	Admin AdminConfig
	SMTP  SMTPConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// AdminConfig is the out-of-band operator login. The password is supplied
// as a bcrypt hash; an empty email disables the operator account.
type AdminConfig struct {
	Email        string `env:"ADMIN_EMAIL"`
	PasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
	From     string `env:"SMTP_FROM"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=corphunt"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
