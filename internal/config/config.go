package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `env:"ENV" env-required:"true"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Database   Database
	Limiter    Limiter
	Redis      Redis
	SMS        SMSConfig
	OTPRate    OTPRate
	CORS       CORS
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
}

type Database struct {
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER" env-required:"true"`
	DBName             string        `env:"DB_NAME" env-required:"true"`
	User               string        `env:"DB_USER" env-required:"true"`
	Password           string        `env:"DB_PASSWORD" env-required:"true"`
	TimeZone           string        `env:"DB_TIMEZONE" env-default:"Asia/Bangkok"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"40"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"40"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

// Redis holds the OTP throttle store settings. An empty address disables
// the per-phone throttle entirely.
type Redis struct {
	Address  string `env:"REDIS_ADDR" env-default:"" env-description:"redis host:port, empty disables the otp request throttle"`
	Password string `env:"REDIS_PASSWORD" env-default:""`
	PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"70"`
}

type SMSConfig struct {
	APIKey    string        `env:"SMS_API_KEY" env-required:"true"`
	APISecret string        `env:"SMS_API_SECRET" env-required:"true"`
	BaseURL   string        `env:"SMS_BASE_URL" env-default:"https://otp.thaibulksms.com"`
	Timeout   time.Duration `env:"SMS_TIMEOUT" env-default:"30s"`
}

type OTPRate struct {
	Cooldown    time.Duration `env:"OTP_RATE_COOLDOWN" env-default:"60s"`
	Window      time.Duration `env:"OTP_RATE_WINDOW" env-default:"10m"`
	MaxInWindow int           `env:"OTP_RATE_MAX" env-default:"5"`
}

type CORS struct {
	Origins []string `env:"CORS_ORIGINS" env-default:"http://localhost:3000" env-separator:","`
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return &cfg
}
