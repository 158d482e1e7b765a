package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel   string `env:"LOG_LEVEL" env-default:"info"`
	ServerPort int    `env:"SERVER_PORT" env-default:"8080"`

	Storage Storage
	Device  Device
	Kafka   Kafka
	ES      ES
	EmailJS EmailJS

	// AdminToken guards the access-key registry routes; empty disables them.
	AdminToken string `env:"ADMIN_TOKEN"`

	SimulatedLatency   time.Duration `env:"SIMULATED_LATENCY" env-default:"1500ms"`
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" env-default:"30m"`
}

type Storage struct {
	Driver        string `env:"STORAGE_DRIVER" env-default:"sqlite"`
	DatabaseURL   string `env:"DATABASE_URL" env-default:"rockstar.db"`
	RedisAddr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisUser     string `env:"REDIS_USER"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`
}

type Device struct {
	Secret       string        `env:"DEVICE_SECRET"`
	TTL          time.Duration `env:"DEVICE_TTL" env-default:"8760h"`
	CookieSecure bool          `env:"DEVICE_COOKIE_SECURE" env-default:"true"`
}

type Kafka struct {
	Brokers []string `env:"KAFKA_BROKERS" env-separator:","`
}

type ES struct {
	URL      string `env:"ES_URL"`
	User     string `env:"ES_USER"`
	Password string `env:"ES_PASSWORD"`
	Index    string `env:"ES_INDEX" env-default:"rockstar_products"`
}

type EmailJS struct {
	Endpoint   string  `env:"EMAILJS_ENDPOINT" env-default:"https://api.emailjs.com/api/v1.0/email/send"`
	ServiceID  string  `env:"EMAILJS_SERVICE_ID" env-default:"service_5ruo6wh"`
	TemplateID string  `env:"EMAILJS_TEMPLATE_ID" env-default:"template_a9f4xqi"`
	PublicKey  string  `env:"EMAILJS_PUBLIC_KEY"`
	RatePerSec float64 `env:"EMAILJS_RATE" env-default:"1"`
	Burst      int     `env:"EMAILJS_BURST" env-default:"3"`
}

var ErrMissingEnv = errors.New("missing required env")

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("notice: .env not loaded: %v", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	cfg.Kafka.Brokers = CSV(strings.Join(cfg.Kafka.Brokers, ","))
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := NonEmpty(c.Device.Secret, "DEVICE_SECRET"); err != nil {
		return err
	}
	switch c.Storage.Driver {
	case "memory", "sqlite", "postgres":
	case "redis":
		if err := NonEmpty(c.Storage.RedisAddr, "REDIS_ADDR"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Storage.Driver == "postgres" {
		if err := NonEmpty(c.Storage.DatabaseURL, "DATABASE_URL"); err != nil {
			return err
		}
	}
	return nil
}

// MustLoad is Load for main: any error is fatal.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	return cfg
}

func NonEmpty(value, envName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w %s", ErrMissingEnv, envName)
	}
	return nil
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
