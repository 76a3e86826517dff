package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"prod"`
	Port        string `env:"PORT" envDefault:"8080"`
	MetricsAddr string `env:"METRICS_ADDR"`
	DBDriver    string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBDSN       string `env:"DB_DSN" envDefault:"guesthouse.db"`
	SeedOnStart bool   `env:"SEED_ON_START" envDefault:"true"`
	DefaultLang string `env:"DEFAULT_LANG" envDefault:"nl"`
	LogFile     string `env:"LOG_FILE"`

	// CookieSecure should be true behind HTTPS.
	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"false"`

	Admin   AdminConfig   `envPrefix:"ADMIN_"`
	Session SessionConfig `envPrefix:"SESSION_"`
	Redis   RedisConfig   `envPrefix:"REDIS_"`
	Mail    MailConfig    `envPrefix:"MAIL_"`
	Media   MediaConfig   `envPrefix:"MEDIA_"`
}

// AdminConfig seeds the first admin account.
type AdminConfig struct {
	Email    string `env:"EMAIL" envDefault:"admin@guesthouse.test"`
	Name     string `env:"NAME" envDefault:"Admin"`
	Password string `env:"PASSWORD"`
}

type SessionConfig struct {
	Backend string        `env:"BACKEND" envDefault:"sql"` // sql | redis
	TTL     time.Duration `env:"TTL" envDefault:"12h"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

type MailConfig struct {
	Transport string        `env:"TRANSPORT" envDefault:"log"` // smtp | log
	Host      string        `env:"HOST" envDefault:"smtp.strato.com"`
	Port      int           `env:"PORT" envDefault:"465"`
	Username  string        `env:"USERNAME"`
	Password  string        `env:"PASSWORD"`
	From      string        `env:"FROM" envDefault:"info@fleursetabeilles.fr"`
	FromName  string        `env:"FROM_NAME" envDefault:"Fleurs & Abeilles"`
	To        string        `env:"TO" envDefault:"info@fleursetabeilles.fr"`
	PerMinute int           `env:"PER_MINUTE" envDefault:"10"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// MediaConfig selects the admin image gallery. Without an endpoint the static list is used.
type MediaConfig struct {
	Endpoint  string   `env:"ENDPOINT"`
	AccessKey string   `env:"ACCESS_KEY"`
	SecretKey string   `env:"SECRET_KEY"`
	Bucket    string   `env:"BUCKET" envDefault:"guesthouse"`
	Region    string   `env:"REGION" envDefault:"us-east-1"`
	UseSSL    bool     `env:"USE_SSL" envDefault:"true"`
	PublicURL string   `env:"PUBLIC_URL"`
	Images    []string `env:"IMAGES" envSeparator:","`
}

// Load reads an optional .env file and parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	var errs []error
	switch c.DBDriver {
	case "sqlite", "pgx":
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be sqlite or pgx, got %q", c.DBDriver))
	}
	switch c.Session.Backend {
	case "sql", "redis":
	default:
		errs = append(errs, fmt.Errorf("SESSION_BACKEND must be sql or redis, got %q", c.Session.Backend))
	}
	switch c.Mail.Transport {
	case "log":
	case "smtp":
		if c.Mail.Username == "" || c.Mail.Password == "" {
			errs = append(errs, errors.New("MAIL_USERNAME and MAIL_PASSWORD are required for smtp"))
		}
	default:
		errs = append(errs, fmt.Errorf("MAIL_TRANSPORT must be smtp or log, got %q", c.Mail.Transport))
	}
	if c.Media.Endpoint != "" && (c.Media.AccessKey == "" || c.Media.SecretKey == "") {
		errs = append(errs, errors.New("MEDIA_ACCESS_KEY and MEDIA_SECRET_KEY are required with MEDIA_ENDPOINT"))
	}
	return errors.Join(errs...)
}

func (c Config) IsDev() bool {
	e := strings.ToLower(c.AppEnv)
	return e == "dev" || e == "development"
}
