package infra

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config はプロセス起動時に一度だけ組み立てられ、各コンポーネントへ渡される
type Config struct {
	Env string `env:"ENV" envDefault:"dev"`

	HTTPPort    int    `env:"HTTP_PORT" envDefault:"3000"`
	UseSSL      bool   `env:"USE_SSL" envDefault:"false"`
	HTTPSPort   int    `env:"HTTPS_PORT" envDefault:"3443"`
	SSLKeyFile  string `env:"SSL_KEY_FILE"`
	SSLCertFile string `env:"SSL_CERT_FILE"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// JWT_TTL は秒単位
	JWTSecret  string `env:"JWT_SECRET"`
	JWTTTL     int    `env:"JWT_TTL"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10"`

	// DB_NAME が設定されている場合は PostgreSQL、それ以外は SQLite
	DBName      string `env:"DB_NAME"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:":memory:"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	DBPrefill            bool   `env:"DB_PREFILL" envDefault:"false"`
	PrefillAdminEmail    string `env:"PREFILL_ADMIN_EMAIL" envDefault:"admin@shoplist.local"`
	PrefillAdminName     string `env:"PREFILL_ADMIN_NAME" envDefault:"admin"`
	PrefillAdminPassword string `env:"PREFILL_ADMIN_PASSWORD"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS"`
}

// LoadConfig reads .env when present and parses the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found; using environment variables")
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Validate reports settings without which the service cannot issue tokens.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET not set")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL not set")
	}
	if c.UseSSL && (c.SSLKeyFile == "" || c.SSLCertFile == "") {
		return fmt.Errorf("USE_SSL requires SSL_KEY_FILE and SSL_CERT_FILE")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTTTL) * time.Second
}

func (c *Config) UsesPostgres() bool {
	return c.DBName != ""
}

func (c *Config) GetCORSAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	origins := strings.Split(c.CORSAllowedOrigins, ",")
	result := make([]string, 0, len(origins))
	for _, origin := range origins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
