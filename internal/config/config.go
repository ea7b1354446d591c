package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries every setting the server needs. It is built once in main
// and passed down explicitly.
type Config struct {
	ServerAddr string
	GinMode    string

	DBDriver   string // "postgres" or "sqlite"
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string
	SQLitePath string

	LogFile  string
	LogLevel string

	CORSAllowedOrigins []string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_ADDR", "0.0.0.0:8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "bus_transport")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("SQLITE_PATH", "bus_transport.db")
	v.SetDefault("LOG_FILE", "./logs/app.log")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")

	cfg := &Config{
		ServerAddr: v.GetString("SERVER_ADDR"),
		GinMode:    v.GetString("GIN_MODE"),
		DBDriver:   strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSSLMode:  v.GetString("DB_SSLMODE"),
		DBTimezone: v.GetString("DB_TIMEZONE"),
		SQLitePath: v.GetString("SQLITE_PATH"),
		LogFile:    v.GetString("LOG_FILE"),
		LogLevel:   v.GetString("LOG_LEVEL"),

		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return &UnsupportedDriverError{Driver: c.DBDriver}
	}
	if c.ServerAddr == "" {
		return errEmptyAddr
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
