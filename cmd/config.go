package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Storage backends.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort      string
	Storage       string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	StatsSchedule string
	SwaggerUI     bool
}

var defaultConfig = Config{
	HTTPPort:      "8080",
	Storage:       StoragePostgres,
	DBHost:        "localhost",
	DBPort:        "5432",
	DBUser:        "postgres",
	DBName:        "freight",
	DBSslMode:     "disable",
	StatsSchedule: "0 * * * * *",
	SwaggerUI:     true,
}

var errInvalidConfig = errors.New("invalid config")

// LoadConfig reads configuration in order: .env (if present), environment,
// command-line flags in args.
func LoadConfig(args []string) (Config, error) {
	_ = godotenv.Load(".env")

	cfg := defaultConfig
	fromEnv(&cfg.HTTPPort, "HTTP_PORT")
	fromEnv(&cfg.Storage, "STORAGE")
	fromEnv(&cfg.DBHost, "DB_HOST")
	fromEnv(&cfg.DBPort, "DB_PORT")
	fromEnv(&cfg.DBUser, "DB_USER")
	fromEnv(&cfg.DBPassword, "DB_PASSWORD")
	fromEnv(&cfg.DBName, "DB_NAME")
	fromEnv(&cfg.DBSslMode, "DB_SSLMODE")
	fromEnv(&cfg.StatsSchedule, "STATS_SCHEDULE")
	if v, ok := os.LookupEnv("SWAGGER_UI"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: SWAGGER_UI: %w", errInvalidConfig, err)
		}
		cfg.SwaggerUI = enabled
	}

	flags := pflag.NewFlagSet("freight", pflag.ContinueOnError)
	flags.StringVarP(&cfg.HTTPPort, "port", "p", cfg.HTTPPort, "port to listen on")
	flags.StringVar(&cfg.Storage, "storage", cfg.Storage, "storage backend: postgres or memory")
	flags.StringVar(&cfg.DBHost, "db-host", cfg.DBHost, "database host")
	flags.StringVar(&cfg.DBPort, "db-port", cfg.DBPort, "database port")
	flags.StringVar(&cfg.DBName, "db-name", cfg.DBName, "database name")
	flags.StringVar(&cfg.StatsSchedule, "stats-schedule", cfg.StatsSchedule, "cron spec (with seconds) of the marketplace stats job")
	flags.BoolVar(&cfg.SwaggerUI, "swagger-ui", cfg.SwaggerUI, "serve the swagger UI under /swagger/")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	port, err := strconv.Atoi(c.HTTPPort)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("%w: port %q", errInvalidConfig, c.HTTPPort)
	}
	switch c.Storage {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("%w: storage %q", errInvalidConfig, c.Storage)
	}
	if c.StatsSchedule == "" {
		return fmt.Errorf("%w: empty stats schedule", errInvalidConfig)
	}
	return nil
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func fromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
