package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultConfirmationTTL = 5 * time.Minute

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTUserSecret string `env:"JWT_SECRET"`
	// RedisURL необязателен. Без него маркеры занятости хранятся в памяти процесса.
	RedisURL        string        `env:"REDIS_URL"`
	ConfirmationTTL time.Duration `env:"CONFIRMATION_TTL"`
}

// LoadConfig собирает конфигурацию из флагов и окружения, окружение имеет приоритет.
// Переменные из файла .env подхватываются, если файл есть.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", err.Error())
	}
	return load(os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func load(args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(args, &flagsConfig); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTUserSecret == "" {
		return nil, errors.New("jwt secret is not set")
	}
	if conf.ConfirmationTTL <= 0 {
		return nil, fmt.Errorf("confirmation ttl must be positive, got %s", conf.ConfirmationTTL)
	}
	return conf, nil
}

func loadFlags(args []string, flagConfig *Config) error {
	flags := flag.NewFlagSet("cashreview", flag.ContinueOnError)
	flags.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flags.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flags.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flags.StringVar(&flagConfig.JWTUserSecret, "j", "", "JWT signing secret")
	flags.StringVar(&flagConfig.RedisURL, "r", "", "Redis address or URL for busy markers")
	flags.DurationVar(&flagConfig.ConfirmationTTL, "t", defaultConfirmationTTL, "Decision confirmation lifetime")

	return flags.Parse(args) //nolint:wrapcheck
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	ttl := envConfig.ConfirmationTTL
	if ttl == 0 {
		ttl = flagsConfig.ConfirmationTTL
	}
	return &Config{
		RunAddress:      defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:     defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:   defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTUserSecret:   defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		RedisURL:        defaultIfBlank(envConfig.RedisURL, flagsConfig.RedisURL),
		ConfirmationTTL: ttl,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
