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

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

const (
	// payTimeoutMargin запас сверх времени опроса на токен согласия, создание транзакции и запись результата.
	payTimeoutMargin = 25 * time.Second
	maxPollBudget    = 5 * time.Minute
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	// Storage postgres или memory.
	Storage     string `env:"STORAGE"`
	WompiAPIURL string `env:"WOMPI_API_URL"`

	WompiPublicKey       string        `env:"WOMPI_PUBLIC_KEY"`
	WompiPrivateKey      string        `env:"WOMPI_PRIVATE_KEY"`
	WompiIntegritySecret string        `env:"WOMPI_INTEGRITY_SECRET"`
	WompiDefaultEmail    string        `env:"WOMPI_DEFAULT_EMAIL"    envDefault:"customer@test.com"`
	WompiPollAttempts    uint          `env:"WOMPI_POLL_ATTEMPTS"    envDefault:"10"`
	WompiPollInterval    time.Duration `env:"WOMPI_POLL_INTERVAL"    envDefault:"2s"`

	// BaseCharge и ShippingCost в центах COP.
	BaseCharge   int64 `env:"BASE_CHARGE"   envDefault:"5000"`
	ShippingCost int64 `env:"SHIPPING_COST" envDefault:"8000"`

	AdminJWTSecret string `env:"ADMIN_JWT_SECRET"`
	SeedCatalog    bool   `env:"SEED_CATALOG"     envDefault:"true"`
}

// LoadConfig собирает конфигурацию из .env (если есть), переменных окружения и флагов args.
// Переменные окружения приоритетнее флагов.
func LoadConfig(args []string) (*Config, error) {
	if dotenvErr := godotenv.Load(); dotenvErr != nil && !errors.Is(dotenvErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", dotenvErr.Error())
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := validate(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config, args []string) error {
	fl := flag.NewFlagSet("checkout", flag.ContinueOnError)

	fl.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fl.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fl.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fl.StringVar(&flagConfig.Storage, "s", StoragePostgres, "Storage backend: postgres or memory")
	fl.StringVar(&flagConfig.WompiAPIURL, "w", "https://sandbox.wompi.co/v1", "Wompi API base url")

	return fl.Parse(args) //nolint:wrapcheck
}

// mergeConfig переносит в результат значения окружения, недостающие строки берет из флагов.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig
	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.Storage = defaultIfBlank(envConfig.Storage, flagsConfig.Storage)
	conf.WompiAPIURL = defaultIfBlank(envConfig.WompiAPIURL, flagsConfig.WompiAPIURL)
	return &conf
}

func validate(conf *Config) error {
	switch conf.Storage {
	case StoragePostgres:
		if conf.DatabaseDSN == "" {
			return errors.New("database DSN is not set")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage `%s`", conf.Storage)
	}

	if conf.WompiPublicKey == "" || conf.WompiPrivateKey == "" || conf.WompiIntegritySecret == "" {
		return errors.New("wompi credentials are not set")
	}
	if conf.AdminJWTSecret == "" {
		return errors.New("admin jwt secret is not set")
	}
	if conf.WompiPollAttempts == 0 {
		return errors.New("wompi poll attempts must be positive")
	}
	if conf.WompiPollInterval <= 0 {
		return errors.New("wompi poll interval must be positive")
	}
	if budget := conf.PollBudget(); budget > maxPollBudget {
		return fmt.Errorf("wompi poll budget %s exceeds %s", budget, maxPollBudget)
	}
	if conf.BaseCharge < 0 || conf.ShippingCost < 0 {
		return errors.New("charges must not be negative")
	}
	return nil
}

// PollBudget наибольшее время опроса статуса платежа, оставшегося в PENDING.
func (c *Config) PollBudget() time.Duration {
	return time.Duration(c.WompiPollAttempts) * c.WompiPollInterval
}

// PayTimeout таймаут запроса оплаты. Всегда больше PollBudget, чтобы неподтвержденный платеж
// не отклонялся из-за истекшего запроса.
func (c *Config) PayTimeout() time.Duration {
	return c.PollBudget() + payTimeoutMargin
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
