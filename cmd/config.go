package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/core/domain/model/rates"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT"`

	StorageDriver    string `env:"STORAGE_DRIVER"`
	StateFile        string `env:"STATE_FILE"`
	SnapshotSchedule string `env:"SNAPSHOT_SCHEDULE"`
	ReportSchedule   string `env:"REPORT_SCHEDULE"`

	DBHost     string `env:"DB_HOST"`
	DBPort     string `env:"DB_PORT"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBSslMode  string `env:"DB_SSLMODE"`

	KafkaHost              string `env:"KAFKA_HOST"`
	KafkaOrderChangedTopic string `env:"KAFKA_ORDER_CHANGED_TOPIC"`

	RedisAddr string `env:"REDIS_ADDR"`

	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	RateBase           int `env:"RATE_BASE"`
	RatePerKg          int `env:"RATE_PER_KG"`
	RateExpress        int `env:"RATE_EXPRESS"`
	RateSameDay        int `env:"RATE_SAME_DAY"`
	RateLoyaltyPercent int `env:"RATE_LOYALTY_PERCENT"`
}

// DefaultConfig runs everything in process with the standard tariff.
func DefaultConfig() Config {
	def := rates.Default()
	return Config{
		HTTPPort:               "8080",
		StorageDriver:          StorageMemory,
		StateFile:              "swiftgo-state.json",
		SnapshotSchedule:       "*/30 * * * * *",
		ReportSchedule:         "0 0 * * * *",
		DBPort:                 "5432",
		DBSslMode:              "disable",
		KafkaOrderChangedTopic: "swiftgo.events",
		LogLevel:               "info",
		LogFormat:              "json",
		RateBase:               int(def.BaseRate),
		RatePerKg:              int(def.RatePerKg),
		RateExpress:            int(def.ExpressFee),
		RateSameDay:            int(def.SameDayFee),
		RateLoyaltyPercent:     def.LoyaltyDiscountPercent,
	}
}

// LoadConfig overlays DefaultConfig with the environment. Variables from the
// dotenv file at path are added first; a missing file is not an error.
func LoadConfig(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	config := DefaultConfig()
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	config.StorageDriver = strings.ToLower(strings.TrimSpace(config.StorageDriver))

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if c.DBHost == "" || c.DBName == "" {
			errs = append(errs, errors.New("DB_HOST and DB_NAME are required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver))
	}
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT is required"))
	}
	if err := c.DefaultRates().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("default rates: %w", err))
	}
	return errors.Join(errs...)
}

// DefaultRates is served until a rate table has been stored.
func (c Config) DefaultRates() rates.Table {
	return rates.Table{
		BaseRate:               kernel.Money(c.RateBase),
		RatePerKg:              kernel.Money(c.RatePerKg),
		ExpressFee:             kernel.Money(c.RateExpress),
		SameDayFee:             kernel.Money(c.RateSameDay),
		LoyaltyDiscountPercent: c.RateLoyaltyPercent,
	}
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas. Empty means events are only logged.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
