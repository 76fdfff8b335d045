package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort          = "8080"
	defaultServiceEventTopic = "dispatch.service-events"
)

// Config is the process configuration, read from the environment.
type Config struct {
	HTTPPort  string
	LogLevel  string
	LogFormat string

	RideRate     kernel.Money
	DeliveryRate kernel.Money
	PayRate      kernel.Rate

	UsersFile   string
	DriversFile string

	KafkaBrokers            []string
	KafkaServiceEventsTopic string
	RedisAddr               string

	SummarySchedule string
}

// LoadConfig reads envFile when it exists, then the environment. Every invalid
// value is reported.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		HTTPPort:                envOr("HTTP_PORT", defaultHTTPPort),
		LogLevel:                envOr("LOG_LEVEL", "info"),
		LogFormat:               envOr("LOG_FORMAT", "json"),
		RideRate:                services.DefaultRideRate,
		DeliveryRate:            services.DefaultDeliveryRate,
		PayRate:                 services.DefaultPayRate,
		UsersFile:               strings.TrimSpace(os.Getenv("USERS_FILE")),
		DriversFile:             strings.TrimSpace(os.Getenv("DRIVERS_FILE")),
		KafkaServiceEventsTopic: envOr("KAFKA_SERVICE_EVENTS_TOPIC", defaultServiceEventTopic),
		RedisAddr:               strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		SummarySchedule:         strings.TrimSpace(os.Getenv("SUMMARY_SCHEDULE")),
	}

	var errs []error
	setMoneyFromEnv(&cfg.RideRate, "RIDE_RATE", &errs)
	setMoneyFromEnv(&cfg.DeliveryRate, "DELIVERY_RATE", &errs)
	if v := strings.TrimSpace(os.Getenv("PAY_RATE")); v != "" {
		rate, err := parseRate(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("PAY_RATE: %w", err))
		} else {
			cfg.PayRate = rate
		}
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = splitAndTrim(brokers)
	}

	return cfg, errors.Join(errs...)
}

// Tariff builds the pricing rules of cfg.
func (c Config) Tariff() (services.Tariff, error) {
	return services.NewTariff(c.RideRate, c.DeliveryRate, c.PayRate)
}

func envOr(key string, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func setMoneyFromEnv(dst *kernel.Money, key string, errs *[]error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	m, err := kernel.ParseMoney(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = m
}

func parseRate(v string) (kernel.Rate, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	return kernel.RateFromFloat(f)
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
