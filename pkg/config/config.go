package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"innkeeper/pkg/logger"
)

type Config struct {
	HotelName string

	BookingGrace  time.Duration
	MaxStayNights int

	NotifyBrokers []string
	NotifyTopic   string

	SimulatorWorkers int

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	cfg := &Config{
		HotelName: getEnvStr(EnvHotelName, DefaultHotelName),

		BookingGrace:  getEnvDuration(EnvBookingGrace, DefaultBookingGrace),
		MaxStayNights: getEnvNum(EnvMaxStayNights, DefaultMaxStayNights),

		NotifyBrokers: getEnvList(EnvNotifyBrokers, nil),
		NotifyTopic:   getEnvStr(EnvNotifyTopic, DefaultNotifyTopic),

		SimulatorWorkers: getEnvNum(EnvSimulatorWorkers, DefaultSimulatorWorkers),

		Log: logger.New(logger.Config{
			Level:   getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:  logger.JSON,
			Service: serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(cfg.HotelName) == "" {
		errs = append(errs, "HotelName cannot be empty")
	}
	if cfg.BookingGrace < 0 {
		errs = append(errs, fmt.Sprintf("BookingGrace cannot be negative, got: %s", cfg.BookingGrace))
	}
	if cfg.MaxStayNights <= 0 {
		errs = append(errs, fmt.Sprintf("MaxStayNights must be positive, got: %d", cfg.MaxStayNights))
	}
	if len(cfg.NotifyBrokers) > 0 && strings.TrimSpace(cfg.NotifyTopic) == "" {
		errs = append(errs, "NotifyTopic cannot be empty when NotifyBrokers is set")
	}
	if cfg.SimulatorWorkers <= 0 {
		errs = append(errs, fmt.Sprintf("SimulatorWorkers must be positive, got: %d", cfg.SimulatorWorkers))
	}

	if len(errs) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, e := range errs {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"hotel_name", cfg.HotelName,
		"booking_grace", cfg.BookingGrace,
		"max_stay_nights", cfg.MaxStayNights,
		"notify_brokers", cfg.NotifyBrokers,
		"notify_topic", cfg.NotifyTopic,
		"simulator_workers", cfg.SimulatorWorkers,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
