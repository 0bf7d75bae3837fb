// README: Config loader; defaults, optional config.yaml, CARERIDE_* env overrides.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// TripConfig carries the simulation policy constants. Tests shrink these to
// avoid wall-clock waits.
type TripConfig struct {
	// MatchDelay is the simulated driver-assignment delay.
	MatchDelay time.Duration
	// TickInterval is the live-location update period while a trip runs.
	TickInterval time.Duration
	// StepFraction is the share of the pickup→dropoff path covered per tick.
	StepFraction float64
}

type AlertConfig struct {
	// Cap bounds the alert log; oldest entries drop past it.
	Cap int
}

type EmergencyConfig struct {
	PoliceNumber string
}

type Config struct {
	Trip      TripConfig
	Alert     AlertConfig
	Emergency EmergencyConfig
	// CatalogPath points at an external catalog YAML; empty uses the
	// embedded demo catalog.
	CatalogPath string
}

func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("trip.match_delay", "1200ms")
	v.SetDefault("trip.tick_interval", "800ms")
	v.SetDefault("trip.step_fraction", 0.03)
	v.SetDefault("alert.cap", 500)
	v.SetDefault("emergency.police_number", "112")
	v.SetDefault("catalog_path", "")

	v.SetEnvPrefix("CARERIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	cfg.Trip.MatchDelay = v.GetDuration("trip.match_delay")
	cfg.Trip.TickInterval = v.GetDuration("trip.tick_interval")
	cfg.Trip.StepFraction = v.GetFloat64("trip.step_fraction")
	cfg.Alert.Cap = v.GetInt("alert.cap")
	cfg.Emergency.PoliceNumber = v.GetString("emergency.police_number")
	cfg.CatalogPath = v.GetString("catalog_path")
	return cfg, nil
}
