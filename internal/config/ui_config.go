package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

type UIConfig struct {
	// Locale is a BCP 47 tag such as "en-US"; empty means the host locale.
	Locale   string `mapstructure:"locale"`
	TimeZone string `mapstructure:"timezone"`
}

func (config UIConfig) validate() error {
	var errs []error

	if config.Locale != "" {
		if _, err := language.Parse(config.Locale); err != nil {
			errs = append(errs, fmt.Errorf("invalid locale %q: %w", config.Locale, err))
		}
	}

	if _, err := config.Location(); err != nil {
		errs = append(errs, fmt.Errorf("invalid timezone %q: %w", config.TimeZone, err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

// Location resolves TimeZone, falling back to the host zone.
func (config UIConfig) Location() (*time.Location, error) {
	if config.TimeZone == "" || config.TimeZone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(config.TimeZone)
}

func (config UIConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("ui.locale", "")
	v.SetDefault("ui.timezone", "Local")
}

func (config UIConfig) bindEnvironmentVariables(v *viper.Viper) error {
	var errs []error
	if err := v.BindEnv("ui.locale", "JOBSEARCH_LOCALE"); err != nil {
		errs = append(errs, err)
	}

	if err := v.BindEnv("ui.timezone", "JOBSEARCH_TIMEZONE"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
