package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Logger LoggerConfig `mapstructure:"logger"`
	DB     DBConfig     `mapstructure:"db"`
	UI     UIConfig     `mapstructure:"ui"`
}

const (
	configPathVariable = "CONFIG_PATH"
	configFileName     = "jobsearch.yaml"
)

func Get() *Config {

	config, err := Load()
	if err != nil {
		log.Fatal(err)
	}

	return config
}

// Load reads the file named by CONFIG_PATH, or jobsearch.yaml in the data
// directory. A missing file is not an error: defaults and environment apply.
func Load() (*Config, error) {

	file, ok := os.LookupEnv(configPathVariable)
	if !ok || file == "" {
		file = filepath.Join(DataDir(), configFileName)
	}

	return loadConfig(file)
}

func loadConfig(file string) (*Config, error) {

	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := bindEnvironmentVariables(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file %s: %w", file, err)
		}
		log.Debugf("config file %s not found, using defaults", file)
	}

	config := Config{}
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {

	dataDir := DataDir()

	db, logger, ui := DBConfig{}, LoggerConfig{}, UIConfig{}
	db.setDefaults(v, dataDir)
	logger.setDefaults(v, dataDir)
	ui.setDefaults(v)
}

func bindEnvironmentVariables(v *viper.Viper) error {
	var errs []error

	db, logger, ui := DBConfig{}, LoggerConfig{}, UIConfig{}

	if err := db.bindEnvironmentVariables(v); err != nil {
		errs = append(errs, fmt.Errorf("DBConfig: %w", err))
	}

	if err := logger.bindEnvironmentVariables(v); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if err := ui.bindEnvironmentVariables(v); err != nil {
		errs = append(errs, fmt.Errorf("UIConfig: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config Config) validate() error {
	var errs []error

	if err := config.DB.validate(); err != nil {
		errs = append(errs, fmt.Errorf("DBConfig: %w", err))
	}

	if err := config.Logger.validate(); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if err := config.UI.validate(); err != nil {
		errs = append(errs, fmt.Errorf("UIConfig: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}
