package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

const databaseFileName = "jobsearch.sqlite"

type DBConfig struct {
	Path string `mapstructure:"path"`
}

func (config DBConfig) validate() error {
	if config.Path == "" {
		return fmt.Errorf("missing variable: db path")
	}
	return nil
}

func (config DBConfig) setDefaults(v *viper.Viper, dataDir string) {
	v.SetDefault("db.path", filepath.Join(dataDir, databaseFileName))
}

func (config DBConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return v.BindEnv("db.path", "JOBSEARCH_DB_PATH")
}
