package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes where the tracker keeps its records on disk.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store location from a .pottypanda config file or
// PANDA_* environment variables, defaulting to ~/.pottypanda.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.pottypanda.db")
	viper.SetConfigName(".pottypanda") // .yaml is implicit
	viper.SetEnvPrefix("PANDA")
	viper.AutomaticEnv()

	if override := os.Getenv("PANDA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
