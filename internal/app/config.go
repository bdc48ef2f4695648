package app

import (
	"errors"
	"net/http"

	"github.com/spf13/viper"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home    string       // state dir, e.g. $HOME/.qlab
	Service string       // remote service base URL, e.g. https://quantum.example.com
	HTTP    *http.Client // optional; defaults to http.DefaultClient
}

// FileConfig is what the optional config.yaml under the home dir may set.
// Flags always win over file values.
type FileConfig struct {
	Service string `mapstructure:"service"`
	Shots   int    `mapstructure:"shots"`
	Qubits  int    `mapstructure:"qubits"`
}

// LoadFileConfig reads config.yaml from home, falling back to defaults when
// the file is absent.
func LoadFileConfig(home string) (FileConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(home)
	v.SetDefault("service", "")
	v.SetDefault("shots", 1024)
	v.SetDefault("qubits", 8)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return FileConfig{}, err
		}
	}
	var fc FileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return FileConfig{}, err
	}
	return fc, nil
}
