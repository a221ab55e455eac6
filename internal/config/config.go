package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	Nickname string `yaml:"nickname" env-default:""`
	Server   Server `yaml:"server"`
}

type Server struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"8080"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// GetHTTPBaseURL returns the base URL for the snapshot endpoints.
func (that *Server) GetHTTPBaseURL() string {
	return fmt.Sprintf("http://%s:%s", that.Host, that.Port)
}

// GetWSBaseURL returns the base URL the session channels dial.
func (that *Server) GetWSBaseURL() string {
	return fmt.Sprintf("ws://%s:%s/ws", that.Host, that.Port)
}
