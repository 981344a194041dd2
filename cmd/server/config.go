package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string `yaml:"addr"`
	Strict  bool   `yaml:"strict"`
}

// LoadConfig reads CONFIG_PATH (YAML) when set, then lets PORT and STRICT
// from the environment or a .env file override it.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("skipping .env", "error", err)
	}

	config := &Config{Address: ":8080"}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer closeAndIgnoreError(f)
		if err := yaml.NewDecoder(f).Decode(config); err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		if err := validatePort(port); err != nil {
			return nil, fmt.Errorf("invalid port: %w", err)
		}
		config.Address = net.JoinHostPort("", port)
	}

	if s := os.Getenv("STRICT"); s != "" {
		strict, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid STRICT value %q: %w", s, err)
		}
		config.Strict = strict
	}

	return config, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}
	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}

func closeAndIgnoreError(c io.Closer) {
	_ = c.Close()
}
