// Package config contains the client configuration with a YAML loader.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings needed to talk to a Bifrost node.
type Config struct {
	// Endpoint is the node's base address including the trailing slash,
	// route segments are appended to it.
	Endpoint string `yaml:"Endpoint"`
	// APIKey is the value of the x-api-key header.
	APIKey         string        `yaml:"APIKey"`
	DialTimeout    time.Duration `yaml:"DialTimeout"`
	RequestTimeout time.Duration `yaml:"RequestTimeout"`
}

// Load reads a Config from the YAML file at the given path. Fields absent
// from the file keep their zero value; the client applies its own defaults
// on top.
func Load(path string) (Config, error) {
	configData, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}
	return LoadRawConfig(configData)
}

// LoadRawConfig unmarshals a Config from YAML data.
func LoadRawConfig(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("problem unmarshaling config data: %w", err)
	}
	return config, nil
}
