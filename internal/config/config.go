package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" validate:"dive,required"`
}

type Config struct {
	Contest Contest `yaml:"contest"`
	Logger  Logger  `yaml:"logger"`
	Storage Storage `yaml:"storage"`
	Listen  string  `yaml:"listen" validate:"omitempty,hostname_port"`
	CORS    CORS    `yaml:"cors"`
	Export  Export  `yaml:"export"`
}

type Contest struct {
	Name string `yaml:"name" json:"name" validate:"required"`
}

type Logger struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file"`
}

// Storage configures the sqlite archive. An empty Database disables it.
type Storage struct {
	Database string `yaml:"database"`
}

type Export struct {
	Results string `yaml:"results"`
}

func Default() *Config {
	return &Config{
		Contest: Contest{Name: "ICPC"},
		Logger:  Logger{Level: "info"},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the final configuration, after command-line overrides.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return err
		}

		var messages []string
		for _, fe := range err.(validator.ValidationErrors) {
			messages = append(messages, fmt.Sprintf("field '%s' failed on '%s' (value: '%v')", fe.Namespace(), fe.Tag(), fe.Value()))
		}
		return fmt.Errorf("invalid config: %s", strings.Join(messages, "; "))
	}
	return nil
}
