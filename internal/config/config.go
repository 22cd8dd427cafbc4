// Package config provides YAML-based configuration loading and validation
// for the solver CLI.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config contains all configuration for a run.
type Config struct {
	Search SearchConfig `yaml:"search"`
	Levels LevelsConfig `yaml:"levels"`
	Report ReportConfig `yaml:"report"`
	Log    LogConfig    `yaml:"log"`

	// Source names where the configuration came from; not read from YAML.
	Source string `yaml:"-"`
}

// SearchConfig defines the default strategy and its limits.
type SearchConfig struct {
	Algorithm string `yaml:"algorithm" validate:"required"`

	// Zero values mean unlimited.
	MaxExplored int           `yaml:"max_explored" validate:"gte=0"`
	Timeout     time.Duration `yaml:"timeout" validate:"gte=0s"`

	// ProgressEvery is the expansion interval of debug progress lines.
	// 0 disables them.
	ProgressEvery int `yaml:"progress_every" validate:"gte=0"`
}

// LevelsConfig defines where level files live.
type LevelsConfig struct {
	Dir string `yaml:"dir" validate:"required"`
}

// ReportConfig defines how results are printed.
type ReportConfig struct {
	Color      string `yaml:"color" validate:"oneof=auto always never"`
	Theme      string `yaml:"theme" validate:"oneof=default mono"`
	ShowBoards bool   `yaml:"show_boards"`
	MaxBoards  int    `yaml:"max_boards" validate:"gte=0"` // 0 = no cap
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// configValidate is the shared validator instance.
var configValidate = validator.New()

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Source   string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Source, strings.Join(e.Problems, "; "))
}

// Validate checks field constraints.
func (c Config) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	source := c.Source
	if source == "" {
		source = "(unnamed)"
	}
	ve := &ValidationError{Source: source}
	for _, fe := range verrs {
		ve.Problems = append(ve.Problems, describe(fe))
	}
	return ve
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("%s must not be negative, got %v", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
