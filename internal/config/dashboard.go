package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Dashboard holds the presets of the dashboard page and the CLI.
type Dashboard struct {
	Title       string        `yaml:"title" validate:"required"`
	Sources     []string      `yaml:"sources" validate:"omitempty,dive,required"`
	LineColumns []string      `yaml:"line_columns" validate:"required,min=1,max=8,dive,required"`
	Scatter     ScatterPreset `yaml:"scatter"`
	// Reference weekday of the vertical markers on line charts
	Weekday           string   `yaml:"weekday" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	CorrelationLabels []string `yaml:"correlation_labels" validate:"omitempty,dive,required"`
	DiscoverStages    bool     `yaml:"discover_stages"`
}

type ScatterPreset struct {
	X string `yaml:"x" validate:"required"`
	Y string `yaml:"y" validate:"required"`
}

// DefaultDashboard is the stage-share line chart, bedtime scatter and Monday markers.
func DefaultDashboard() *Dashboard {
	return &Dashboard{
		Title:       "Fitbit sleep analysis",
		LineColumns: []string{"rem.%", "deep.%"},
		Scatter:     ScatterPreset{X: "startMin", Y: "deep.%"},
		Weekday:     "Monday",
	}
}

// LoadDashboard reads presets from a YAML file. An empty path yields the defaults.
// Fields missing from the file keep their default values.
func LoadDashboard(path string) (*Dashboard, error) {
	d := DefaultDashboard()
	if path == "" {
		return d, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dashboard config: %w", err)
	}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("failed to parse dashboard config: %w", err)
	}
	if err := validator.New().Struct(d); err != nil {
		return nil, fmt.Errorf("invalid dashboard config: %w", err)
	}
	return d, nil
}
