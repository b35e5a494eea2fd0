// Package config loads the optional chart.yaml plot configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/charts/pkg/plot"
)

// Config represents the optional chart.yaml configuration.
type Config struct {
	Plot PlotConfig `yaml:"plot"`
}

// PlotConfig mirrors the plot's configuration fields. Omitted fields fall
// back to the plot defaults.
type PlotConfig struct {
	ColumnHeight  *float64 `yaml:"columnHeight,omitempty"`
	ColumnSpacing *float64 `yaml:"columnSpacing,omitempty"`
	ColumnWidth   *float64 `yaml:"columnWidth,omitempty"`
	DomainMax     *float64 `yaml:"domainMax,omitempty"`
}

// LoadOptional reads the file at path if present. A missing file yields an
// empty configuration, not an error.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply writes every configured field into the plot. Unset fields keep the
// plot's defaults.
func (c *Config) Apply(set interface {
	SetColumnHeight(float64)
	SetColumnSpacing(float64)
	SetColumnWidth(float64)
	SetDomainMax(float64)
}) {
	if c.Plot.ColumnHeight != nil {
		set.SetColumnHeight(*c.Plot.ColumnHeight)
	}
	if c.Plot.ColumnSpacing != nil {
		set.SetColumnSpacing(*c.Plot.ColumnSpacing)
	}
	if c.Plot.ColumnWidth != nil {
		set.SetColumnWidth(*c.Plot.ColumnWidth)
	}
	if c.Plot.DomainMax != nil {
		set.SetDomainMax(*c.Plot.DomainMax)
	}
}

// Geometry resolves the configuration against the plot defaults without a
// plot instance, for callers that only need the numbers.
func (c *Config) Geometry() plot.Geometry {
	geom := plot.Geometry{
		ColumnHeight:  plot.DefaultColumnHeight,
		ColumnSpacing: plot.DefaultColumnSpacing,
		ColumnWidth:   plot.DefaultColumnWidth,
		DomainMax:     plot.DefaultDomainMax,
	}
	if c.Plot.ColumnHeight != nil {
		geom.ColumnHeight = *c.Plot.ColumnHeight
	}
	if c.Plot.ColumnSpacing != nil {
		geom.ColumnSpacing = *c.Plot.ColumnSpacing
	}
	if c.Plot.ColumnWidth != nil {
		geom.ColumnWidth = *c.Plot.ColumnWidth
	}
	if c.Plot.DomainMax != nil {
		geom.DomainMax = *c.Plot.DomainMax
	}
	return geom
}
