package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/charts/pkg/plot"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadOptional_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "chart.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error, got %v", err)
	}
	geom := cfg.Geometry()
	if geom.ColumnHeight != plot.DefaultColumnHeight || geom.ColumnWidth != plot.DefaultColumnWidth {
		t.Fatalf("expected plot defaults, got %+v", geom)
	}
}

func TestLoadOptional_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeFile(t, "chart.yaml", "plot:\n  columnHeight: 300\n  domainMax: 50\n")

	cfg, err := LoadOptional(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	geom := cfg.Geometry()
	if geom.ColumnHeight != 300 || geom.DomainMax != 50 {
		t.Fatalf("expected configured values, got %+v", geom)
	}
	if geom.ColumnWidth != plot.DefaultColumnWidth || geom.ColumnSpacing != plot.DefaultColumnSpacing {
		t.Fatalf("expected unset fields to keep defaults, got %+v", geom)
	}
}

func TestLoadOptional_InvalidYAML(t *testing.T) {
	path := writeFile(t, "chart.yaml", "plot: [not a mapping\n")

	if _, err := LoadOptional(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}

type settersSpy struct {
	height, spacing, width, domain []float64
}

func (s *settersSpy) SetColumnHeight(v float64)  { s.height = append(s.height, v) }
func (s *settersSpy) SetColumnSpacing(v float64) { s.spacing = append(s.spacing, v) }
func (s *settersSpy) SetColumnWidth(v float64)   { s.width = append(s.width, v) }
func (s *settersSpy) SetDomainMax(v float64)     { s.domain = append(s.domain, v) }

func TestApply_OnlyConfiguredFields(t *testing.T) {
	path := writeFile(t, "chart.yaml", "plot:\n  columnWidth: 8\n")
	cfg, err := LoadOptional(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	spy := &settersSpy{}
	cfg.Apply(spy)

	if len(spy.width) != 1 || spy.width[0] != 8 {
		t.Fatalf("expected one width write of 8, got %v", spy.width)
	}
	if len(spy.height)+len(spy.spacing)+len(spy.domain) != 0 {
		t.Fatalf("expected unset fields untouched, got %+v", spy)
	}
}
