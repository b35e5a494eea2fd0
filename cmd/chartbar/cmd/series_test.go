package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSeries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	content := "series:\n  - label: mon\n    value: 12.5\n  - label: tue\n    value: 31\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	records, err := loadSeries(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Label != "mon" || records[0].Value != 12.5 {
		t.Fatalf("unexpected first record %+v", records[0])
	}
}

func TestLoadSeries_MissingFile(t *testing.T) {
	if _, err := loadSeries(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected an error for a missing series file")
	}
}

func TestDivisorFor_RejectsUnknownStrategy(t *testing.T) {
	if _, err := divisorFor("median"); err == nil {
		t.Fatalf("expected an error for an unknown strategy")
	}
	for _, name := range []string{"max", "sum", "none"} {
		if _, err := divisorFor(name); err != nil {
			t.Fatalf("strategy %q should be accepted, got %v", name, err)
		}
	}
}
