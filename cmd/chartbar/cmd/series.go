package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/charts/pkg/observe"
	"github.com/go-drift/charts/pkg/plot"
)

// Record is one entry of a YAML series file:
//
//	series:
//	  - label: mon
//	    value: 12.5
//	  - label: tue
//	    value: 31
type Record struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
}

type seriesFile struct {
	Series []Record `yaml:"series"`
}

// loadSeries reads and decodes a series file.
func loadSeries(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read series file: %w", err)
	}
	var file seriesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse series file: %w", err)
	}
	return file.Series, nil
}

// fileSource adapts a loaded series to the plot's DataSource contract. The
// stream never changes after construction; the replacement signal exists
// only to satisfy the interface.
type fileSource struct {
	records  *observe.Observable[[]Record]
	replaced *observe.Signal[*observe.Observable[[]Record]]
}

func newFileSource(records []Record) *fileSource {
	return &fileSource{
		records:  observe.NewObservable(records),
		replaced: observe.NewSignal[*observe.Observable[[]Record]](),
	}
}

func (s *fileSource) Records() *observe.Observable[[]Record] {
	return s.records
}

func (s *fileSource) RecordsReplaced() *observe.Signal[*observe.Observable[[]Record]] {
	return s.replaced
}

var _ plot.DataSource[Record] = (*fileSource)(nil)
