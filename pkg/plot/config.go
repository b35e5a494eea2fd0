package plot

// Default configuration values used when neither a state container nor the
// caller supplies them.
const (
	DefaultColumnHeight  = 100
	DefaultColumnWidth   = 10
	DefaultColumnSpacing = 1
	DefaultDomainMax     = 0
)

// Keys under which configuration fields live in an external state container.
const (
	keyColumnHeight  = "columnHeight"
	keyColumnSpacing = "columnSpacing"
	keyColumnWidth   = "columnWidth"
	keyDomainMax     = "domainMax"
)

// StateContainer is an external store that can hold configuration fields on
// behalf of a plot. When one is attached, it is authoritative for every
// field; otherwise fields live in plot-private storage. The choice is made
// once at construction and never revisited.
type StateContainer interface {
	// Get returns the stored value for key and whether one exists.
	Get(key string) (float64, bool)
	// Set stores the value for key.
	Set(key string, value float64)
}

// configField is one configuration value behind a read/write strategy.
// Exactly one implementation backs each field for the lifetime of the plot.
type configField interface {
	read() float64
	write(value float64)
}

// containerField delegates storage to an external StateContainer.
type containerField struct {
	store    StateContainer
	key      string
	fallback float64 // used until the container holds an entry for key
}

func (f *containerField) read() float64 {
	if v, ok := f.store.Get(f.key); ok {
		return v
	}
	return f.fallback
}

func (f *containerField) write(value float64) {
	f.store.Set(f.key, value)
}

// localField holds the value in plot-private storage.
type localField struct {
	value float64
}

func (f *localField) read() float64       { return f.value }
func (f *localField) write(value float64) { f.value = value }

// newConfigField selects the backing strategy for one field. The store
// decides: non-nil means container-backed, nil means local.
func newConfigField(store StateContainer, key string, initial float64) configField {
	if store != nil {
		return &containerField{store: store, key: key, fallback: initial}
	}
	return &localField{value: initial}
}

// Geometry is a point-in-time snapshot of the configuration fields the
// layout algorithm consumes. Values are taken as-is: the plot performs no
// validation, so negative or non-finite settings flow straight into the
// computed geometry.
type Geometry struct {
	ColumnHeight  float64
	ColumnSpacing float64
	ColumnWidth   float64
	DomainMax     float64
}
