package graphstore

// StoreOption configures NewStore. Grounded in the teacher's own
// constructor idiom (NewContractedGraph, NewRouteAlgorithm, NewKVDB all take
// their dependencies as plain constructor arguments); a functional-option
// form is used here instead of more positional arguments since the only
// configurable knob, the adjacency representation threshold, is optional
// and most callers never need it.
type StoreOption func(*storeConfig)

type storeConfig struct {
	denseThresholdFactor uint64
}

// WithDenseThresholdFactor overrides how sparse an edge id space may be
// before NewStore falls back to map-backed adjacency instead of CSR. Lower
// values favor the map representation more readily; the default is 4.
func WithDenseThresholdFactor(factor uint64) StoreOption {
	return func(c *storeConfig) {
		c.denseThresholdFactor = factor
	}
}

func newStoreConfig(opts []StoreOption) storeConfig {
	cfg := storeConfig{denseThresholdFactor: defaultDenseThresholdFactor}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
