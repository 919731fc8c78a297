package repository

// Option applies a configuration option to the SnapshotStore.
type Option func(*SnapshotStore)

// WithDatasetMetrics toggles publishing snapshot sizes as gauges on each
// Replace. On by default.
func WithDatasetMetrics(enabled bool) Option {
	return func(s *SnapshotStore) {
		s.datasetMetrics = enabled
	}
}
