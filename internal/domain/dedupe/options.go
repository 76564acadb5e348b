package dedupe

// Option applies a configuration option to the deduper.
type Option func(*memoryDeduper)

// WithCapacity bounds the number of ids kept. When full the oldest id is
// evicted. A capacity of zero or less keeps every id.
func WithCapacity(n int) Option {
	return func(d *memoryDeduper) {
		d.capacity = n
	}
}
