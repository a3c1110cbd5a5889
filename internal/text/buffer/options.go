package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// Growth selects how a buffer reallocates when it runs out of room.
type Growth uint8

const (
	// GrowthExact reallocates to exactly the required size.
	GrowthExact Growth = iota

	// GrowthDouble reallocates to at least twice the current capacity,
	// capped at the maximum capacity.
	GrowthDouble
)

// String returns the growth policy name.
func (g Growth) String() string {
	switch g {
	case GrowthExact:
		return "exact"
	case GrowthDouble:
		return "double"
	default:
		return "unknown"
	}
}

// ParseGrowth maps "exact" or "double" to a Growth.
func ParseGrowth(s string) (Growth, bool) {
	switch s {
	case "", "exact":
		return GrowthExact, true
	case "double":
		return GrowthDouble, true
	default:
		return GrowthExact, false
	}
}

// WithMaxCapacity bounds the buffer's capacity. Zero means unbounded.
func WithMaxCapacity(n int) Option {
	return func(b *Buffer) {
		if n >= 0 {
			b.maxCap = n
		}
	}
}

// WithGrowth sets the buffer's reallocation policy.
func WithGrowth(g Growth) Option {
	return func(b *Buffer) {
		b.growth = g
	}
}
