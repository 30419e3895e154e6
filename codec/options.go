package codec

// DefaultMaxDepth is the default limit on nested Object levels accepted by
// Loads.
const DefaultMaxDepth = 1024

type DecodeOption func(*decoder)

// WithMaxDepth limits the nesting of Object values. Deeper objects are
// treated as corrupt input.
func WithMaxDepth(n int) DecodeOption {
	return func(d *decoder) { d.maxDepth = n }
}

// Report describes how much of the input Loads used.
type Report struct {
	// Consumed is the number of bytes belonging to the decoded elements.
	Consumed int
	// Complete is false if decoding stopped on truncated or corrupt input.
	Complete bool
}

// WithReport makes Loads fill in r.
func WithReport(r *Report) DecodeOption {
	return func(d *decoder) { d.report = r }
}
