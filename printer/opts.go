package printer

type PrintOption func(*printState)

func WithColors(c *Colors) PrintOption {
	return func(ps *printState) { ps.color = c.Color }
}

// WithIndent sets the string repeated once per nesting level. The default
// is a tab.
func WithIndent(s string) PrintOption {
	return func(ps *printState) { ps.indent = s }
}

// Depth sets the nesting level of the top level elements.
func Depth(n int) PrintOption {
	return func(ps *printState) { ps.depth = n }
}

// WithTypes annotates every value with the name of its type.
func WithTypes(v bool) PrintOption {
	return func(ps *printState) { ps.types = v }
}
