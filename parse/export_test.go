package parse

// WithMaxLineBytes lowers the line limit so tests need not build 16 MiB lines.
func WithMaxLineBytes(n int) Option {
	return func(c *config) {
		c.maxLine = n
	}
}
