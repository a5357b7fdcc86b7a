package clock

// ClockBuilderOption is a functional option for configuring a Clock.
type ClockBuilderOption func(*clock)

// WithTimeSource replaces the wall-clock time source.
//
// Parameters:
//   - src: function returning the current time (nil keeps time.Now)
//
// Returns:
//   - ClockBuilderOption: option function to apply
func WithTimeSource(src TimeSource) ClockBuilderOption {
	return func(c *clock) {
		if src != nil {
			c.now = src
		}
	}
}
