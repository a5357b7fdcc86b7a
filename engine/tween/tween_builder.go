package tween

// ChainBuilderOption is a functional option for configuring a Chain.
type ChainBuilderOption func(*chain)

// WithLoop makes the chain wrap from its last phase back to the first.
//
// Parameters:
//   - loop: true to loop forever
//
// Returns:
//   - ChainBuilderOption: option function to apply
func WithLoop(loop bool) ChainBuilderOption {
	return func(c *chain) {
		c.loop = loop
	}
}
