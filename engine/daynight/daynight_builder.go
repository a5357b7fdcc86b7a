package daynight

import "github.com/rs/zerolog"

// ToggleBuilderOption is a functional option for configuring a Toggle.
type ToggleBuilderOption func(*toggle)

// WithPalettes replaces the day and night palettes.
//
// Parameters:
//   - day: palette applied during the day
//   - night: palette applied at night
//
// Returns:
//   - ToggleBuilderOption: option function to apply
func WithPalettes(day, night Palette) ToggleBuilderOption {
	return func(t *toggle) {
		t.day = day
		t.night = night
	}
}

// WithNight starts the toggle at night.
func WithNight(night bool) ToggleBuilderOption {
	return func(t *toggle) {
		t.isNight = night
	}
}

// WithLogger sets the logger used to report palette switches.
func WithLogger(logger zerolog.Logger) ToggleBuilderOption {
	return func(t *toggle) {
		t.logger = logger
	}
}
