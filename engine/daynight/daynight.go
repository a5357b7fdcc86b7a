package daynight

import (
	"github.com/Carmen-Shannon/oxy-diorama/common"
	"github.com/Carmen-Shannon/oxy-diorama/engine/scene"
	"github.com/rs/zerolog"
)

// Palette is the set of scene attributes switched between day and night.
type Palette struct {
	Background       common.Color
	MainIntensity    float32
	AmbientIntensity float32
	StreetLightsOn   bool
}

// Reference palettes of the island.
var (
	DayPalette = Palette{
		Background:       common.ColorFromHex(0xB2DDF7),
		MainIntensity:    3,
		AmbientIntensity: 30,
		StreetLightsOn:   false,
	}
	NightPalette = Palette{
		Background:       common.ColorFromHex(0x161636),
		MainIntensity:    0.2,
		AmbientIntensity: 2,
		StreetLightsOn:   true,
	}
)

// toggle is the implementation of the Toggle interface.
type toggle struct {
	scene   scene.Scene
	day     Palette
	night   Palette
	isNight bool
	logger  zerolog.Logger
}

// Toggle switches the scene between its day and night palettes.
//
// Every switch applies the complete target palette in one step: background
// color, main light intensity, ambient light intensity and the visibility of
// every street light. Toggling twice therefore restores every attribute.
type Toggle interface {
	// Toggle flips between day and night and applies the new palette.
	Toggle()

	// IsNight reports the current state.
	//
	// Returns:
	//   - bool: true at night
	IsNight() bool

	// Set forces a state and applies its palette.
	//
	// Parameters:
	//   - night: true for night
	Set(night bool)

	// Palette returns the palette of the current state.
	Palette() Palette
}

var _ Toggle = &toggle{}

// NewToggle creates a Toggle for sc and applies the starting palette (day
// unless WithNight is given) so the scene is in a known state.
//
// Parameters:
//   - sc: the scene to switch
//   - options: functional options for palette configuration
//
// Returns:
//   - Toggle: the new toggle
func NewToggle(sc scene.Scene, options ...ToggleBuilderOption) Toggle {
	t := &toggle{
		scene:  sc,
		day:    DayPalette,
		night:  NightPalette,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		opt(t)
	}
	t.apply()
	return t
}

func (t *toggle) Toggle() {
	t.Set(!t.isNight)
}

func (t *toggle) IsNight() bool {
	return t.isNight
}

func (t *toggle) Set(night bool) {
	t.isNight = night
	t.apply()
	t.logger.Info().Str("component", "DayNight").Bool("night", night).Msg("palette applied")
}

func (t *toggle) Palette() Palette {
	if t.isNight {
		return t.night
	}
	return t.day
}

func (t *toggle) apply() {
	p := t.Palette()
	t.scene.SetBackground(p.Background)
	if l, ok := t.scene.MainLight(); ok {
		l.SetIntensity(p.MainIntensity)
	}
	if l, ok := t.scene.AmbientLight(); ok {
		l.SetIntensity(p.AmbientIntensity)
	}
	t.scene.StreetLights().SetVisible(p.StreetLightsOn)
}
