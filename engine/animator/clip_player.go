package animator

import (
	"github.com/Carmen-Shannon/oxy-diorama/engine/clock"
	"github.com/Carmen-Shannon/oxy-diorama/engine/scene"
	"github.com/chewxy/math32"
)

// ClipPlayer loops the first embedded animation clip of a node. Clip time
// follows the real frame delta regardless of the scene step mode.
type ClipPlayer struct {
	scene scene.Scene
	role  scene.Role
	clip  int
	speed float32
}

var _ Animator = &ClipPlayer{}

// NewClipPlayer creates a ClipPlayer for the RolePlane node of sc.
//
// Parameters:
//   - sc: the scene holding the node
//   - options: functional options for playback configuration
//
// Returns:
//   - *ClipPlayer: the new player
func NewClipPlayer(sc scene.Scene, options ...ClipPlayerBuilderOption) *ClipPlayer {
	p := &ClipPlayer{
		scene: sc,
		role:  scene.RolePlane,
		speed: 1,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Update advances the clip time by the frame delta, wrapping at the clip
// duration. No-op when the node is absent or has no such clip.
func (p *ClipPlayer) Update(frame clock.Frame) {
	node, ok := p.scene.Object(p.role)
	if !ok {
		return
	}
	clips := node.Clips()
	if p.clip >= len(clips) {
		return
	}

	_, t := node.ClipTime()
	t += frame.DeltaSeconds() * p.speed
	if d := clips[p.clip].Duration; d > 0 {
		t = math32.Mod(t, d)
		if t < 0 {
			t += d
		}
	} else {
		t = 0
	}
	node.SetClipTime(p.clip, t)
}
