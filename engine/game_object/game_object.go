package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-diorama/common"
	"github.com/Carmen-Shannon/oxy-diorama/engine/light"
	"github.com/Carmen-Shannon/oxy-diorama/engine/model"
)

// Clip describes an animation clip embedded in a loaded asset.
type Clip struct {
	Name     string
	Duration float32 // seconds
}

type gameObject struct {
	id            uint64
	name          string
	asset         string
	visible       atomic.Bool
	position      [3]float32
	rotation      [3]float32
	scale         [3]float32
	mesh          model.Mesh
	attachedLight light.Light
	clips         []Clip
	activeClip    int
	clipTime      float32
	children      []GameObject
}

// GameObject defines the interface for a retained-mode scene node.
//
// A GameObject carries a transform (position, Euler rotation in radians, scale),
// a visibility flag and optional payloads: a procedural mesh, an attached light,
// the animation clips of the asset it was loaded from and child nodes.
// Animators mutate GameObjects in place on the frame goroutine.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Name returns the node name, usually taken from the source asset.
	//
	// Returns:
	//   - string: the node name
	Name() string

	// Asset returns the asset path this object was loaded from, or "" for procedural nodes.
	Asset() string

	// Visible returns whether this object is drawn.
	//
	// Returns:
	//   - bool: true if visible
	Visible() bool

	// Position returns the world-space position.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Rotation returns the Euler rotation in radians.
	//
	// Returns:
	//   - [3]float32: rotation as (rx, ry, rz)
	Rotation() [3]float32

	// Scale returns the per-axis scale.
	//
	// Returns:
	//   - [3]float32: scale as (sx, sy, sz)
	Scale() [3]float32

	// Transform returns position, rotation and scale in one value.
	//
	// Returns:
	//   - common.Transform: the current transform
	Transform() common.Transform

	// Mesh returns the procedural mesh bound to this object, or nil.
	Mesh() model.Mesh

	// Light returns the Light attached to this object, or nil if none is set.
	//
	// Returns:
	//   - light.Light: the attached light or nil
	Light() light.Light

	// Clips returns the animation clips carried by the source asset.
	//
	// Returns:
	//   - []Clip: the clips in asset order, possibly empty
	Clips() []Clip

	// ClipTime returns the active clip index and the playback time in seconds.
	//
	// Returns:
	//   - int: index into Clips
	//   - float32: playback time
	ClipTime() (int, float32)

	// Children returns the child nodes.
	Children() []GameObject

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetName sets the node name.
	SetName(name string)

	// SetVisible sets whether the object is drawn.
	//
	// Parameters:
	//   - visible: true to show the object
	SetVisible(visible bool)

	// SetPosition sets the world-space position.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation sets the Euler rotation.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation angles in radians
	SetRotation(rx, ry, rz float32)

	// SetYaw sets only the rotation about the vertical axis.
	//
	// Parameters:
	//   - ry: yaw in radians
	SetYaw(ry float32)

	// SetScale sets the per-axis scale.
	//
	// Parameters:
	//   - sx, sy, sz: new scale factors
	SetScale(sx, sy, sz float32)

	// SetTransform replaces position, rotation and scale at once.
	//
	// Parameters:
	//   - t: the new transform
	SetTransform(t common.Transform)

	// SetMesh binds a procedural mesh.
	SetMesh(m model.Mesh)

	// SetLight attaches a Light to this object. The light position follows the
	// object whenever SetPosition is called. Pass nil to detach.
	//
	// Parameters:
	//   - l: the Light to attach, or nil to detach
	SetLight(l light.Light)

	// SetClips replaces the clip list and rewinds playback.
	//
	// Parameters:
	//   - clips: the clips to carry
	SetClips(clips []Clip)

	// SetClipTime records the playback position of a clip.
	//
	// Parameters:
	//   - index: index into Clips
	//   - t: playback time in seconds
	SetClipTime(index int, t float32)

	// AddChild appends a child node.
	//
	// Parameters:
	//   - child: the node to append
	AddChild(child GameObject)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// The object starts visible at the origin with unit scale.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale: [3]float32{1, 1, 1},
	}
	obj.visible.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Asset() string {
	return g.asset
}

func (g *gameObject) Visible() bool {
	return g.visible.Load()
}

func (g *gameObject) Position() [3]float32 {
	return g.position
}

func (g *gameObject) Rotation() [3]float32 {
	return g.rotation
}

func (g *gameObject) Scale() [3]float32 {
	return g.scale
}

func (g *gameObject) Transform() common.Transform {
	return common.Transform{
		Position: g.position,
		Rotation: g.rotation,
		Scale:    g.scale,
	}
}

func (g *gameObject) Mesh() model.Mesh {
	return g.mesh
}

func (g *gameObject) Light() light.Light {
	return g.attachedLight
}

func (g *gameObject) Clips() []Clip {
	return g.clips
}

func (g *gameObject) ClipTime() (int, float32) {
	return g.activeClip, g.clipTime
}

func (g *gameObject) Children() []GameObject {
	return g.children
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetName(name string) {
	g.name = name
}

func (g *gameObject) SetVisible(visible bool) {
	g.visible.Store(visible)
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.position = [3]float32{x, y, z}
	if g.attachedLight != nil {
		g.attachedLight.SetPosition(x, y, z)
	}
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.rotation = [3]float32{rx, ry, rz}
}

func (g *gameObject) SetYaw(ry float32) {
	g.rotation[1] = ry
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.scale = [3]float32{sx, sy, sz}
}

func (g *gameObject) SetTransform(t common.Transform) {
	g.SetPosition(t.Position[0], t.Position[1], t.Position[2])
	g.rotation = t.Rotation
	g.scale = common.UnitScaleIfZero(t.Scale)
}

func (g *gameObject) SetMesh(m model.Mesh) {
	g.mesh = m
}

func (g *gameObject) SetLight(l light.Light) {
	g.attachedLight = l
}

func (g *gameObject) SetClips(clips []Clip) {
	g.clips = clips
	g.activeClip = 0
	g.clipTime = 0
}

func (g *gameObject) SetClipTime(index int, t float32) {
	g.activeClip = index
	g.clipTime = t
}

func (g *gameObject) AddChild(child GameObject) {
	if child == nil {
		return
	}
	g.children = append(g.children, child)
}
