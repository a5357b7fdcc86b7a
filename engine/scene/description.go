package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-diorama/common"
	"github.com/Carmen-Shannon/oxy-diorama/engine/game_object"
	"github.com/Carmen-Shannon/oxy-diorama/engine/light"
	"github.com/Carmen-Shannon/oxy-diorama/engine/model"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidPlacement is returned when a placement record cannot be used.
var ErrInvalidPlacement = errors.New("invalid placement")

//go:embed default_scene.toml
var defaultSceneTOML []byte

// Description is the static table of everything placed in the diorama.
type Description struct {
	Name       string      `toml:"name"`
	Placements []Placement `toml:"placement"`
}

// Placement is one record of the description table.
type Placement struct {
	Asset    string     `toml:"asset"`
	Role     Role       `toml:"role"`
	Position [3]float32 `toml:"position"`
	Rotation [3]float32 `toml:"rotation"`
	Scale    [3]float32 `toml:"scale"`
	Mesh     *PlaneSpec `toml:"mesh"`
	Light    *LightSpec `toml:"light"`
}

// PlaneSpec describes a procedural subdivided plane.
type PlaneSpec struct {
	Width          float32 `toml:"width"`
	Height         float32 `toml:"height"`
	WidthSegments  int     `toml:"width_segments"`
	HeightSegments int     `toml:"height_segments"`
}

// LightSpec describes the light carried by a placement. Offset is added to the
// placement position to get the light position.
type LightSpec struct {
	Color     uint32     `toml:"color"`
	Intensity float32    `toml:"intensity"`
	Range     float32    `toml:"range"`
	Offset    [3]float32 `toml:"offset"`
}

// Transform returns the placement transform, with a zero scale read as unit scale.
func (p Placement) Transform() common.Transform {
	return common.Transform{
		Position: p.Position,
		Rotation: p.Rotation,
		Scale:    common.UnitScaleIfZero(p.Scale),
	}
}

// NeedsAsset reports whether the placement is backed by an asset file.
func (p Placement) NeedsAsset() bool {
	return p.Asset != ""
}

// ParseDescription decodes a TOML description table and validates it.
// Unknown keys are rejected.
//
// Parameters:
//   - data: the TOML document
//
// Returns:
//   - *Description: the decoded table
//   - error: a decode error or a validation error wrapping ErrInvalidPlacement
func ParseDescription(data []byte) (*Description, error) {
	var d Description
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("error decoding scene description at %d:%d: %w", row, col, err)
		}
		return nil, fmt.Errorf("error decoding scene description: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadDescription reads and parses a description file.
//
// Parameters:
//   - path: path to the TOML file
//
// Returns:
//   - *Description: the decoded table
//   - error: read, decode or validation error
func LoadDescription(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading scene description: %w", err)
	}
	return ParseDescription(data)
}

// DefaultDescription returns the built-in island layout.
func DefaultDescription() (*Description, error) {
	return ParseDescription(defaultSceneTOML)
}

// Validate checks every placement and returns the first problem found.
func (d *Description) Validate() error {
	seen := make(map[Role]int)
	for i, p := range d.Placements {
		if err := p.validate(); err != nil {
			return fmt.Errorf("placement %d: %w", i, err)
		}
		seen[p.Role]++
	}
	for _, r := range []Role{RoleRiver, RoleCar, RolePlane, RoleCarousel, RoleMainLight, RoleAmbientLight} {
		if seen[r] > 1 {
			return fmt.Errorf("role %q placed %d times: %w", r, seen[r], ErrInvalidPlacement)
		}
	}
	return nil
}

func (p Placement) validate() error {
	if !p.Role.Known() {
		return fmt.Errorf("unknown role %q: %w", p.Role, ErrInvalidPlacement)
	}
	for _, s := range p.Scale {
		if s < 0 {
			return fmt.Errorf("negative scale %v: %w", p.Scale, ErrInvalidPlacement)
		}
	}

	switch p.Role {
	case RoleRiver:
		if p.Mesh == nil {
			return fmt.Errorf("river requires a mesh: %w", ErrInvalidPlacement)
		}
		if p.Mesh.Width <= 0 || p.Mesh.Height <= 0 {
			return fmt.Errorf("river mesh size %vx%v: %w", p.Mesh.Width, p.Mesh.Height, ErrInvalidPlacement)
		}
	case RoleMainLight, RoleAmbientLight:
		if p.Light == nil {
			return fmt.Errorf("%s requires a light: %w", p.Role, ErrInvalidPlacement)
		}
	case RoleStreetLight:
		if p.Light == nil {
			return fmt.Errorf("street light requires a light: %w", ErrInvalidPlacement)
		}
	case RoleCar, RolePlane, RoleCarousel, RoleDecoration:
		if p.Asset == "" {
			return fmt.Errorf("role %q requires an asset: %w", p.Role, ErrInvalidPlacement)
		}
	}
	if p.Light != nil && p.Light.Intensity < 0 {
		return fmt.Errorf("negative light intensity: %w", ErrInvalidPlacement)
	}
	return nil
}

// Populate builds the procedural parts of a description into s: the main and
// ambient lights, street lamp lights and the river mesh. It returns the
// placements that still need an asset loaded, in table order. Street lamp
// lights start disabled.
//
// Parameters:
//   - s: the scene to fill
//   - d: the description table
//
// Returns:
//   - []Placement: placements backed by asset files
func Populate(s Scene, d *Description) []Placement {
	var pending []Placement
	for _, p := range d.Placements {
		switch p.Role {
		case RoleMainLight:
			s.SetMainLight(newLight(light.LightTypeDirectional, string(p.Role), p, true))
		case RoleAmbientLight:
			s.SetAmbientLight(newLight(light.LightTypeAmbient, string(p.Role), p, true))
		case RoleStreetLight:
			s.StreetLights().Add(newLight(light.LightTypePoint, p.Asset, p, false))
		case RoleRiver:
			mesh := model.NewPlaneMesh(p.Mesh.Width, p.Mesh.Height, p.Mesh.WidthSegments, p.Mesh.HeightSegments,
				model.WithName(string(RoleRiver)))
			obj := game_object.NewGameObject(
				game_object.WithName(string(RoleRiver)),
				game_object.WithMesh(mesh),
			)
			obj.SetTransform(p.Transform())
			s.Register(RoleRiver, obj)
		}
		if p.NeedsAsset() {
			pending = append(pending, p)
		}
	}
	return pending
}

func newLight(t light.LightType, name string, p Placement, enabled bool) light.Light {
	pos := p.Position
	for i := range pos {
		pos[i] += p.Light.Offset[i]
	}
	opts := []light.LightBuilderOption{
		light.WithName(name),
		light.WithPosition(pos[0], pos[1], pos[2]),
		light.WithHexColor(p.Light.Color),
		light.WithIntensity(p.Light.Intensity),
		light.WithEnabled(enabled),
	}
	if p.Light.Range > 0 {
		opts = append(opts, light.WithRange(p.Light.Range))
	}
	if t == light.LightTypeDirectional {
		// aimed at the island centre
		opts = append(opts, light.WithDirection(-pos[0], -pos[1], -pos[2]))
	}
	return light.NewLight(t, opts...)
}
