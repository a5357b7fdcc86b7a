package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-diorama/engine/light"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDescription(t *testing.T) {
	d, err := DefaultDescription()
	require.NoError(t, err)

	roles := make(map[Role]int)
	for _, p := range d.Placements {
		roles[p.Role]++
	}
	assert.Equal(t, "island", d.Name)
	assert.Equal(t, 1, roles[RoleRiver])
	assert.Equal(t, 1, roles[RoleCar])
	assert.Equal(t, 1, roles[RolePlane])
	assert.Equal(t, 1, roles[RoleCarousel])
	assert.Equal(t, 8, roles[RoleStreetLight])
	assert.Equal(t, 1, roles[RoleMainLight])
	assert.Equal(t, 1, roles[RoleAmbientLight])
	assert.Positive(t, roles[RoleDecoration])
}

func TestPopulateDefault(t *testing.T) {
	d, err := DefaultDescription()
	require.NoError(t, err)
	s := NewScene(d.Name)

	pending := Populate(s, d)

	main, ok := s.MainLight()
	require.True(t, ok)
	assert.Equal(t, light.LightTypeDirectional, main.Type())
	assert.Equal(t, float32(3), main.Intensity())
	mainDir := main.Direction()
	assert.InDeltaSlice(t, []float32{0, -1, 0}, mainDir[:], 1e-6)

	amb, ok := s.AmbientLight()
	require.True(t, ok)
	assert.Equal(t, float32(30), amb.Intensity())
	assert.Equal(t, uint32(0x404040), amb.Color().Hex())

	lamps := s.StreetLights()
	require.Equal(t, 8, lamps.Len())
	assert.True(t, lamps.NoneVisible())
	first := lamps.Lights()[0]
	firstPos := first.Position()
	assert.InDeltaSlice(t, []float32{-4.2, 1.2, 0.9}, firstPos[:], 1e-5)
	assert.Equal(t, float32(10), first.Range())
	assert.Equal(t, uint32(0xffaa33), first.Color().Hex())

	river, ok := s.River()
	require.True(t, ok)
	assert.Equal(t, 96, river.VertexCount())
	obj, _ := s.Object(RoleRiver)
	assert.Equal(t, [3]float32{6.5, 0.01, 0.6}, obj.Position())

	_, ok = s.Object(RoleCar)
	assert.False(t, ok, "asset-backed props are only registered once loaded")
	for _, p := range pending {
		assert.NotEmpty(t, p.Asset)
	}
	assert.Len(t, pending, len(d.Placements)-3)
}

func TestParseDescriptionRejectsUnknownRole(t *testing.T) {
	_, err := ParseDescription([]byte(`
[[placement]]
asset = "boat.glb"
role = "boat"
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPlacement)
	assert.Contains(t, err.Error(), "placement 0")
}

func TestParseDescriptionRejectsUnknownField(t *testing.T) {
	_, err := ParseDescription([]byte(`
[[placement]]
asset = "car.glb"
role = "car"
colour = 1
`))
	assert.Error(t, err)
}

func TestParseDescriptionRequiresRiverMesh(t *testing.T) {
	_, err := ParseDescription([]byte(`
[[placement]]
role = "river"
`))
	assert.ErrorIs(t, err, ErrInvalidPlacement)
}

func TestParseDescriptionRejectsDuplicateCar(t *testing.T) {
	_, err := ParseDescription([]byte(`
[[placement]]
asset = "a.glb"
role = "car"

[[placement]]
asset = "b.glb"
role = "car"
`))
	assert.ErrorIs(t, err, ErrInvalidPlacement)
}

func TestPlacementTransformDefaultsScale(t *testing.T) {
	d, err := ParseDescription([]byte(`
[[placement]]
asset = "rock.glb"
position = [1, 2, 3]
`))
	require.NoError(t, err)
	tr := d.Placements[0].Transform()
	assert.Equal(t, [3]float32{1, 2, 3}, tr.Position)
	assert.Equal(t, [3]float32{1, 1, 1}, tr.Scale)
}

func TestLoadDescription(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(`name = "tiny"
[[placement]]
role = "ambient_light"
light = { color = 0x404040, intensity = 30 }
`), 0o644))

	d, err := LoadDescription(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", d.Name)

	_, err = LoadDescription(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
