package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-diorama/common"
	"github.com/Carmen-Shannon/oxy-diorama/engine/game_object"
	"github.com/Carmen-Shannon/oxy-diorama/engine/light"
	"github.com/Carmen-Shannon/oxy-diorama/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectAbsentUntilRegistered(t *testing.T) {
	s := NewScene("test")

	_, ok := s.Object(RoleCar)
	assert.False(t, ok)

	car := game_object.NewGameObject(game_object.WithName("car"))
	s.Register(RoleCar, car)

	got, ok := s.Object(RoleCar)
	require.True(t, ok)
	assert.Same(t, car, got)
	assert.NotZero(t, got.ID())
}

func TestRegisterAssignsSequentialIDs(t *testing.T) {
	s := NewScene("test")
	a := game_object.NewGameObject()
	b := game_object.NewGameObject()
	kept := game_object.NewGameObject(game_object.WithID(42))

	s.Register(RoleDecoration, a)
	s.Register(RoleDecoration, b)
	s.Register(RoleDecoration, kept)
	s.Register(RoleDecoration, nil)

	assert.Equal(t, uint64(1), a.ID())
	assert.Equal(t, uint64(2), b.ID())
	assert.Equal(t, uint64(42), kept.ID())
	assert.Equal(t, 3, s.Count())
	assert.Len(t, s.ObjectsByRole(RoleDecoration), 3)
}

func TestRiverRequiresMesh(t *testing.T) {
	s := NewScene("test")
	s.Register(RoleRiver, game_object.NewGameObject())

	_, ok := s.River()
	assert.False(t, ok)

	s.Register(RoleRiver, game_object.NewGameObject(game_object.WithMesh(model.NewPlaneMesh(1, 1, 1, 1))))
	m, ok := s.River()
	require.True(t, ok)
	assert.Equal(t, 4, m.VertexCount())
}

func TestLightsOrder(t *testing.T) {
	main := light.NewLight(light.LightTypeDirectional)
	amb := light.NewLight(light.LightTypeAmbient)
	lamp := light.NewLight(light.LightTypePoint)
	s := NewScene("test",
		WithBackground(common.ColorFromHex(0xB2DDF7)),
		WithMainLight(main),
		WithAmbientLight(amb),
		WithStreetLights(lamp),
	)

	assert.Equal(t, []light.Light{main, amb, lamp}, s.Lights())
	assert.Equal(t, uint32(0xB2DDF7), s.Background().Hex())
}
