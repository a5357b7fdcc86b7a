package game_object

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-diorama/common"
	"github.com/Carmen-Shannon/oxy-diorama/engine/light"
	"github.com/stretchr/testify/assert"
)

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()

	assert.True(t, obj.Visible())
	assert.Equal(t, [3]float32{}, obj.Position())
	assert.Equal(t, [3]float32{1, 1, 1}, obj.Scale())
	assert.Nil(t, obj.Mesh())
	assert.Nil(t, obj.Light())
	assert.Empty(t, obj.Clips())
}

func TestGameObjectOptions(t *testing.T) {
	obj := NewGameObject(
		WithName("car"),
		WithAsset("models/car.glb"),
		WithPosition(0, 0.15, -9.5),
		WithScale(2, 2, 2),
		WithVisible(false),
		WithClips(Clip{Name: "Fly", Duration: 1.5}),
	)

	assert.Equal(t, "car", obj.Name())
	assert.Equal(t, "models/car.glb", obj.Asset())
	assert.Equal(t, [3]float32{0, 0.15, -9.5}, obj.Position())
	assert.Equal(t, [3]float32{2, 2, 2}, obj.Scale())
	assert.False(t, obj.Visible())
	assert.Len(t, obj.Clips(), 1)
}

func TestSetPositionMovesAttachedLight(t *testing.T) {
	l := light.NewLight(light.LightTypePoint)
	obj := NewGameObject(WithLight(l))

	obj.SetPosition(1, 2, 3)

	assert.Equal(t, [3]float32{1, 2, 3}, l.Position())
}

func TestSetYawKeepsOtherAxes(t *testing.T) {
	obj := NewGameObject(WithRotation(0.5, 0, 0.25))

	obj.SetYaw(-1)

	assert.Equal(t, [3]float32{0.5, -1, 0.25}, obj.Rotation())
}

func TestSetTransformZeroScaleBecomesUnit(t *testing.T) {
	obj := NewGameObject()

	obj.SetTransform(common.Transform{Position: [3]float32{2, 0.3, 7.5}})

	assert.Equal(t, [3]float32{2, 0.3, 7.5}, obj.Position())
	assert.Equal(t, [3]float32{1, 1, 1}, obj.Scale())
}

func TestSetClipsRewinds(t *testing.T) {
	obj := NewGameObject()
	obj.SetClipTime(1, 0.7)

	obj.SetClips([]Clip{{Name: "a", Duration: 1}})

	idx, tm := obj.ClipTime()
	assert.Equal(t, 0, idx)
	assert.Equal(t, float32(0), tm)
}

func TestAddChildIgnoresNil(t *testing.T) {
	obj := NewGameObject()
	obj.AddChild(nil)
	obj.AddChild(NewGameObject(WithName("wheel")))

	assert.Len(t, obj.Children(), 1)
	assert.Equal(t, "wheel", obj.Children()[0].Name())
}
