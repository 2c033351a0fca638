package objects

import (
	"testing"

	gametypes "github.com/cbodonnell/balloonpop/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedZIndexObject_AddChild(t *testing.T) {
	root := NewSortedZIndexObject("root")

	require.NoError(t, root.AddChild("b", NewBaseObject("b", &NewBaseObjectOpts{ZIndex: 10})))
	require.NoError(t, root.AddChild("a", NewBaseObject("a", &NewBaseObjectOpts{ZIndex: 1})))
	require.NoError(t, root.AddChild("c", NewBaseObject("c", &NewBaseObjectOpts{ZIndex: 10})))
	assert.Error(t, root.AddChild("a", NewBaseObject("a", nil)))

	var ids []string
	for _, child := range root.GetChildren() {
		ids = append(ids, child.GetID())
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
	assert.Equal(t, root, root.GetChild("b").GetParent())

	require.NoError(t, root.RemoveChild("b"))
	assert.Nil(t, root.GetChild("b"))
	assert.Len(t, root.GetChildren(), 2)
	assert.Error(t, root.RemoveChild("b"))
}

type selfRemovingObject struct {
	*BaseObject
}

func (o *selfRemovingObject) Update() error {
	return o.RemoveFromParent()
}

func TestUpdateTree_childRemovesItself(t *testing.T) {
	root := NewBaseObject("root", nil)
	child := &selfRemovingObject{BaseObject: NewBaseObject("child", nil)}
	require.NoError(t, root.AddChild("child", child))
	require.NoError(t, root.AddChild("other", NewBaseObject("other", nil)))

	require.NoError(t, UpdateTree(root))
	assert.Nil(t, root.GetChild("child"))
	assert.NotNil(t, root.GetChild("other"))
}

func TestBalloon_SetPopped(t *testing.T) {
	b := &gametypes.Balloon{ID: "b1", Size: 150, XOrigin: 100, Y: 0}
	o := NewBalloon(b, gametypes.Viewport{Width: 800, Height: 600})
	assert.False(t, o.IsPopped())

	o.SetPopped()
	assert.True(t, o.IsPopped())
	for i := 0; i < 20; i++ {
		require.NoError(t, o.Update())
	}
	assert.True(t, o.burst.Done())
}

func TestGrass_Offset(t *testing.T) {
	slow := NewGrass("slow", NewGrassOptions{Amplitude: 10, Frequency: 1})
	fast := NewGrass("fast", NewGrassOptions{Amplitude: 20, Frequency: 1.5})
	assert.Equal(t, 0.0, slow.Offset())

	for i := 0; i < 100; i++ {
		require.NoError(t, slow.Update())
		require.NoError(t, fast.Update())
	}
	assert.LessOrEqual(t, slow.Offset(), 10.0)
	assert.InDelta(t, 10*0.9092974268, slow.Offset(), 1e-6)
	assert.InDelta(t, 20*0.1411200081, fast.Offset(), 1e-6)
}

func TestScoreboard_SetDigits(t *testing.T) {
	s := NewScoreboard("score")
	s.SetDigits(1, 2, 3)
	h, te, o := s.Digits()
	assert.Equal(t, []int{1, 2, 3}, []int{h, te, o})
}
