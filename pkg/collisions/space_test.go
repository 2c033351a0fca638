package collisions

import (
	"testing"

	"github.com/cbodonnell/balloonpop/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func newBalloon(id string, x, y, size float64) *types.Balloon {
	return &types.Balloon{
		ID:      id,
		XOrigin: x,
		Y:       y,
		Size:    size,
		Status:  types.BalloonStatusActive,
	}
}

func TestScreenPosition(t *testing.T) {
	viewport := types.Viewport{Width: 640, Height: 480}
	x, y := ScreenPosition(newBalloon("a", 100, 80, 150), viewport)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 250.0, y)
}

func TestHitSpace_BalloonAt(t *testing.T) {
	viewport := types.Viewport{Width: 640, Height: 480}
	// a occupies x 100-250, y 250-400 on screen; b overlaps it and is newer
	a := newBalloon("a", 100, 80, 150)
	b := newBalloon("b", 200, 80, 150)
	popping := newBalloon("popping", 450, 80, 150)
	popping.Status = types.BalloonStatusPopping

	h := NewHitSpace(viewport)
	h.Sync([]*types.Balloon{a, b, popping}, viewport)
	assert.Equal(t, 2, h.Len())

	tests := []struct {
		name   string
		x, y   float64
		want   string
		wantOK bool
	}{
		{name: "only a", x: 120, y: 300, want: "a", wantOK: true},
		{name: "overlap picks newest", x: 220, y: 300, want: "b", wantOK: true},
		{name: "only b", x: 340, y: 300, want: "b", wantOK: true},
		{name: "empty sky", x: 120, y: 50},
		{name: "popping balloon", x: 500, y: 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := h.BalloonAt(tt.x, tt.y)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHitSpace_SyncFollowsBalloons(t *testing.T) {
	viewport := types.Viewport{Width: 640, Height: 480}
	a := newBalloon("a", 100, 80, 150)

	h := NewHitSpace(viewport)
	h.Sync([]*types.Balloon{a}, viewport)

	a.Y += 200
	h.Sync([]*types.Balloon{a}, viewport)
	_, ok := h.BalloonAt(120, 300)
	assert.False(t, ok)
	got, ok := h.BalloonAt(120, 100)
	assert.True(t, ok)
	assert.Equal(t, "a", got)

	h.Sync(nil, viewport)
	assert.Equal(t, 0, h.Len())
	_, ok = h.BalloonAt(120, 100)
	assert.False(t, ok)

	resized := types.Viewport{Width: 320, Height: 240}
	a.Y = 0
	h.Sync([]*types.Balloon{a}, resized)
	got, ok = h.BalloonAt(120, 100)
	assert.True(t, ok)
	assert.Equal(t, "a", got)
	_, ok = h.BalloonAt(120, 60)
	assert.False(t, ok)
}
