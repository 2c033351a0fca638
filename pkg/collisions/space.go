package collisions

import (
	"github.com/cbodonnell/balloonpop/pkg/game/types"
	"github.com/solarlune/resolv"
)

const (
	CollisionSpaceTagBalloon string = "balloon"

	// CellSize is the width and height of a collision space cell in pixels
	CellSize = 32
)

// HitSpace resolves screen points to the balloons under them.
// Screen coordinates grow downward from the top-left corner.
type HitSpace struct {
	space    *resolv.Space
	viewport types.Viewport
	objects  map[string]*resolv.Object
	order    map[string]int
}

func NewHitSpace(viewport types.Viewport) *HitSpace {
	h := &HitSpace{}
	h.reset(viewport)
	return h
}

func (h *HitSpace) reset(viewport types.Viewport) {
	w, ht := int(viewport.Width), int(viewport.Height)
	cols, rows := w/CellSize+1, ht/CellSize+1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	h.space = resolv.NewSpace(cols*CellSize, rows*CellSize, CellSize, CellSize)
	h.viewport = viewport
	h.objects = make(map[string]*resolv.Object)
	h.order = make(map[string]int)
}

// Sync mirrors the active balloons into the space. Balloons that are popping
// or gone are dropped so they can no longer be hit.
func (h *HitSpace) Sync(balloons []*types.Balloon, viewport types.Viewport) {
	if viewport != h.viewport {
		h.reset(viewport)
	}

	seen := make(map[string]bool, len(balloons))
	for i, b := range balloons {
		if !b.IsActive() {
			continue
		}
		seen[b.ID] = true
		h.order[b.ID] = i
		x, y := ScreenPosition(b, viewport)
		obj, ok := h.objects[b.ID]
		if !ok {
			obj = resolv.NewObject(x, y, b.Size, b.Size, CollisionSpaceTagBalloon)
			obj.Data = b.ID
			h.space.Add(obj)
			h.objects[b.ID] = obj
			continue
		}
		obj.Position.X = x
		obj.Position.Y = y
		obj.Update()
	}

	for id, obj := range h.objects {
		if seen[id] {
			continue
		}
		h.space.Remove(obj)
		delete(h.objects, id)
		delete(h.order, id)
	}
}

// BalloonAt returns the ID of the topmost balloon containing the point.
func (h *HitSpace) BalloonAt(x, y float64) (string, bool) {
	probe := resolv.NewObject(x, y, 1, 1)
	h.space.Add(probe)
	defer h.space.Remove(probe)

	collision := probe.Check(0, 0, CollisionSpaceTagBalloon)
	if collision == nil {
		return "", false
	}

	best, bestOrder := "", -1
	for _, obj := range collision.Objects {
		id, ok := obj.Data.(string)
		if !ok {
			continue
		}
		if x < obj.Position.X || x >= obj.Position.X+obj.Size.X || y < obj.Position.Y || y >= obj.Position.Y+obj.Size.Y {
			continue
		}
		// later spawns are drawn on top
		if order := h.order[id]; order > bestOrder {
			best, bestOrder = id, order
		}
	}
	return best, bestOrder >= 0
}

// Len returns the number of hittable balloons.
func (h *HitSpace) Len() int {
	return len(h.objects)
}

// ScreenPosition converts a balloon's bottom-relative position into the
// top-left corner of its bounding square in screen coordinates.
func ScreenPosition(b *types.Balloon, viewport types.Viewport) (float64, float64) {
	return b.X(), viewport.Height - b.Y - b.Size
}
