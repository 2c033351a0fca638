package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChild(id string) GameObject
	GetChildren() []GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
}

// childObjects keeps children in insertion order with an index by ID.
type childObjects struct {
	idxIDObjects map[string]GameObject
	ordered      []GameObject
}

func newChildObjects() *childObjects {
	return &childObjects{
		idxIDObjects: make(map[string]GameObject),
	}
}

func (c *childObjects) Add(id string, obj GameObject) {
	c.idxIDObjects[id] = obj
	c.ordered = append(c.ordered, obj)
}

func (c *childObjects) Get(id string) GameObject {
	return c.idxIDObjects[id]
}

func (c *childObjects) Remove(id string) {
	obj, ok := c.idxIDObjects[id]
	if !ok {
		return
	}
	delete(c.idxIDObjects, id)
	for i, o := range c.ordered {
		if o == obj {
			c.ordered = append(c.ordered[:i], c.ordered[i+1:]...)
			return
		}
	}
}

// BaseObject implements the tree plumbing shared by every game object.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *childObjects
}

var _ GameObject = &BaseObject{}

type NewBaseObjectOpts struct {
	// ZIndex orders siblings when drawing. Higher values are drawn later.
	ZIndex int
}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id:       id,
		children: newChildObjects(),
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) Init() error                 { return nil }
func (o *BaseObject) Destroy() error              { return nil }
func (o *BaseObject) Update() error               { return nil }
func (o *BaseObject) Draw(screen *ebiten.Image)   {}
func (o *BaseObject) GetID() string               { return o.id }
func (o *BaseObject) GetZIndex() int              { return o.zIndex }
func (o *BaseObject) GetParent() GameObject       { return o.parent }
func (o *BaseObject) SetParent(parent GameObject) { o.parent = parent }

func (o *BaseObject) GetChild(id string) GameObject {
	return o.children.Get(id)
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.ordered
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

// RemoveFromParent detaches the object from its parent, if any.
func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return nil
	}
	return o.parent.RemoveChild(o.id)
}

// InitTree initializes an object and then its children.
func InitTree(obj GameObject) error {
	if err := obj.Init(); err != nil {
		return fmt.Errorf("failed to initialize object %s: %v", obj.GetID(), err)
	}
	for _, child := range obj.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the children of an object and then the object itself.
func DestroyTree(obj GameObject) error {
	for _, child := range obj.GetChildren() {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := obj.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy object %s: %v", obj.GetID(), err)
	}
	return nil
}

// UpdateTree updates an object and then its children. Children may remove
// themselves while updating.
func UpdateTree(obj GameObject) error {
	if err := obj.Update(); err != nil {
		return fmt.Errorf("failed to update object %s: %v", obj.GetID(), err)
	}
	children := append([]GameObject(nil), obj.GetChildren()...)
	for _, child := range children {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DrawTree draws an object and then its children on top of it.
func DrawTree(obj GameObject, screen *ebiten.Image) {
	obj.Draw(screen)
	for _, child := range obj.GetChildren() {
		DrawTree(child, screen)
	}
}
