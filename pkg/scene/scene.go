// Package scene holds the editable furniture layout: the room, the items
// placed in it, lighting and the current selection.
//
// A Scene is not safe for concurrent use. It is owned by a single loop
// goroutine which reads it through Snapshot.
package scene

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/taigrr/roomcraft/pkg/math3d"
)

// Scene is the mutable scene model.
type Scene struct {
	room     Room
	lighting Lighting
	items    []Item
	selected string

	nextSub     int
	subscribers []subscriber
}

type subscriber struct {
	id int
	fn func(Change)
}

// New returns a scene with the default room and lighting and no items.
func New() *Scene {
	return &Scene{
		room:     DefaultRoom(),
		lighting: DefaultLighting(),
	}
}

// Subscribe registers fn to be called after every mutation. Subscribers run
// in registration order. The returned function removes the subscription.
func (s *Scene) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := s.nextSub
	s.nextSub++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscriber) bool {
			return sub.id == id
		})
	}
}

func (s *Scene) publish(kind ChangeKind, itemID string) {
	c := Change{Kind: kind, ItemID: itemID}
	for _, sub := range slices.Clone(s.subscribers) {
		sub.fn(c)
	}
}

// Snapshot returns a deep copy of the current scene.
func (s *Scene) Snapshot() Snapshot {
	src := Snapshot{
		Room:       s.room,
		Lighting:   s.lighting,
		Items:      s.items,
		SelectedID: s.selected,
	}
	var dst Snapshot
	if err := copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true}); err != nil {
		// src and dst share a type, so copier cannot reject them.
		panic(fmt.Sprintf("scene: snapshot copy: %v", err))
	}
	return dst
}

// Room returns the current room.
func (s *Scene) Room() Room { return s.room }

// Lighting returns the current lighting.
func (s *Scene) Lighting() Lighting { return s.lighting }

// Len returns the number of items.
func (s *Scene) Len() int { return len(s.items) }

// SelectedID returns the selected item ID, or "" when nothing is selected.
func (s *Scene) SelectedID() string { return s.selected }

func (s *Scene) index(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Item returns the item with the given ID.
func (s *Scene) Item(id string) (Item, error) {
	i := s.index(id)
	if i < 0 {
		return Item{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return s.items[i], nil
}

// AddItem appends it to the scene. An empty ID is replaced by a fresh one.
func (s *Scene) AddItem(it Item) Item {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	s.items = append(s.items, it)
	s.publish(ItemAdded, it.ID)
	return it
}

// RemoveItem deletes the item with the given ID. Removing the selected item
// clears the selection.
func (s *Scene) RemoveItem(id string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.publish(ItemRemoved, id)
	if s.selected == id {
		s.selected = ""
		s.publish(SelectionChanged, "")
	}
	return nil
}

// UpdateItem replaces the item sharing it.ID.
func (s *Scene) UpdateItem(it Item) error {
	i := s.index(it.ID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, it.ID)
	}
	s.items[i] = it
	s.publish(ItemUpdated, it.ID)
	return nil
}

// MoveItem offsets an item's position.
func (s *Scene) MoveItem(id string, dx, dy, dz float64) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	s.items[i].Move(dx, dy, dz)
	s.publish(ItemUpdated, id)
	return nil
}

// ScaleItem multiplies an item's dimensions by factor.
func (s *Scene) ScaleItem(id string, factor float64) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	s.items[i].Scale(factor)
	s.publish(ItemUpdated, id)
	return nil
}

// SetRoomDimensions resizes the room. Non-positive sizes are rejected with
// ErrInvalidRoom and leave the room untouched.
func (s *Scene) SetRoomDimensions(width, length, height float64) error {
	r := s.room
	r.Width, r.Length, r.Height = width, length, height
	if err := r.Validate(); err != nil {
		return err
	}
	s.room = r
	s.publish(RoomDimensionsChanged, "")
	return nil
}

// SetRoomColors sets the floor, wall and ceiling colors.
func (s *Scene) SetRoomColors(floor, walls, ceiling Color) {
	s.room.Floor, s.room.Walls, s.room.Ceiling = floor, walls, ceiling
	s.publish(RoomColorChanged, "")
}

// SetRoomShape sets the cosmetic shape label.
func (s *Scene) SetRoomShape(shape string) {
	s.room.Shape = shape
	s.publish(RoomShapeChanged, "")
}

// SetLighting replaces the lighting, clamping every control to its range.
func (s *Scene) SetLighting(l Lighting) {
	s.lighting = l.Clamped()
	s.publish(LightingChanged, "")
}

// Select marks the item with the given ID as selected.
func (s *Scene) Select(id string) error {
	if s.index(id) < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	if s.selected == id {
		return nil
	}
	s.selected = id
	s.publish(SelectionChanged, id)
	return nil
}

// SelectNext moves the selection to the next item in insertion order,
// wrapping around, and returns the new selected ID.
func (s *Scene) SelectNext() string {
	if len(s.items) == 0 {
		return ""
	}
	next := 0
	if i := s.index(s.selected); i >= 0 {
		next = (i + 1) % len(s.items)
	}
	s.selected = s.items[next].ID
	s.publish(SelectionChanged, s.selected)
	return s.selected
}

// ClearSelection deselects any selected item.
func (s *Scene) ClearSelection() {
	if s.selected == "" {
		return
	}
	s.selected = ""
	s.publish(SelectionChanged, "")
}

// Load replaces the whole scene with a copy of snap. A selection that does
// not resolve is dropped.
func (s *Scene) Load(snap Snapshot) {
	s.room = snap.Room
	s.lighting = snap.Lighting.Clamped()
	s.items = append([]Item(nil), snap.Items...)
	s.selected = ""
	if _, ok := snap.Selected(); ok {
		s.selected = snap.SelectedID
	}
	s.publish(ModelLoaded, "")
}

// Reset restores the default empty room.
func (s *Scene) Reset() {
	s.room = DefaultRoom()
	s.lighting = DefaultLighting()
	s.items = nil
	s.selected = ""
	s.publish(ModelReset, "")
}

// Bounds returns the box enclosing the room and every item.
func (s *Scene) Bounds() (lo, hi math3d.Vec3) {
	lo, hi = s.room.Min(), s.room.Max()
	for _, it := range s.items {
		lo = lo.Min(it.Min())
		hi = hi.Max(it.Max())
	}
	return lo, hi
}
