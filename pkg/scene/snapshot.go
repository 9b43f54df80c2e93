package scene

// Snapshot is a self-contained copy of the scene taken for one frame or
// one file. Mutating a snapshot never affects the Scene it came from.
type Snapshot struct {
	Room       Room     `yaml:"room"`
	Lighting   Lighting `yaml:"lighting"`
	Items      []Item   `yaml:"items"`
	SelectedID string   `yaml:"selected,omitempty"`
}

// DefaultSnapshot returns an empty default room.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Room:     DefaultRoom(),
		Lighting: DefaultLighting(),
	}
}

// Item looks up an item by ID.
func (s Snapshot) Item(id string) (Item, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Selected resolves the selected ID. It reports false when nothing is
// selected or the ID no longer names an item.
func (s Snapshot) Selected() (Item, bool) {
	if s.SelectedID == "" {
		return Item{}, false
	}
	return s.Item(s.SelectedID)
}
