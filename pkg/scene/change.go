package scene

// ChangeKind identifies what a scene mutation touched.
type ChangeKind int

const (
	ItemAdded ChangeKind = iota
	ItemRemoved
	ItemUpdated
	RoomDimensionsChanged
	RoomColorChanged
	RoomShapeChanged
	LightingChanged
	SelectionChanged
	ModelLoaded
	ModelReset
)

var changeNames = [...]string{
	ItemAdded:             "ItemAdded",
	ItemRemoved:           "ItemRemoved",
	ItemUpdated:           "ItemUpdated",
	RoomDimensionsChanged: "RoomDimensionsChanged",
	RoomColorChanged:      "RoomColorChanged",
	RoomShapeChanged:      "RoomShapeChanged",
	LightingChanged:       "LightingChanged",
	SelectionChanged:      "SelectionChanged",
	ModelLoaded:           "ModelLoaded",
	ModelReset:            "ModelReset",
}

func (k ChangeKind) String() string {
	if k >= 0 && int(k) < len(changeNames) {
		return changeNames[k]
	}
	return "ChangeKind(?)"
}

// Change is published to subscribers after every mutation. ItemID is set
// for item and selection changes.
type Change struct {
	Kind   ChangeKind
	ItemID string
}
