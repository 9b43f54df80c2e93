package scene

import "errors"

var (
	// ErrItemNotFound is returned when an item ID does not resolve.
	ErrItemNotFound = errors.New("item not found")

	// ErrUnknownKind is returned for furniture names outside the catalog.
	ErrUnknownKind = errors.New("unknown furniture kind")

	// ErrInvalidRoom is returned when a room dimension is not positive.
	ErrInvalidRoom = errors.New("invalid room dimensions")
)
