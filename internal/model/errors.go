package model

import "errors"

var (
	// ErrNotItem is returned by List.Add for a nil item.
	ErrNotItem = errors.New("not a todo item")
	// ErrInvalidIndex is returned when an index does not name a position
	// currently held in the list.
	ErrInvalidIndex = errors.New("invalid index")
)
