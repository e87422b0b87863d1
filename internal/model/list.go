package model

import (
	"fmt"
	"strings"
)

// Header is the first line of List.String. It does not follow the list title.
const Header = "---- Today's Todos ----"

// List is an ordered collection of items. Insertion order is kept and
// duplicates are allowed. A List is not safe for concurrent use.
type List struct {
	title string
	items []*Item
}

func NewList(title string) *List {
	return &List{title: title}
}

func (l *List) Title() string { return l.title }
func (l *List) Size() int     { return len(l.items) }

// Add appends it to the end of the list.
func (l *List) Add(it *Item) error {
	if it == nil {
		return ErrNotItem
	}
	l.items = append(l.items, it)
	return nil
}

// First returns the first item; ok is false when the list is empty.
func (l *List) First() (*Item, bool) {
	if len(l.items) == 0 {
		return nil, false
	}
	return l.items[0], true
}

// Last returns the last item; ok is false when the list is empty.
func (l *List) Last() (*Item, bool) {
	if len(l.items) == 0 {
		return nil, false
	}
	return l.items[len(l.items)-1], true
}

func (l *List) validateIndex(idx int) error {
	if idx < 0 || idx >= len(l.items) {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, idx)
	}
	return nil
}

func (l *List) ItemAt(idx int) (*Item, error) {
	if err := l.validateIndex(idx); err != nil {
		return nil, err
	}
	return l.items[idx], nil
}

func (l *List) MarkDoneAt(idx int) error {
	it, err := l.ItemAt(idx)
	if err != nil {
		return err
	}
	it.MarkDone()
	return nil
}

func (l *List) MarkUndoneAt(idx int) error {
	it, err := l.ItemAt(idx)
	if err != nil {
		return err
	}
	it.MarkUndone()
	return nil
}

// IsDone reports whether every item is done. An empty list is done.
func (l *List) IsDone() bool {
	for _, it := range l.items {
		if !it.IsDone() {
			return false
		}
	}
	return true
}

// Shift removes and returns the first item.
func (l *List) Shift() (*Item, bool) {
	if len(l.items) == 0 {
		return nil, false
	}
	it := l.items[0]
	l.items[0] = nil
	l.items = l.items[1:]
	return it, true
}

// Pop removes and returns the last item.
func (l *List) Pop() (*Item, bool) {
	n := len(l.items)
	if n == 0 {
		return nil, false
	}
	it := l.items[n-1]
	l.items[n-1] = nil
	l.items = l.items[:n-1]
	return it, true
}

// RemoveAt removes the item at idx and returns it. Later items move down
// one position.
func (l *List) RemoveAt(idx int) (*Item, error) {
	if err := l.validateIndex(idx); err != nil {
		return nil, err
	}
	it := l.items[idx]
	copy(l.items[idx:], l.items[idx+1:])
	l.items[len(l.items)-1] = nil
	l.items = l.items[:len(l.items)-1]
	return it, nil
}

// String renders the header followed by one line per item.
func (l *List) String() string {
	lines := make([]string, 0, len(l.items))
	for _, it := range l.items {
		lines = append(lines, it.String())
	}
	return Header + "\n" + strings.Join(lines, "\n")
}

// ForEach calls fn for every item in order. fn must not modify the list.
func (l *List) ForEach(fn func(*Item)) {
	for _, it := range l.items {
		fn(it)
	}
}

// Filter returns a new list with the same title holding the items for which
// keep returns true. Items are shared with l, not copied.
func (l *List) Filter(keep func(*Item) bool) *List {
	out := NewList(l.title)
	l.ForEach(func(it *Item) {
		if keep(it) {
			out.items = append(out.items, it)
		}
	})
	return out
}

// Items returns a copy of the item slice.
func (l *List) Items() []*Item {
	out := make([]*Item, len(l.items))
	copy(out, l.items)
	return out
}

// Counts returns the number of done and pending items.
func (l *List) Counts() (done, pending int) {
	for _, it := range l.items {
		if it.IsDone() {
			done++
		} else {
			pending++
		}
	}
	return
}

// Done and Pending are predicates for Filter.
func Done(it *Item) bool    { return it.IsDone() }
func Pending(it *Item) bool { return !it.IsDone() }
