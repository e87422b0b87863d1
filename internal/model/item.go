package model

// Markers used by Item.String.
const (
	DoneMarker   = "X"
	UndoneMarker = " "
)

// Item is the domain model for a todo entry.
// The title is fixed at construction; done only changes through
// MarkDone and MarkUndone.
type Item struct {
	title string
	done  bool
}

// NewItem returns a pending item. The title is not validated.
func NewItem(title string) *Item {
	return &Item{title: title}
}

func (it *Item) MarkDone()     { it.done = true }
func (it *Item) MarkUndone()   { it.done = false }
func (it *Item) IsDone() bool  { return it.done }
func (it *Item) Title() string { return it.title }

// String renders the item as "[X] title" or "[ ] title".
func (it *Item) String() string {
	marker := UndoneMarker
	if it.done {
		marker = DoneMarker
	}
	return "[" + marker + "] " + it.title
}
