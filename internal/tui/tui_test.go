package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/todolist/internal/model"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func newTestModel(t *testing.T, titles ...string) (Model, *model.List) {
	t.Helper()
	l := model.NewList("Today's Todos")
	for _, title := range titles {
		if err := l.Add(model.NewItem(title)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	m := New(l, zerolog.Nop())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model), l
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestToggleMarksSelectedItem(t *testing.T) {
	m, l := newTestModel(t, "Buy milk", "Clean room")

	m = send(t, m, down, space)
	if it, _ := l.ItemAt(1); !it.IsDone() {
		t.Fatal("second item should be done")
	}
	if it, _ := l.ItemAt(0); it.IsDone() {
		t.Fatal("first item should stay pending")
	}

	send(t, m, space)
	if it, _ := l.ItemAt(1); it.IsDone() {
		t.Fatal("second toggle should mark undone")
	}
}

func TestRemoveSelectedItem(t *testing.T) {
	m, l := newTestModel(t, "a", "b", "c")
	m = send(t, m, down, runes("d"))
	if l.Size() != 2 {
		t.Fatalf("size = %d, want 2", l.Size())
	}
	if got := l.String(); got != model.Header+"\n[ ] a\n[ ] c" {
		t.Fatalf("list = %q", got)
	}
	if len(m.list.Items()) != 2 {
		t.Fatalf("rows = %d, want 2", len(m.list.Items()))
	}
}

func TestInlineAdd(t *testing.T) {
	m, l := newTestModel(t, "a")

	m = send(t, m, runes("a"))
	if !m.adding {
		t.Fatal("expected add mode")
	}
	m = send(t, m, enter)
	if m.addErr == "" || l.Size() != 1 {
		t.Fatal("empty title must be rejected")
	}

	m = send(t, m, runes("Feed the cats"), enter)
	if m.adding {
		t.Fatal("add mode should close after enter")
	}
	last, ok := l.Last()
	if !ok || last.Title() != "Feed the cats" {
		t.Fatalf("last = %v, %v", last, ok)
	}
	if !strings.Contains(m.list.Title, "Total") {
		t.Fatalf("title = %q", m.list.Title)
	}
}

func TestHideDone(t *testing.T) {
	m, l := newTestModel(t, "a", "b", "c")
	_ = l.MarkDoneAt(0)
	m.refresh()

	m = send(t, m, runes("c"))
	if len(m.list.Items()) != 2 {
		t.Fatalf("rows = %d, want 2 pending", len(m.list.Items()))
	}

	// toggling in the filtered view maps back to the right list index
	m = send(t, m, down, space)
	if it, _ := l.ItemAt(2); !it.IsDone() {
		t.Fatal("item c should be done")
	}
	if len(m.list.Items()) != 1 {
		t.Fatalf("rows = %d, want 1", len(m.list.Items()))
	}
	if l.Size() != 3 {
		t.Fatal("hiding must not remove items")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestViewRendersItems(t *testing.T) {
	m, _ := newTestModel(t, "Go shopping")
	if !strings.Contains(m.View(), "Go shopping") {
		t.Fatalf("view missing item:\n%s", m.View())
	}
}
