package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 4, 8, "░░░░░░░░   0%"},
		{2, 4, 8, "████░░░░  50%"},
		{4, 4, 8, "████████ 100%"},
		{0, 0, 2, "░░░░░   0%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
			t.Fatalf("ProgressBar(%d, %d, %d) = %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}

func TestPanel_MonoBorder(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{"one", "two"})
	out := buf.String()
	if !strings.Contains(out, "+") || !strings.Contains(out, "| one") {
		t.Fatalf("unexpected panel:\n%s", out)
	}
}

func TestOKFail(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "boom")
	if got, want := buf.String(), "x added\n! boom\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestSetTheme_FallsBackToClassic(t *testing.T) {
	SetTheme("unknown")
	if Current().Name != "classic" {
		t.Fatalf("theme = %q", Current().Name)
	}
	SetTheme("NEON")
	if Current().Name != "neon" {
		t.Fatalf("theme = %q", Current().Name)
	}
	DisableColor()
	if Current().BoxChecked != "◼" || Current().Name != "neon" {
		t.Fatalf("DisableColor dropped symbols: %+v", Current())
	}
	SetTheme("classic")
}
