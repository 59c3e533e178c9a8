package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestFitTerminal(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		expected Layout
	}{
		{name: "small", w: 80, h: 24, expected: Layout{Cols: 80, Rows: 24}},
		{name: "exact", w: 160, h: 70, expected: Layout{Cols: 160, Rows: 70}},
		{name: "wide", w: 200, h: 50, expected: Layout{Cols: 160, Rows: 50, OffsetCol: 20}},
		{name: "both", w: 171, h: 81, expected: Layout{Cols: 160, Rows: 70, OffsetCol: 5, OffsetRow: 5}},
		{name: "negative", w: -1, h: -1, expected: Layout{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitTerminal(tt.w, tt.h, 160, 70); got != tt.expected {
				t.Errorf("FitTerminal(%d, %d) = %+v, want %+v", tt.w, tt.h, got, tt.expected)
			}
		})
	}
}

func TestChunkWriter_Offset(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 3, 2)
	cw.WriteAt(1, 1, "Score: 0")

	if out.Len() != 0 {
		t.Fatal("nothing should reach the writer before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if got, want := out.String(), "\033[3;4HScore: 0"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if cw.Len() != 0 {
		t.Error("Flush should reset the buffer")
	}
}

// countingWriter records the size of each write it receives.
type countingWriter struct {
	sizes []int
	buf   bytes.Buffer
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.sizes = append(w.sizes, len(p))
	return w.buf.Write(p)
}

func TestChunkWriter_LargeFrame(t *testing.T) {
	w := &countingWriter{}
	cw := NewChunkWriter(w, 0, 0)
	frame := strings.Repeat("x", 20000)
	cw.WriteString(frame)

	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if w.buf.String() != frame {
		t.Error("frame corrupted in transit")
	}
	if len(w.sizes) < 2 {
		t.Errorf("expected the frame to be split, got %d writes", len(w.sizes))
	}
}

func TestScreenControl(t *testing.T) {
	var buf bytes.Buffer
	HideCursor(&buf)
	ClearScreen(&buf)
	ShowCursor(&buf)
	if got, want := buf.String(), "\033[?25l\033[H\033[2J\033[?25h"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
