package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize keeps individual writes under a typical MTU so frames stream
// smoothly over SSH.
const maxChunkSize = 1400

// Escape sequences for screen control.
const (
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
)

// ChunkWriter collects one frame of terminal output and flushes it in
// MTU-sized chunks. Cursor positions passed to MoveCursor and WriteAt are
// relative to the render area; the offset is added automatically.
type ChunkWriter struct {
	buf    strings.Builder
	out    *bufio.Writer
	num    [20]byte
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter flushing to w.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		out:    bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the render area offset after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends a cursor move to 1-based (col, row) of the render area.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.num[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.num[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer so a Canvas can render into the frame.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.buf.Write(p)
}

// WriteString appends s to the frame.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteAt writes s starting at 1-based (col, row) of the render area.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// Len returns the number of bytes buffered for the current frame.
func (cw *ChunkWriter) Len() int {
	return cw.buf.Len()
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush sends the buffered frame and resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := cw.out.WriteString(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return cw.out.Flush()
}

// TermSizeFunc reports the terminal size in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of the process's stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Layout is where the render area sits inside a terminal.
type Layout struct {
	Cols, Rows           int
	OffsetCol, OffsetRow int
}

// FitTerminal clamps the terminal to at most maxCols x maxRows cells and
// centers the resulting render area.
func FitTerminal(width, height, maxCols, maxRows int) Layout {
	l := Layout{Cols: max(width, 0), Rows: max(height, 0)}
	l.Cols = min(l.Cols, maxCols)
	l.Rows = min(l.Rows, maxRows)
	l.OffsetCol = (max(width, 0) - l.Cols) / 2
	l.OffsetRow = (max(height, 0) - l.Rows) / 2
	return l
}

// ClearScreen clears the terminal and homes the cursor.
func ClearScreen(w io.Writer) {
	io.WriteString(w, seqClear)
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	io.WriteString(w, seqHideCursor)
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	io.WriteString(w, seqShowCursor)
}
