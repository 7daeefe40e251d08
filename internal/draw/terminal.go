package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Frame accumulates one frame of terminal output and writes it with a single
// Flush. Canvas.Render, HUD text and menus all append to the same Frame.
type Frame struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte // Scratch for allocation-free integer formatting
	offCol int
	offRow int
}

// NewFrame creates a Frame that writes to w. offsetCol and offsetRow are added
// to all MoveCursor coordinates.
func NewFrame(w io.Writer, offsetCol, offsetRow int) *Frame {
	return &Frame{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset after a resize.
func (f *Frame) SetOffset(offsetCol, offsetRow int) {
	f.offCol = offsetCol
	f.offRow = offsetRow
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based
// canvas coordinates.
func (f *Frame) MoveCursor(col, row int) {
	f.buf.WriteString("\033[")
	f.buf.Write(strconv.AppendInt(f.numBuf[:0], int64(row+f.offRow), 10))
	f.buf.WriteByte(';')
	f.buf.Write(strconv.AppendInt(f.numBuf[:0], int64(col+f.offCol), 10))
	f.buf.WriteByte('H')
}

// Write implements io.Writer for Canvas.Render.
func (f *Frame) Write(p []byte) (n int, err error) {
	return f.buf.Write(p)
}

// WriteString appends s.
func (f *Frame) WriteString(s string) {
	f.buf.WriteString(s)
}

// WriteAt writes s at a 1-based canvas position.
func (f *Frame) WriteAt(col, row int, s string) {
	f.MoveCursor(col, row)
	f.buf.WriteString(s)
}

// Foreground switches to a 24-bit foreground colour.
func (f *Frame) Foreground(r, g, b uint8) {
	f.color(38, r, g, b)
}

// Background switches to a 24-bit background colour.
func (f *Frame) Background(r, g, b uint8) {
	f.color(48, r, g, b)
}

func (f *Frame) color(layer int, r, g, b uint8) {
	f.buf.WriteString("\033[")
	f.buf.Write(strconv.AppendInt(f.numBuf[:0], int64(layer), 10))
	f.buf.WriteString(";2;")
	f.buf.Write(strconv.AppendUint(f.numBuf[:0], uint64(r), 10))
	f.buf.WriteByte(';')
	f.buf.Write(strconv.AppendUint(f.numBuf[:0], uint64(g), 10))
	f.buf.WriteByte(';')
	f.buf.Write(strconv.AppendUint(f.numBuf[:0], uint64(b), 10))
	f.buf.WriteByte('m')
}

// ResetStyle returns to the terminal's default colours.
func (f *Frame) ResetStyle() {
	f.buf.WriteString("\033[0m")
}

// Len reports how many bytes are pending.
func (f *Frame) Len() int {
	return f.buf.Len()
}

var _ io.Writer = (*Frame)(nil)

// Flush writes the pending frame and resets the buffer.
func (f *Frame) Flush() error {
	_, err := f.bufw.WriteString(f.buf.String())
	f.buf.Reset()
	if err != nil {
		return err
	}
	return f.bufw.Flush()
}

// TermSizeFunc returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns the size of os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves the cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}
