package rangeio

import (
	"io"
)

// Stream is a character output stream with formatting state. It is the only
// collaborator the write loop depends on.
//
// Insert renders v using the current formatting state and returns the stream
// so insertions can be chained. A failed insertion leaves the stream in a
// failed state, which Good reports; later insertions are no-ops.
type Stream interface {
	Insert(v any) Stream
	Width() int
	SetWidth(w int) int
	Fill() rune
	SetFill(c rune) rune
	Precision() int
	SetPrecision(p int) int
	Flags() Flags
	SetFlags(f Flags) Flags
	Good() bool
}

// Writer is a [Stream] that renders values onto an io.Writer.
//
// Width is a one-shot attribute: it applies to the next formatted insertion
// and is then reset to zero. All other attributes persist until changed.
// The first write error puts the Writer into a failed state.
type Writer struct {
	w         io.Writer
	width     int
	fill      rune
	precision int
	flags     Flags
	err       error
	written   int64
}

var _ Stream = (*Writer)(nil)

// NewWriter returns a Writer with the [DefaultFormat] attributes.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:         w,
		fill:      DefaultFill,
		precision: DefaultPrecision,
		flags:     DefaultFlags,
	}
}

// Insert writes v. Values implementing [Inserter] are handed the stream;
// everything else is rendered according to the current formatting state.
func (w *Writer) Insert(v any) Stream {
	if ins, ok := v.(Inserter); ok {
		ins.InsertTo(w)
		return w
	}
	if w.err != nil {
		return w
	}
	if v == nil {
		w.err = ErrNilValue
		return w
	}
	w.put(w.pad(w.render(v)))
	w.width = 0
	return w
}

// WriteString writes s verbatim, ignoring the formatting state. It makes
// Writer an io.StringWriter.
func (w *Writer) WriteString(s string) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	before := w.written
	w.put(s)
	return int(w.written - before), w.err
}

func (w *Writer) put(s string) {
	if s == "" {
		return
	}
	n, err := io.WriteString(w.w, s)
	w.written += int64(n)
	if err != nil {
		w.err = err
	}
}

// Width returns the field width for the next insertion.
func (w *Writer) Width() int { return w.width }

// SetWidth sets the field width and returns the previous one.
func (w *Writer) SetWidth(width int) int {
	old := w.width
	w.width = width
	return old
}

// Fill returns the padding character.
func (w *Writer) Fill() rune { return w.fill }

// SetFill sets the padding character and returns the previous one.
func (w *Writer) SetFill(c rune) rune {
	old := w.fill
	w.fill = c
	return old
}

// Precision returns the floating-point precision.
func (w *Writer) Precision() int { return w.precision }

// SetPrecision sets the floating-point precision and returns the previous one.
func (w *Writer) SetPrecision(p int) int {
	old := w.precision
	w.precision = p
	return old
}

// Flags returns the formatting flags.
func (w *Writer) Flags() Flags { return w.flags }

// SetFlags replaces the formatting flags and returns the previous ones.
func (w *Writer) SetFlags(f Flags) Flags {
	old := w.flags
	w.flags = f
	return old
}

// Setf sets the flags in f within mask, clearing the rest of mask, and
// returns the previous flags.
//
//	out.Setf(rangeio.Hex, rangeio.BaseField)
//	out.Setf(rangeio.Uppercase, rangeio.Uppercase)
func (w *Writer) Setf(f, mask Flags) Flags {
	old := w.flags
	w.flags = (w.flags &^ mask) | (f & mask)
	return old
}

// Unsetf clears the flags in mask.
func (w *Writer) Unsetf(mask Flags) {
	w.flags &^= mask
}

// Good reports whether no insertion has failed.
func (w *Writer) Good() bool { return w.err == nil }

// Err returns the error that failed the stream, if any.
func (w *Writer) Err() error { return w.err }

// Clear resets the failed state so insertions resume.
func (w *Writer) Clear() { w.err = nil }

// Written returns the number of bytes written to the underlying io.Writer.
func (w *Writer) Written() int64 { return w.written }
