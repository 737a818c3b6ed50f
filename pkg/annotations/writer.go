package annotations

import "io"

// Recorder is implemented by writers that can attribute emitted byte ranges
// to schema elements. Emitters probe their output writer for this interface
// and skip annotation calls when it is absent.
type Recorder interface {
	// Offset reports how many bytes have been written so far.
	Offset() int

	// Annotate attributes the half-open byte range [begin, end) to the
	// schema element at path.
	Annotate(path string, begin, end int)
}

// Writer wraps an output sink, tracking the byte offset of everything
// written and recording annotations into a Set.
type Writer struct {
	w      io.Writer
	set    *Set
	offset int
}

// NewWriter wraps w so emitted spans can be recorded into set.
func NewWriter(w io.Writer, set *Set) *Writer {
	return &Writer{w: w, set: set}
}

func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.offset += n
	return n, err
}

// Offset implements Recorder.
func (w *Writer) Offset() int {
	return w.offset
}

// Annotate implements Recorder.
func (w *Writer) Annotate(path string, begin, end int) {
	if w.set == nil {
		return
	}
	w.set.Add(path, begin, end)
}
