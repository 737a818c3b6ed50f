// Package sink abstracts where generated artifacts are written. The driver
// only ever sees the Context interface; the filesystem and in-memory
// implementations here cover the CLI and tests.
package sink

import "io"

// Context opens output sinks for generated artifacts. Paths are
// slash-separated and relative to the context root. Each returned writer is
// exclusively owned by the caller and must be closed on every exit path
// before the next artifact is opened.
type Context interface {
	Open(path string) (io.WriteCloser, error)
}
