package generator

import (
	"bytes"
	"fmt"

	"github.com/goliatone/go-javagen/pkg/sink"
)

// writeManifest writes one artifact path per line, newline terminated, to a
// sink opened at path. An empty list still produces the (empty) manifest:
// the caller asked for it by configuring the path.
func writeManifest(sc sink.Context, path string, lines []string) (err error) {
	out, err := sc.Open(path)
	if err != nil {
		return fmt.Errorf("generator: open manifest %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("generator: close manifest %s: %w", path, cerr)
		}
	}()

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if _, err := out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("generator: write manifest %s: %w", path, err)
	}
	return nil
}
