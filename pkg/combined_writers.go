package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans a write out to all of its writers. A failing writer
// does not stop the others; its error is combined into the result.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w != nil {
			cw.Writers = append(cw.Writers, w)
		}
	}
	return cw
}

// Write reports len(p) if at least one writer took the whole buffer.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	written := false
	for _, w := range cw.Writers {
		n, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		if n == len(p) {
			written = true
		}
	}
	if !written {
		return 0, multierr.Append(err, io.ErrShortWrite)
	}
	return len(p), err
}
