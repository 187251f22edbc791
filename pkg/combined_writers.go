package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes to all given writers, combining the errors of
// the failed ones instead of aborting on the first failure.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: writers,
	}
}

func (cw CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Combine(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
