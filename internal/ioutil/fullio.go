// Package ioutil implements the "full I/O" discipline the design notes
// call out: a short read or write on a blocking file or socket is retried
// rather than treated as success or immediate failure, and only a genuine
// error (or unexpected EOF while more data is required) is surfaced.
package ioutil

import (
	"fmt"
	"io"

	"github.com/PolarWolf314/enchive-go/internal/apperrors"
)

// FullRead reads exactly len(buf) bytes from r, retrying on short reads.
// It returns apperrors.ErrIO wrapping the underlying cause if fewer bytes
// than requested are available before EOF or a permanent error.
func FullRead(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	if err != nil {
		return fmt.Errorf("%w: short read: %v", apperrors.ErrIO, err)
	}
	return nil
}

// FullWrite writes all of buf to w, retrying on short writes.
func FullWrite(w io.Writer, buf []byte) error {
	total := 0
	for total < len(buf) {
		n, err := w.Write(buf[total:])
		if err != nil {
			return fmt.Errorf("%w: short write: %v", apperrors.ErrIO, err)
		}
		total += n
	}
	return nil
}
