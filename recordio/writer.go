package recordio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Writer frames records onto an underlying stream. Call Flush before the
// underlying stream is closed.
type Writer struct {
	buf *bufio.Writer
	n   int
}

// NewWriter returns a Writer framing records onto w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriter(w)}
}

// Write appends one framed record.
func (w *Writer) Write(payload []byte) error {
	header := frameHeader(len(payload))
	if _, err := w.buf.Write(header[:]); err != nil {
		return err
	}
	if _, err := w.buf.Write(payload); err != nil {
		return err
	}
	var footer [4]byte
	binary.LittleEndian.PutUint32(footer[:], maskedCRC(payload))
	if _, err := w.buf.Write(footer[:]); err != nil {
		return err
	}
	w.n++
	return nil
}

// Count returns the number of records written so far.
func (w *Writer) Count() int { return w.n }

// Flush writes any buffered frames to the underlying stream.
func (w *Writer) Flush() error { return w.buf.Flush() }

// WriteFile writes all records to a single file at path, creating parent
// directories as needed. The records land in exactly one shard: one file at
// exactly the given path, no partition suffixes. The file appears atomically
// (temp file + rename), so a failed write leaves no partial file at path.
// Zero records is valid and produces an empty, well-formed container.
func WriteFile(path string, records [][]byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := NewWriter(tmp)
	for _, rec := range records {
		if err = w.Write(rec); err != nil {
			return fmt.Errorf("write record to %s: %w", path, err)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("finalize %s: %w", path, err)
	}

	logrus.Debugf("wrote %d records to '%s'", len(records), path)
	return nil
}
