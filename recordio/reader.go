package recordio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrCorrupt reports a frame whose checksum does not match its contents.
var ErrCorrupt = errors.New("recordio: corrupt record")

// Reader decodes framed records from an underlying stream.
type Reader struct {
	buf *bufio.Reader
}

// NewReader returns a Reader decoding records from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{buf: bufio.NewReader(r)}
}

// Next returns the next record's payload, io.EOF at a clean end of stream,
// or ErrCorrupt when a checksum fails. A stream truncated mid-record yields
// io.ErrUnexpectedEOF.
func (r *Reader) Next() ([]byte, error) {
	var header [12]byte
	if _, err := io.ReadFull(r.buf, header[:1]); err != nil {
		if err == io.EOF {
			// No bytes at all: clean end of stream.
			return nil, io.EOF
		}
		return nil, err
	}
	if _, err := io.ReadFull(r.buf, header[1:]); err != nil {
		return nil, io.ErrUnexpectedEOF
	}

	length := binary.LittleEndian.Uint64(header[:8])
	if got, want := maskedCRC(header[:8]), binary.LittleEndian.Uint32(header[8:]); got != want {
		return nil, fmt.Errorf("%w: length checksum mismatch", ErrCorrupt)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r.buf, payload); err != nil {
		return nil, io.ErrUnexpectedEOF
	}
	var footer [4]byte
	if _, err := io.ReadFull(r.buf, footer[:]); err != nil {
		return nil, io.ErrUnexpectedEOF
	}
	if got, want := maskedCRC(payload), binary.LittleEndian.Uint32(footer[:]); got != want {
		return nil, fmt.Errorf("%w: payload checksum mismatch", ErrCorrupt)
	}
	return payload, nil
}

// ReadFile reads every record in the single-shard container at path.
// An empty file is valid and yields an empty dataset.
func ReadFile(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := NewReader(f)
	var records [][]byte
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		records = append(records, rec)
	}
}
