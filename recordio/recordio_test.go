package recordio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_ZeroRecords_ProducesEmptyValidFile(t *testing.T) {
	// GIVEN no records
	path := filepath.Join(t.TempDir(), "metrics")

	// WHEN an empty dataset is written
	err := WriteFile(path, nil)
	require.NoError(t, err)

	// THEN the file exists and reads back as an empty dataset
	records, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestWriteFile_MultipleRecords_RoundTripsInOrder(t *testing.T) {
	// GIVEN several payloads, including an empty one
	path := filepath.Join(t.TempDir(), "metrics")
	in := [][]byte{[]byte("first"), {}, []byte("third record payload")}

	// WHEN written and read back
	require.NoError(t, WriteFile(path, in))
	out, err := ReadFile(path)
	require.NoError(t, err)

	// THEN payloads and order are preserved
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, string(in[i]), string(out[i]), "record %d", i)
	}
}

func TestWriteFile_AnyRecordCount_SingleShard(t *testing.T) {
	// GIVEN datasets of size 0, 1, and N
	for _, n := range []int{0, 1, 100} {
		dir := t.TempDir()
		path := filepath.Join(dir, "out")
		records := make([][]byte, n)
		for i := range records {
			records[i] = []byte{byte(i)}
		}

		// WHEN written
		require.NoError(t, WriteFile(path, records))

		// THEN exactly one file exists at exactly the configured path
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1, "n=%d", n)
		assert.Equal(t, "out", entries[0].Name(), "n=%d", n)
	}
}

func TestWriteFile_MissingParentDir_CreatesIt(t *testing.T) {
	// GIVEN a path whose parent directory does not exist yet
	path := filepath.Join(t.TempDir(), "nested", "deeper", "plots")

	// WHEN written
	err := WriteFile(path, [][]byte{[]byte("p")})

	// THEN the write succeeds
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestReadFile_CorruptPayload_ReturnsErrCorrupt(t *testing.T) {
	// GIVEN a valid file with one record
	path := filepath.Join(t.TempDir(), "metrics")
	require.NoError(t, WriteFile(path, [][]byte{[]byte("payload-bytes")}))

	// WHEN a payload byte is flipped on disk
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[14] ^= 0xff // inside the payload, past the 12-byte header
	require.NoError(t, os.WriteFile(path, data, 0o644))

	// THEN reading reports corruption
	_, err = ReadFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorrupt), "expected ErrCorrupt, got: %v", err)
}

func TestReadFile_CorruptLengthWord_ReturnsErrCorrupt(t *testing.T) {
	// GIVEN a valid file with one record
	path := filepath.Join(t.TempDir(), "metrics")
	require.NoError(t, WriteFile(path, [][]byte{[]byte("payload-bytes")}))

	// WHEN a length byte is flipped on disk
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[0] ^= 0xff
	require.NoError(t, os.WriteFile(path, data, 0o644))

	// THEN reading reports corruption
	_, err = ReadFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorrupt), "expected ErrCorrupt, got: %v", err)
}

func TestReadFile_TruncatedRecord_ReturnsUnexpectedEOF(t *testing.T) {
	// GIVEN a file cut off mid-record
	path := filepath.Join(t.TempDir(), "metrics")
	require.NoError(t, WriteFile(path, [][]byte{[]byte("payload-bytes")}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data[:len(data)-2], 0o644))

	// WHEN read back
	_, err = ReadFile(path)

	// THEN truncation is reported
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF), "expected ErrUnexpectedEOF, got: %v", err)
}

func TestWriteFile_FailedWrite_LeavesNoPartialFile(t *testing.T) {
	// GIVEN an output path that collides with an existing directory
	dir := t.TempDir()
	path := filepath.Join(dir, "metrics")
	require.NoError(t, os.Mkdir(path, 0o755))

	// WHEN the write fails at the final rename
	err := WriteFile(path, [][]byte{[]byte("x")})

	// THEN the error surfaces and no temp file remains alongside
	require.Error(t, err)
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1) // only the pre-existing directory
}

func TestWriterCount_TracksRecordsWritten(t *testing.T) {
	// GIVEN a streaming writer
	path := filepath.Join(t.TempDir(), "out")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := NewWriter(f)

	// WHEN three records are written
	for i := 0; i < 3; i++ {
		require.NoError(t, w.Write([]byte{byte(i)}))
	}
	require.NoError(t, w.Flush())

	// THEN the count matches
	assert.Equal(t, 3, w.Count())
}
