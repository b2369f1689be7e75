package serialization

import (
	"fmt"
	"os"
)

// MmapReader provides memory-mapped, read-only access to a model blob.
//
// Layers loaded through Cursor alias the mapping directly, so the reader must
// stay open for as long as those layers are used.
type MmapReader struct {
	file   *os.File
	data   []byte // mmap'd region (read-only)
	size   int64
	closed bool
}

// NewMmapReader maps the file at path into memory.
//
// Important: Always call Close() when done to unmap the file (use defer).
func NewMmapReader(path string) (*MmapReader, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	var data []byte
	if stat.Size() > 0 {
		// Memory map the file (platform-specific implementation)
		data, err = mmapFile(file, stat.Size())
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("mmap failed: %w", err)
		}
	}

	return &MmapReader{
		file: file,
		data: data,
		size: stat.Size(),
	}, nil
}

// Close unmaps and closes the file.
func (r *MmapReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	var err error
	if r.data != nil {
		err = munmapFile(r.data)
		r.data = nil
	}

	if closeErr := r.file.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	return err
}

// Size returns the mapped file size in bytes.
func (r *MmapReader) Size() int64 {
	return r.size
}

// Bytes returns the mapped region.
// WARNING: The data is read-only - writing to it will fault.
func (r *MmapReader) Bytes() ([]byte, error) {
	if r.closed {
		return nil, ErrReaderClosed
	}
	return r.data, nil
}

// Cursor returns a new cursor positioned at the start of the mapping.
func (r *MmapReader) Cursor() (*Cursor, error) {
	data, err := r.Bytes()
	if err != nil {
		return nil, err
	}
	return NewCursor(data), nil
}

// Checksum returns the SHA-256 checksum of the mapped file.
func (r *MmapReader) Checksum() ([32]byte, error) {
	data, err := r.Bytes()
	if err != nil {
		return [32]byte{}, err
	}
	return ComputeChecksum(data), nil
}
