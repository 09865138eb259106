package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"github.com/heysubinoy/notedb/pkg/kv"
)

// ErrClosed is returned by Save after Close.
var ErrClosed = errors.New("store is closed")

// FileStore is a MemStore bound to a backing file. The file is read
// once by OpenFileStore and written once by Close.
//
// Nothing prevents two processes from opening the same file; the one that
// closes last overwrites the changes of the other.
type FileStore struct {
	*MemStore

	path   string
	logger *zap.Logger

	closed   bool
	closeErr error
}

// Compile-time check to ensure FileStore implements kv.Store.
var _ kv.Store = (*FileStore)(nil)

// OpenFileStore loads path into memory. A missing file is an empty store.
// Malformed lines are dropped. Any other failure to read an existing file is
// returned, since saving over a file we could not read would destroy it.
func OpenFileStore(path string, logger *zap.Logger) (*FileStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &FileStore{
		MemStore: NewMemStore(),
		path:     path,
		logger:   logger.With(zap.String("path", path)),
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("backing file does not exist, starting empty")
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ReadEntries(f, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	for _, e := range entries {
		s.MemStore.Insert(e.Key, e.Value)
	}
	s.logger.Debug("loaded", zap.Int("entries", s.Len()))
	return s, nil
}

// Save writes the whole store to the backing file, replacing it atomically:
// either the new content is fully written or the old file is left untouched.
func (s *FileStore) Save() error {
	if s.closed {
		return ErrClosed
	}
	var buf bytes.Buffer
	entries := s.List()
	if err := WriteEntries(&buf, entries); err != nil {
		return err
	}

	_, statErr := os.Stat(s.path)
	if err := atomic.WriteFile(s.path, &buf); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.path, err)
	}
	if errors.Is(statErr, fs.ErrNotExist) {
		// temp files are created 0600
		if err := os.Chmod(s.path, 0644); err != nil {
			s.logger.Warn("failed to set permissions", zap.Error(err))
		}
	}
	s.logger.Debug("saved", zap.Int("entries", len(entries)))
	return nil
}

// Close saves the store. Can be called multiple times to make it
// easier to use via defer; later calls return the first result.
func (s *FileStore) Close() error {
	if s.closed {
		return s.closeErr
	}
	s.closeErr = s.Save()
	s.closed = true
	return s.closeErr
}
