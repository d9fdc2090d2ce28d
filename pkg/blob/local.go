package blob

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps blobs as plain files in a single directory.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// path rejects anything that would escape the media directory.
func (s *LocalStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", ErrNotExist
	}
	return filepath.Join(s.dir, name), nil
}

func (s *LocalStore) Save(name string, r io.Reader, contentType string) (string, error) {
	p, err := s.path(name)
	if err != nil {
		return "", err
	}

	f, err := os.Create(p)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(p)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(p)
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	return p, nil
}

func (s *LocalStore) Open(name string) (io.ReadCloser, int64, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, ErrNotExist
		}
		return nil, 0, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}

	return f, info.Size(), nil
}

func (s *LocalStore) OpenRange(name string, start, end int64) (io.ReadCloser, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExist
		}
		return nil, err
	}

	if _, err := f.Seek(start, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}

	return &rangeReader{Reader: io.LimitReader(f, end-start+1), closer: f}, nil
}

func (s *LocalStore) Size(name string) (int64, error) {
	p, err := s.path(name)
	if err != nil {
		return 0, err
	}

	info, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrNotExist
		}
		return 0, err
	}

	return info.Size(), nil
}

func (s *LocalStore) Remove(name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return ErrNotExist
		}
		return err
	}

	return nil
}

// rangeReader bounds reads to the requested span while closing the
// underlying file handle.
type rangeReader struct {
	io.Reader
	closer io.Closer
}

func (r *rangeReader) Close() error {
	return r.closer.Close()
}
