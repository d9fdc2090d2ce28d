package usecase

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"snapfeed/pkg/blob"
)

// Stream is one response worth of media bytes. The body is a finite,
// non-restartable reader consumed exactly once per request.
type Stream struct {
	Body        io.ReadCloser
	Size        int64 // total object size
	Start, End  int64 // inclusive, valid when Partial
	ContentType string
	Partial     bool
}

// ContentLength is the number of bytes the response body carries.
func (s *Stream) ContentLength() int64 {
	if s.Partial {
		return s.End - s.Start + 1
	}
	return s.Size
}

type StreamUseCase interface {
	Fetch(filename, rangeHeader string) (*Stream, error)
}

type streamUseCase struct {
	blobs blob.Store
}

func NewStreamUseCase(blobs blob.Store) StreamUseCase {
	return &streamUseCase{blobs: blobs}
}

// Fetch resolves a filename to a byte stream. Only video files honor the
// Range header; everything else gets the full object. The blob store is
// the source of truth here — the database is not consulted.
func (uc *streamUseCase) Fetch(filename, rangeHeader string) (*Stream, error) {
	size, err := uc.blobs.Size(filename)
	if err != nil {
		if errors.Is(err, blob.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	if rangeHeader == "" || !IsVideoFile(filename) {
		body, fullSize, err := uc.blobs.Open(filename)
		if err != nil {
			if errors.Is(err, blob.ErrNotExist) {
				return nil, ErrFileNotFound
			}
			return nil, err
		}
		return &Stream{
			Body:        body,
			Size:        fullSize,
			ContentType: ContentTypeForFile(filename),
		}, nil
	}

	start, end, err := parseByteRange(rangeHeader, size)
	if err != nil {
		return nil, err
	}

	body, err := uc.blobs.OpenRange(filename, start, end)
	if err != nil {
		if errors.Is(err, blob.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	return &Stream{
		Body:        body,
		Size:        size,
		Start:       start,
		End:         end,
		ContentType: ContentTypeForFile(filename),
		Partial:     true,
	}, nil
}

// parseByteRange handles the single-span form `bytes=<start>-<end>`.
// An empty start defaults to 0; an empty or oversized end clamps to
// size-1.
func parseByteRange(header string, size int64) (int64, int64, error) {
	spec, ok := strings.CutPrefix(header, "bytes=")
	if !ok || strings.Contains(spec, ",") {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRange, header)
	}

	startStr, endStr, found := strings.Cut(spec, "-")
	if !found {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRange, header)
	}

	var start int64
	if startStr != "" {
		v, err := strconv.ParseInt(strings.TrimSpace(startStr), 10, 64)
		if err != nil || v < 0 {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRange, header)
		}
		start = v
	}

	end := size - 1
	if endStr != "" {
		v, err := strconv.ParseInt(strings.TrimSpace(endStr), 10, 64)
		if err != nil || v < 0 {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRange, header)
		}
		if v < end {
			end = v
		}
	}

	if start >= size || start > end {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRange, header)
	}

	return start, end, nil
}
