package record

import (
	"bytes"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Entry is one fetched record file. Err is set, and Content left zero,
// when the file could not be parsed.
type Entry[T any] struct {
	Path    string
	Content T
	Err     error
}

func (e Entry[T]) Valid() bool {
	return e.Err == nil
}

type ParseFunc[T any] func(data []byte) (T, error)

func NewEntry[T any](path string, data []byte, parse ParseFunc[T]) Entry[T] {
	content, err := parse(data)
	if err != nil {
		return Entry[T]{Path: path, Err: err}
	}

	return Entry[T]{Path: path, Content: content}
}

// CountInvalid returns the number of entries carrying a parse error.
func CountInvalid[T any](entries []Entry[T]) int {
	count := 0
	for _, e := range entries {
		if !e.Valid() {
			count++
		}
	}
	return count
}

func unmarshal(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) > 0 && !isText(data) {
		return errors.WithStack(ErrNotText)
	}

	if err := toml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return nil
}

func isText(data []byte) bool {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}

	return false
}
