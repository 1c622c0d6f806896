package record

import "github.com/pkg/errors"

var (
	// ErrMalformed is returned when a record file cannot be parsed
	ErrMalformed = errors.New("malformed record")

	// ErrNotText is returned when a record file does not hold text content
	ErrNotText = errors.New("record is not a text file")
)
