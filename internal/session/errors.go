package session

import "github.com/pkg/errors"

var (
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrCorruptedSession = errors.New("corrupted session")
)
