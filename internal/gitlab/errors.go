package gitlab

import "errors"

var (
	ErrCommitFailed = errors.New("commit failed")
	ErrInvalidPath  = errors.New("invalid path")
	// ErrUnauthorized is returned on 401, the token expired or was revoked.
	// A 403 means the user lacks rights on the project and is not mapped.
	ErrUnauthorized = errors.New("unauthorized")
)
