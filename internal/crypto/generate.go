// Package crypto provides the signing and encryption keys of the cookie
// session.
package crypto

import (
	"crypto/rand"

	"github.com/pkg/errors"
)

const (
	hashKeyLength  = 32
	blockKeyLength = 32
)

var ErrInvalidSessionKeys = errors.New("invalid session keys")

func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}

// SessionKeys returns the configured keys as hash/block pairs, or one
// random pair when none is configured. A random pair does not survive
// restarts. Every pair carries a block key so the session content is
// encrypted, not only signed.
func SessionKeys(configured []string) (keys [][]byte, generated bool, err error) {
	keys = make([][]byte, 0, len(configured))
	for _, k := range configured {
		if k == "" {
			continue
		}

		keys = append(keys, []byte(k))
	}

	if len(keys) == 0 {
		hashKey, err := RandomBytes(hashKeyLength)
		if err != nil {
			return nil, false, errors.Wrap(err, "could not generate session hash key")
		}

		blockKey, err := RandomBytes(blockKeyLength)
		if err != nil {
			return nil, false, errors.Wrap(err, "could not generate session block key")
		}

		return [][]byte{hashKey, blockKey}, true, nil
	}

	if len(keys)%2 != 0 {
		return nil, false, errors.Wrap(ErrInvalidSessionKeys, "keys must be given as hash/block pairs")
	}

	for i := 1; i < len(keys); i += 2 {
		switch len(keys[i]) {
		case 16, 24, 32:
		default:
			return nil, false, errors.Wrapf(ErrInvalidSessionKeys, "block key #%d must be 16, 24 or 32 bytes long, got %d", i/2+1, len(keys[i]))
		}
	}

	return keys, false, nil
}
