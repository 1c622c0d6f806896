package crypto

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestSessionKeys(t *testing.T) {
	keys, generated, err := SessionKeys([]string{"hash-key", "", "block-key-0123456789abcdef012345"})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if generated {
		t.Errorf("expected configured keys to be used")
	}

	if e, g := 2, len(keys); e != g {
		t.Fatalf("keys: expected %d, got %d", e, g)
	}

	if !bytes.Equal(keys[0], []byte("hash-key")) {
		t.Errorf("unexpected first key '%s'", keys[0])
	}

	keys, generated, err = SessionKeys(nil)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if !generated {
		t.Errorf("expected keys to be generated")
	}

	if e, g := 2, len(keys); e != g {
		t.Fatalf("keys: expected %d, got %d", e, g)
	}

	if e, g := hashKeyLength, len(keys[0]); e != g {
		t.Errorf("hash key length: expected %d, got %d", e, g)
	}

	if e, g := blockKeyLength, len(keys[1]); e != g {
		t.Errorf("block key length: expected %d, got %d", e, g)
	}
}

func TestSessionKeysInvalid(t *testing.T) {
	testCases := map[string][]string{
		"hash key only":     {"hash-key"},
		"short block key":   {"hash-key", "too-short"},
		"incomplete second": {"hash-key", "block-key-0123456789abcdef012345", "other-hash-key"},
	}

	for name, configured := range testCases {
		t.Run(name, func(t *testing.T) {
			_, _, err := SessionKeys(configured)
			if !errors.Is(err, ErrInvalidSessionKeys) {
				t.Errorf("expected ErrInvalidSessionKeys, got %v", err)
			}
		})
	}
}
