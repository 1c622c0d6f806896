// Package session persists the identity of the logged in user in a kv.Store.
package session

import (
	"encoding/json"
	"slices"

	"github.com/bornholm/burnin/internal/kv"
	"github.com/pkg/errors"
)

// Key is the well-known key under which the user details are stored
const Key = "burninFrontendUser"

type Session struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}

func Store(store kv.Store, sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := store.Set(Key, string(data)); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func CurrentUser(store kv.Store) (*Session, error) {
	raw, exists := store.Get(Key)
	if !exists {
		return nil, errors.WithStack(ErrNotLoggedIn)
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, errors.Wrapf(ErrCorruptedSession, "%s", err.Error())
	}

	return &sess, nil
}

func IsLoggedIn(store kv.Store) bool {
	sess, err := CurrentUser(store)
	return err == nil && sess != nil
}

// IsAdmin reports whether the current user email is exactly one of admins.
func IsAdmin(store kv.Store, admins []string) bool {
	sess, err := CurrentUser(store)
	if err != nil {
		return false
	}

	return slices.Contains(admins, sess.Email)
}

func Clear(store kv.Store) error {
	if err := store.Remove(Key); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
