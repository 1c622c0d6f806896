package kv

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

// Session is a Store backed by a cookie session. Every mutation is
// saved immediately on the response.
type Session struct {
	session *sessions.Session
	w       http.ResponseWriter
	r       *http.Request
}

// Get implements Store.
func (s *Session) Get(key string) (string, bool) {
	value, ok := s.session.Values[key].(string)
	return value, ok
}

// Remove implements Store.
func (s *Session) Remove(key string) error {
	if _, exists := s.session.Values[key]; !exists {
		return nil
	}

	delete(s.session.Values, key)

	return s.save()
}

// Set implements Store.
func (s *Session) Set(key string, value string) error {
	s.session.Values[key] = value
	return s.save()
}

func (s *Session) AddFlash(message string) error {
	s.session.AddFlash(message)
	return s.save()
}

// Flashes returns and consumes the pending flash messages.
func (s *Session) Flashes() ([]string, error) {
	raw := s.session.Flashes()
	if len(raw) == 0 {
		return nil, nil
	}

	messages := make([]string, 0, len(raw))
	for _, r := range raw {
		if m, ok := r.(string); ok {
			messages = append(messages, m)
		}
	}

	if err := s.save(); err != nil {
		return nil, errors.WithStack(err)
	}

	return messages, nil
}

func (s *Session) save() error {
	if err := s.session.Save(s.r, s.w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// OpenSession loads the named cookie session of the request. A session
// that cannot be decoded (rotated keys, tampered cookie) is replaced by
// a fresh one.
func OpenSession(store sessions.Store, name string, w http.ResponseWriter, r *http.Request) (*Session, error) {
	sess, err := store.Get(r, name)
	if err != nil && sess == nil {
		return nil, errors.Wrapf(err, "could not open session '%s'", name)
	}

	return &Session{
		session: sess,
		w:       w,
		r:       r,
	}, nil
}

var _ Store = &Session{}
