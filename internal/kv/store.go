// Package kv provides the small key-value capability used to persist the
// logged in user and the poll loop identifier.
package kv

type Store interface {
	// Get returns the value stored under key, and false if there is none
	Get(key string) (string, bool)
	Set(key string, value string) error
	Remove(key string) error
}
