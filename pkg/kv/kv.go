package kv

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Delimiter separates the key from the value on a line of the backing file.
	// Only its first occurrence on a line is significant.
	Delimiter = ":"

	// Extension is appended to a database name to form its file name.
	Extension = ".db"
)

// Entry is a single key/value record.
type Entry struct {
	Key   string
	Value string
}

// Store defines the interface for an ordered key-value store.
// Implementations can be swapped out or wrapped (e.g., file-backed, instrumented).
// Every method that returns entries returns them in ascending key order.
type Store interface {
	// Insert sets key to value, overwriting any existing value.
	Insert(key, value string)

	// Update sets key to value only if key already exists.
	// Returns false if the key was not found, in which case nothing changes.
	Update(key, value string) bool

	// Remove deletes key. Returns false if the key was not found.
	Remove(key string) bool

	// Find returns every entry whose key contains substr.
	Find(substr string) []Entry

	// List returns every entry.
	List() []Entry

	// Len returns the number of entries.
	Len() int
}

var (
	ErrEmptyKey     = errors.New("key is empty")
	ErrKeyDelimiter = fmt.Errorf("key cannot contain %q", Delimiter)
	ErrKeyNewline   = errors.New("key cannot contain newlines")
	ErrValueNewline = errors.New("value cannot contain newlines")

	// a trailing carriage return is taken for a CRLF line ending on load
	ErrValueTrailingCR = errors.New("value cannot end with a carriage return")
)

// FileName returns the backing file name for database name.
func FileName(name string) string {
	return name + Extension
}

// ValidateKey reports whether key can be written to and read back from a file.
func ValidateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if strings.Contains(key, Delimiter) {
		return ErrKeyDelimiter
	}
	if strings.Contains(key, "\n") {
		return ErrKeyNewline
	}
	return nil
}

// ValidateValue reports whether value can be written to and read back from a file.
func ValidateValue(value string) error {
	if strings.Contains(value, "\n") {
		return ErrValueNewline
	}
	if strings.HasSuffix(value, "\r") {
		return ErrValueTrailingCR
	}
	return nil
}

// ParseLine splits a line (without its trailing newline) at the first
// Delimiter. ok is false for lines without a delimiter or with an empty key.
func ParseLine(line string) (e Entry, ok bool) {
	key, value, found := strings.Cut(line, Delimiter)
	if !found || key == "" {
		return Entry{}, false
	}
	return Entry{Key: key, Value: value}, true
}

// FormatLine is the inverse of ParseLine. The result ends with a newline.
func FormatLine(e Entry) string {
	return e.Key + Delimiter + e.Value + "\n"
}

// String returns the entry as key:value.
func (e Entry) String() string {
	return e.Key + Delimiter + e.Value
}
