package api

import (
	"fmt"
	"io"
	"strings"

	"github.com/heysubinoy/notedb/pkg/kv"
)

// Messages printed to the user. Scripts that wrap the CLI match on them.
const (
	MsgNotFound = "Key not found!"
	MsgEmpty    = "Database is empty."
)

// Handler wraps a kv.Store and runs one command against it,
// writing the user-facing result to Out.
type Handler struct {
	Store kv.Store
	Out   io.Writer
}

// NewHandler creates a new Handler with the given store.
func NewHandler(store kv.Store, out io.Writer) *Handler {
	return &Handler{
		Store: store,
		Out:   out,
	}
}

// Insert sets key to value whether or not it already exists.
func (h *Handler) Insert(key, value string) error {
	h.Store.Insert(key, value)
	_, err := fmt.Fprintf(h.Out, "Inserted: %s\n", kv.Entry{Key: key, Value: value})
	return err
}

// Update changes the value of an existing key.
// A missing key is reported to the user, not returned as an error.
func (h *Handler) Update(key, value string) error {
	if !h.Store.Update(key, value) {
		return h.println(MsgNotFound)
	}
	_, err := fmt.Fprintf(h.Out, "Updated: %s\n", kv.Entry{Key: key, Value: value})
	return err
}

// Remove deletes key.
// A missing key is reported to the user, not returned as an error.
func (h *Handler) Remove(key string) error {
	if !h.Store.Remove(key) {
		return h.println(MsgNotFound)
	}
	_, err := fmt.Fprintf(h.Out, "Removed: %s\n", key)
	return err
}

// Find prints every entry whose key contains substr.
func (h *Handler) Find(substr string) error {
	return h.println(FormatFind(h.Store.Find(substr)))
}

// List prints all entries, each followed by a blank line.
func (h *Handler) List() error {
	entries := h.Store.List()
	if len(entries) == 0 {
		return h.println(MsgEmpty)
	}
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteString("\n\n")
	}
	_, err := io.WriteString(h.Out, sb.String())
	return err
}

// ListHTML prints all entries on one line, each followed by "<br>"
// in double quotes, for callers that embed the output in HTML.
func (h *Handler) ListHTML() error {
	entries := h.Store.List()
	if len(entries) == 0 {
		return h.println(MsgEmpty)
	}
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteString(`"<br>"`)
	}
	_, err := io.WriteString(h.Out, sb.String())
	return err
}

// FormatFind renders the result of a find: each entry as key:value followed
// by a blank line, or MsgNotFound when there are none.
func FormatFind(entries []kv.Entry) string {
	if len(entries) == 0 {
		return MsgNotFound
	}
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (h *Handler) println(s string) error {
	_, err := fmt.Fprintln(h.Out, s)
	return err
}
