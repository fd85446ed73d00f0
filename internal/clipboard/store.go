// Package clipboard moves grid documents through the system clipboard.
package clipboard

import (
	"errors"
)

// ErrNoText is returned when the clipboard holds no text to paste.
var ErrNoText = errors.New("clipboard does not contain text data")

// Store saves and loads documents through the clipboard. It satisfies
// appstate.Store so the Save and Load tools can target it directly.
type Store struct {
	write func(string) error
	read  func() (string, error)
}

// NewStore returns a Store backed by the system clipboard.
func NewStore() *Store {
	return &Store{write: WriteText, read: ReadText}
}

// Save publishes doc as clipboard text.
func (s *Store) Save(doc []byte) error {
	return s.write(string(doc))
}

// Load returns the clipboard text as a document.
func (s *Store) Load() ([]byte, error) {
	text, err := s.read()
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

func (s *Store) String() string { return "clipboard" }
