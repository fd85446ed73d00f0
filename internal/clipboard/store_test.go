package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	var board string
	s := &Store{
		write: func(text string) error { board = text; return nil },
		read:  func() (string, error) { return board, nil },
	}

	require.NoError(t, s.Save([]byte("1 1\n0,0,0\n")))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "1 1\n0,0,0\n", string(got))
	assert.Equal(t, "clipboard", s.String())
}

func TestStoreLoadError(t *testing.T) {
	s := &Store{read: func() (string, error) { return "", ErrNoText }}
	_, err := s.Load()
	assert.True(t, errors.Is(err, ErrNoText))
}
