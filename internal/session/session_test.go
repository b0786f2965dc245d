package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatesDirectory(t *testing.T) {
	base := t.TempDir()

	s, err := New(base, false)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filepath.Base(s.Dir), "timergen-"))
	info, err := os.Stat(s.Dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCloseRemovesDirectory(t *testing.T) {
	base := t.TempDir()

	s, err := New(base, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(s.Path("cmds.txt"), []byte("x"), 0o644))

	require.NoError(t, s.Close())
	_, err = os.Stat(s.Dir)
	assert.True(t, os.IsNotExist(err))
}

func TestCloseKeepsDirectoryWhenAsked(t *testing.T) {
	base := t.TempDir()

	s, err := New(base, true)
	require.NoError(t, err)
	assert.True(t, s.Kept())

	require.NoError(t, s.Close())
	_, err = os.Stat(s.Dir)
	assert.NoError(t, err)
}

func TestDefaultOutfile(t *testing.T) {
	s, err := New(t.TempDir(), false)
	require.NoError(t, err)
	defer s.Close() //nolint:errcheck

	assert.Equal(t, s.ID+".mp4", s.DefaultOutfile())
	assert.NotEmpty(t, s.ID)
}

func TestSessionsAreUnique(t *testing.T) {
	base := t.TempDir()

	a, err := New(base, false)
	require.NoError(t, err)
	b, err := New(base, false)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.Dir, b.Dir)
}
