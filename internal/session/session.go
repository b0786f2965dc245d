// Package session manages the temporary workspace for one timergen run.
//
// Each run gets a UUID-named directory ("timergen-<uuid>") holding the
// ffmpeg command script and the intermediate encode result. The directory is
// removed on Close unless the user asked to keep it.
package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Session is one run's identity and scratch directory.
type Session struct {
	ID   string
	Dir  string
	keep bool
}

// New creates the session directory under base ("." for the original
// behavior of working in the current directory).
func New(base string, keep bool) (*Session, error) {
	id := uuid.NewString()
	dir := filepath.Join(base, "timergen-"+id)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	return &Session{ID: id, Dir: dir, keep: keep}, nil
}

// Path returns the absolute-or-relative path of a file inside the session
// directory.
func (s *Session) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// DefaultOutfile is the output name used when the user gave none.
func (s *Session) DefaultOutfile() string {
	return s.ID + ".mp4"
}

// Kept reports whether the directory survives Close.
func (s *Session) Kept() bool { return s.keep }

// Close removes the session directory unless it is kept.
func (s *Session) Close() error {
	if s.keep {
		return nil
	}
	if err := os.RemoveAll(s.Dir); err != nil {
		return fmt.Errorf("failed to remove session directory: %w", err)
	}
	return nil
}
