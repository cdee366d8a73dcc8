package session

import (
	"fmt"
	"os"
	"path/filepath"
)

const sessionFile = "session.json"

// Slot is a durable key-value slot holding the serialized session snapshot.
// Implementations decide where the bytes live (file, keychain, test buffer).
type Slot interface {
	// Load returns the persisted snapshot bytes, or (nil, nil) when nothing
	// has been persisted yet.
	Load() ([]byte, error)
	// Save replaces the persisted snapshot bytes.
	Save(data []byte) error
}

// FileSlot persists the session snapshot as a JSON file under the fryctl
// home directory.
type FileSlot struct {
	path string
}

var _ Slot = (*FileSlot)(nil)

// NewFileSlot creates a FileSlot rooted at ~/.fryctl, creating the
// directory when needed.
func NewFileSlot() (*FileSlot, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	dir := filepath.Join(home, ".fryctl")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create .fryctl directory: %w", err)
	}
	return &FileSlot{path: filepath.Join(dir, sessionFile)}, nil
}

// NewFileSlotAt creates a FileSlot at an explicit path. Used by tests and
// by callers that relocate the fryctl home.
func NewFileSlotAt(path string) *FileSlot {
	return &FileSlot{path: path}
}

func (s *FileSlot) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	return data, nil
}

func (s *FileSlot) Save(data []byte) error {
	return os.WriteFile(s.path, data, 0600)
}
