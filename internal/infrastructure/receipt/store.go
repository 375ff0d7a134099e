package receipt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNotFound is returned when a receipt file does not exist.
var ErrNotFound = errors.New("receipt not found")

var (
	unsafeChars   = regexp.MustCompile(`[^A-Za-z0-9-]+`)
	validFilename = regexp.MustCompile(`^turno_[A-Za-z0-9_-]+\.pdf$`)
)

// FilenameFor maps a ticket number to its receipt file name.
func FilenameFor(number string) string {
	return "turno_" + unsafeChars.ReplaceAllString(strings.TrimSpace(number), "_") + ".pdf"
}

// ValidFilename reports whether name could have been produced by FilenameFor.
func ValidFilename(name string) bool {
	return validFilename.MatchString(name)
}

// LocalStore keeps receipts in a directory on disk.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create receipt directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes data atomically and returns the stored file name.
func (s *LocalStore) Save(number string, data []byte) (string, error) {
	name := FilenameFor(number)
	target := filepath.Join(s.dir, name)

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create receipt file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close receipt: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to store receipt: %w", err)
	}
	return name, nil
}

// Path resolves a stored file name to its location on disk.
func (s *LocalStore) Path(name string) (string, error) {
	if !ValidFilename(name) {
		return "", ErrNotFound
	}

	p := filepath.Join(s.dir, name)
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to stat receipt: %w", err)
	}
	return p, nil
}
