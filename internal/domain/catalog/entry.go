// Package catalog holds the lists a citizen picks from when requesting a
// ticket: education levels, subjects and municipalities.
package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"turnero/internal/shared/biztime"
)

type Kind string

const (
	KindLevel        Kind = "levels"
	KindSubject      Kind = "subjects"
	KindMunicipality Kind = "municipalities"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindLevel, KindSubject, KindMunicipality:
		return true
	}
	return false
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("unknown catalog: %s", s)
	}
	return k, nil
}

func AllKinds() []Kind {
	return []Kind{KindLevel, KindSubject, KindMunicipality}
}

var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,99}$`)

// Entry is one selectable option of a catalog. Key is what tickets store;
// Name is what people read.
type Entry struct {
	id        uint
	kind      Kind
	key       string
	name      string
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewEntry(kind Kind, key, name string) (*Entry, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown catalog: %s", kind)
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if !keyPattern.MatchString(key) {
		return nil, fmt.Errorf("invalid key %q: use lower case letters, digits, '-' or '_'", key)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	now := biztime.NowUTC()
	return &Entry{kind: kind, key: key, name: name, active: true, createdAt: now, updatedAt: now}, nil
}

func ReconstructEntry(id uint, kind Kind, key, name string, active bool, createdAt, updatedAt time.Time) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("catalog entry ID cannot be zero")
	}
	return &Entry{id: id, kind: kind, key: key, name: name, active: active, createdAt: createdAt, updatedAt: updatedAt}, nil
}

func (e *Entry) ID() uint             { return e.id }
func (e *Entry) Kind() Kind           { return e.kind }
func (e *Entry) Key() string          { return e.key }
func (e *Entry) Name() string         { return e.name }
func (e *Entry) IsActive() bool       { return e.active }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }
func (e *Entry) UpdatedAt() time.Time { return e.updatedAt }

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("catalog entry ID is already set")
	}
	e.id = id
	return nil
}

// Update renames the entry and toggles its visibility. Keys are immutable
// because tickets reference them.
func (e *Entry) Update(name string, active bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	e.name = name
	e.active = active
	e.updatedAt = biztime.NowUTC()
	return nil
}
