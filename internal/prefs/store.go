package prefs

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Persisted keys.
const (
	ThemeKey = "energyexe-theme"
	ModeKey  = "energyexe-mode"
)

// KV is a durable string key-value namespace scoped to the user profile.
type KV interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
}

// MemoryKV is an in-process KV. The zero value is ready to use.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryKV returns a MemoryKV seeded with values.
func NewMemoryKV(values map[string]string) *MemoryKV {
	kv := &MemoryKV{values: make(map[string]string, len(values))}
	for k, v := range values {
		kv.values[k] = v
	}
	return kv
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

// Store reads and writes the two preference keys on top of a KV. Storage is
// best effort: read failures look like absent values and write failures are
// logged and dropped.
type Store struct {
	kv     KV
	logger *log.Logger
}

// NewStore wraps kv. A nil kv behaves as permanently unavailable storage; a
// nil logger discards output.
func NewStore(kv KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{kv: kv, logger: logger}
}

// ReadTheme returns the persisted theme if present and recognized.
func (s *Store) ReadTheme() (Theme, bool) {
	raw, ok := s.read(ThemeKey)
	if !ok {
		return "", false
	}
	theme, ok := ParseTheme(raw)
	if !ok {
		s.logger.Debug("ignoring persisted theme", "key", ThemeKey, "value", raw, "error", ErrUnrecognizedValue)
	}
	return theme, ok
}

// ReadMode returns the persisted mode if present and one of light/dark.
func (s *Store) ReadMode() (Mode, bool) {
	raw, ok := s.read(ModeKey)
	if !ok {
		return "", false
	}
	mode, ok := ParseMode(raw)
	if !ok {
		s.logger.Debug("ignoring persisted mode", "key", ModeKey, "value", raw, "error", ErrUnrecognizedValue)
	}
	return mode, ok
}

// WriteTheme persists id. Failures are logged, never returned.
func (s *Store) WriteTheme(id Theme) {
	s.write(ThemeKey, string(id))
}

// WriteMode persists id. Failures are logged, never returned.
func (s *Store) WriteMode(id Mode) {
	s.write(ModeKey, string(id))
}

func (s *Store) read(key string) (string, bool) {
	if s.kv == nil {
		return "", false
	}
	value, found, err := s.kv.Get(key)
	if err != nil {
		s.logger.Debug("preference read failed", "key", key, "error", fmt.Errorf("%w: %w", ErrStorageUnavailable, err))
		return "", false
	}
	return value, found
}

func (s *Store) write(key, value string) {
	if s.kv == nil {
		s.logger.Debug("preference not persisted", "key", key, "error", ErrStorageUnavailable)
		return
	}
	if err := s.kv.Set(key, value); err != nil {
		s.logger.Warn("preference not persisted", "key", key, "error", fmt.Errorf("%w: %w", ErrStorageUnavailable, err))
	}
}
