// Package prefs persists the two process-wide UI preferences: the
// dark/light theme flag and the sidebar-collapsed flag. Values live under
// fixed keys in a local JSON file with a load-at-init, persist-on-change
// lifecycle. Change notification is an explicit in-process subscription,
// not storage polling.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Fixed storage keys, kept compatible with the original client storage.
const (
	KeyDarkMode         = "sga_dark_mode"
	KeySidebarCollapsed = "sga_sidebar_collapsed"
)

// Preferences is the snapshot handed to readers and subscribers.
type Preferences struct {
	DarkMode         bool `json:"dark_mode"`
	SidebarCollapsed bool `json:"sidebar_collapsed"`
}

// Store owns the preference file. Safe for concurrent use.
type Store struct {
	path string

	mu     sync.RWMutex
	values Preferences
	subs   map[int]func(Preferences)
	nextID int
}

// Load opens the store at path, reading existing values. A missing file
// yields defaults (light theme, expanded sidebar) without error.
func Load(path string) (*Store, error) {
	s := &Store{path: path, subs: make(map[int]func(Preferences))}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	var stored map[string]bool
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("failed to parse preferences: %w", err)
	}
	s.values = Preferences{
		DarkMode:         stored[KeyDarkMode],
		SidebarCollapsed: stored[KeySidebarCollapsed],
	}
	return s, nil
}

// Get returns the current snapshot.
func (s *Store) Get() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values
}

// SetDarkMode updates the theme flag, persisting and notifying on change.
func (s *Store) SetDarkMode(on bool) error {
	return s.update(func(p *Preferences) { p.DarkMode = on })
}

// SetSidebarCollapsed updates the sidebar flag, persisting and notifying on
// change.
func (s *Store) SetSidebarCollapsed(collapsed bool) error {
	return s.update(func(p *Preferences) { p.SidebarCollapsed = collapsed })
}

// Subscribe registers a callback invoked on every persisted change. The
// returned function cancels the subscription.
func (s *Store) Subscribe(fn func(Preferences)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) update(mutate func(*Preferences)) error {
	s.mu.Lock()
	before := s.values
	mutate(&s.values)
	changed := s.values != before
	snapshot := s.values

	var subs []func(Preferences)
	if changed {
		if err := s.persistLocked(); err != nil {
			s.values = before
			s.mu.Unlock()
			return err
		}
		for _, fn := range s.subs {
			subs = append(subs, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
	return nil
}

// persistLocked writes the fixed-key file. Callers hold the write lock.
func (s *Store) persistLocked() error {
	raw, err := json.MarshalIndent(map[string]bool{
		KeyDarkMode:         s.values.DarkMode,
		KeySidebarCollapsed: s.values.SidebarCollapsed,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}
