// Package prefs persists the small set of user preferences (color scheme,
// mute state) across runs.
package prefs

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Prefs is the persisted preference payload.
type Prefs struct {
	Scheme string `yaml:"scheme"`
	Muted  bool   `yaml:"muted"`
}

const (
	prefsObject   = "prefs"
	prefsProperty = "ui"
)

// Store reads and writes Prefs through a gdata manager. A nil manager puts
// the store in a degraded in-memory mode: loads return defaults and saves
// are dropped without error.
type Store struct {
	m *gdata.Manager
}

// Open creates a store backed by the platform data directory for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open prefs storage: %w", err)
	}
	return &Store{m: m}, nil
}

// NewDegraded returns a store with no backing storage.
func NewDegraded() *Store { return &Store{} }

// Load returns the saved preferences, or the provided defaults when
// nothing has been saved yet or storage is unavailable.
func (s *Store) Load(defaults Prefs) (Prefs, error) {
	if s.m == nil || !s.m.ObjectPropExists(prefsObject, prefsProperty) {
		return defaults, nil
	}
	data, err := s.m.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return defaults, fmt.Errorf("load prefs: %w", err)
	}
	p := defaults
	if err := yaml.Unmarshal(data, &p); err != nil {
		return defaults, fmt.Errorf("parse prefs: %w", err)
	}
	return p, nil
}

// Save persists the preferences. In degraded mode it is a silent no-op.
func (s *Store) Save(p Prefs) error {
	if s.m == nil {
		return nil
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := s.m.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}
