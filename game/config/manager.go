package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	ErrLayoutNotFound = errors.New("layout not found")
	ErrInvalidLayout  = errors.New("invalid layout")
)

// LayoutInfo provides information about a layout preset
type LayoutInfo struct {
	Filename    string `json:"filename"`
	LayoutID    string `json:"layout_id"` // The identifier to pass to LoadLayout
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Manager handles layout loading and caching
type Manager struct {
	layoutDir string
	layouts   map[string]*Layout
	mu        sync.RWMutex
}

// NewManager creates a new layout manager
func NewManager(layoutDir string) (*Manager, error) {
	// Ensure layout directory exists
	if _, err := os.Stat(layoutDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("layout directory does not exist: %s", layoutDir)
	}

	return &Manager{
		layoutDir: layoutDir,
		layouts:   make(map[string]*Layout),
	}, nil
}

// Dir returns the directory layouts are read from
func (m *Manager) Dir() string {
	return m.layoutDir
}

// LoadLayout loads a layout by name
func (m *Manager) LoadLayout(name string) (*Layout, error) {
	name = strings.TrimSuffix(name, ".json")

	m.mu.RLock()
	// Check cache first
	if layout, exists := m.layouts[name]; exists {
		m.mu.RUnlock()
		return layout, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if layout, exists := m.layouts[name]; exists {
		return layout, nil
	}

	layoutPath := filepath.Join(m.layoutDir, name+".json")

	data, err := os.ReadFile(layoutPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, name)
		}
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}

	var layout Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidLayout, name, err)
	}

	if err := ValidateLayout(&layout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}

	m.layouts[name] = &layout
	return &layout, nil
}

// ListLayouts returns information about every valid layout in the directory.
// Invalid files are logged and skipped.
func (m *Manager) ListLayouts() ([]*LayoutInfo, error) {
	entries, err := os.ReadDir(m.layoutDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout directory: %w", err)
	}

	var layouts []*LayoutInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")

		layout, err := m.LoadLayout(name)
		if err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("skipping layout")
			continue
		}

		layouts = append(layouts, &LayoutInfo{
			Filename:    entry.Name(),
			LayoutID:    name,
			Name:        layout.Name,
			Description: layout.Description,
		})
	}

	return layouts, nil
}

// RefreshCache clears the layout cache so edited files are read again
func (m *Manager) RefreshCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.layouts = make(map[string]*Layout)
}
