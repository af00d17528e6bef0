package config

import (
	"sync"
)

var (
	// globalManager is the singleton configuration manager instance
	globalManager *Manager
	globalMu      sync.Mutex
)

// Initialize creates and initializes the global configuration manager.
// This should be called once at application startup.
func Initialize(configPath string) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	manager, err := Load(configPath)
	if err != nil {
		return err
	}

	globalManager = manager
	return nil
}

// Load builds a manager with the default sections and loads configPath into it.
func Load(configPath string) (*Manager, error) {
	store, err := NewFileStore(configPath)
	if err != nil {
		return nil, err
	}

	manager, err := newDefaultManager(store)
	if err != nil {
		return nil, err
	}

	if err := manager.LoadAll(); err != nil {
		return nil, err
	}

	return manager, nil
}

// WriteDefaults writes the default value of every section to configPath,
// keeping any sections it does not know about. It returns the file written
// and the IDs of the sections it contains.
func WriteDefaults(configPath string) (string, []string, error) {
	store, err := NewFileStore(configPath)
	if err != nil {
		return "", nil, err
	}

	manager, err := newDefaultManager(store)
	if err != nil {
		return "", nil, err
	}

	manager.ResetAll()
	if err := manager.SaveAll(); err != nil {
		return "", nil, err
	}

	sections := manager.GetSections()
	ids := make([]string, 0, len(sections))
	for _, section := range sections {
		ids = append(ids, section.ID())
	}
	return store.Path(), ids, nil
}

func newDefaultManager(store Store) (*Manager, error) {
	manager := NewManager(store)

	if err := manager.RegisterSection(NewFormSection()); err != nil {
		return nil, err
	}

	if err := manager.RegisterSection(NewUISection()); err != nil {
		return nil, err
	}

	return manager, nil
}

// Global returns the global configuration manager.
// Panics if Initialize has not been called.
func Global() *Manager {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager == nil {
		panic("config not initialized: call config.Initialize first")
	}

	return globalManager
}

// IsInitialized returns true if the global configuration has been initialized.
func IsInitialized() bool {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalManager != nil
}

// GetForm returns the form section from global config.
// Returns nil if config is not initialized.
func GetForm() *FormSection {
	if !IsInitialized() {
		return nil
	}

	section, ok := Global().GetSection(SectionIDForm)
	if !ok {
		return nil
	}

	form, ok := section.(*FormSection)
	if !ok {
		return nil
	}

	return form
}

// GetUI returns the UI settings section from global config.
// Returns nil if config is not initialized.
func GetUI() *UISection {
	if !IsInitialized() {
		return nil
	}

	section, ok := Global().GetSection(SectionIDUI)
	if !ok {
		return nil
	}

	ui, ok := section.(*UISection)
	if !ok {
		return nil
	}

	return ui
}
