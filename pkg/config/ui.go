package config

import (
	"fmt"
	"sync"
	"time"
)

const (
	// SectionIDUI is the identifier for the UI settings section
	SectionIDUI = "ui"

	// Default values for UI settings
	defaultHighlightPreview = true
	defaultHighlightStyle   = "monokai"
	defaultAltScreen        = true
	defaultToastDuration    = 2 * time.Second
)

// UISection manages terminal presentation settings.
type UISection struct {
	HighlightPreview bool          `yaml:"highlight_preview"`
	HighlightStyle   string        `yaml:"highlight_style"`
	AltScreen        bool          `yaml:"alt_screen"`
	ToastDuration    time.Duration `yaml:"toast_duration"`
	mu               sync.RWMutex
}

// NewUISection creates a new UI section with default settings.
func NewUISection() *UISection {
	return &UISection{
		HighlightPreview: defaultHighlightPreview,
		HighlightStyle:   defaultHighlightStyle,
		AltScreen:        defaultAltScreen,
		ToastDuration:    defaultToastDuration,
	}
}

// ID returns the section identifier.
func (s *UISection) ID() string {
	return SectionIDUI
}

// Title returns the section title.
func (s *UISection) Title() string {
	return "UI Settings"
}

// Description returns the section description.
func (s *UISection) Description() string {
	return "Configure preview highlighting, screen mode and toast notifications."
}

// Data returns the current configuration data.
func (s *UISection) Data() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]any{
		"highlight_preview": s.HighlightPreview,
		"highlight_style":   s.HighlightStyle,
		"alt_screen":        s.AltScreen,
		"toast_duration":    s.ToastDuration.String(),
	}
}

// SetData updates the configuration from the provided data.
func (s *UISection) SetData(data map[string]any) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		switch key {
		case "highlight_preview":
			if enabled, ok := value.(bool); ok {
				s.HighlightPreview = enabled
			} else {
				return fmt.Errorf("invalid value type for highlight_preview: expected bool, got %T", value)
			}

		case "alt_screen":
			if enabled, ok := value.(bool); ok {
				s.AltScreen = enabled
			} else {
				return fmt.Errorf("invalid value type for alt_screen: expected bool, got %T", value)
			}

		case "highlight_style":
			if style, ok := value.(string); ok {
				s.HighlightStyle = style
			} else {
				return fmt.Errorf("invalid value type for highlight_style: expected string, got %T", value)
			}

		case "toast_duration":
			d, err := parseDuration(key, value)
			if err != nil {
				return err
			}
			s.ToastDuration = d

		default:
			// Ignore unknown keys for forward compatibility
			continue
		}
	}

	return nil
}

// Validate validates the current configuration.
func (s *UISection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ToastDuration < 100*time.Millisecond || s.ToastDuration > 10*time.Second {
		return fmt.Errorf("toast_duration must be between 100ms and 10s, got %v", s.ToastDuration)
	}
	if s.HighlightPreview && s.HighlightStyle == "" {
		return fmt.Errorf("highlight_style must be set when highlight_preview is enabled")
	}

	return nil
}

// Reset resets the section to default configuration.
func (s *UISection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.HighlightPreview = defaultHighlightPreview
	s.HighlightStyle = defaultHighlightStyle
	s.AltScreen = defaultAltScreen
	s.ToastDuration = defaultToastDuration
}

// GetHighlight returns whether the preview is highlighted and with which chroma style.
func (s *UISection) GetHighlight() (bool, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.HighlightPreview, s.HighlightStyle
}

// UseAltScreen reports whether the form takes over the full terminal.
func (s *UISection) UseAltScreen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.AltScreen
}

// GetToastDuration returns how long toast notifications stay visible.
func (s *UISection) GetToastDuration() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ToastDuration
}
