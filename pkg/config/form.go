package config

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	// SectionIDForm is the identifier for the form settings section
	SectionIDForm = "form"

	defaultLabelPrefix       = "Место"
	defaultEmptyMessage      = "No data entered yet."
	defaultAnimationDuration = 300 * time.Millisecond
	defaultFocusDelay        = 50 * time.Millisecond

	maxFormDelay = 5 * time.Second
)

// FormSection holds the cosmetic knobs of the place form.
type FormSection struct {
	LabelPrefix       string        `yaml:"label_prefix"`
	EmptyMessage      string        `yaml:"empty_message"`
	AnimationDuration time.Duration `yaml:"animation_duration"`
	FocusDelay        time.Duration `yaml:"focus_delay"`
	mu                sync.RWMutex
}

// NewFormSection creates a form section with default settings.
func NewFormSection() *FormSection {
	return &FormSection{
		LabelPrefix:       defaultLabelPrefix,
		EmptyMessage:      defaultEmptyMessage,
		AnimationDuration: defaultAnimationDuration,
		FocusDelay:        defaultFocusDelay,
	}
}

// ID returns the section identifier.
func (s *FormSection) ID() string {
	return SectionIDForm
}

// Title returns the section title.
func (s *FormSection) Title() string {
	return "Form Settings"
}

// Description returns the section description.
func (s *FormSection) Description() string {
	return "Row labels, the empty preview message and the timing of new rows."
}

// Data returns the current configuration data.
func (s *FormSection) Data() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]any{
		"label_prefix":       s.LabelPrefix,
		"empty_message":      s.EmptyMessage,
		"animation_duration": s.AnimationDuration.String(),
		"focus_delay":        s.FocusDelay.String(),
	}
}

// SetData updates the configuration from the provided data.
func (s *FormSection) SetData(data map[string]any) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range data {
		switch key {
		case "label_prefix", "empty_message":
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("invalid value type for %s: expected string, got %T", key, value)
			}
			if key == "label_prefix" {
				s.LabelPrefix = str
			} else {
				s.EmptyMessage = str
			}

		case "animation_duration":
			d, err := parseDuration(key, value)
			if err != nil {
				return err
			}
			s.AnimationDuration = d

		case "focus_delay":
			d, err := parseDuration(key, value)
			if err != nil {
				return err
			}
			s.FocusDelay = d

		default:
			// Ignore unknown keys for forward compatibility
			continue
		}
	}

	return nil
}

// Validate validates the current configuration.
func (s *FormSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if strings.TrimSpace(s.LabelPrefix) == "" {
		return fmt.Errorf("label_prefix must not be empty")
	}
	if s.EmptyMessage == "" {
		return fmt.Errorf("empty_message must not be empty")
	}
	if s.AnimationDuration < 0 || s.AnimationDuration > maxFormDelay {
		return fmt.Errorf("animation_duration must be between 0 and %v, got %v", maxFormDelay, s.AnimationDuration)
	}
	if s.FocusDelay < 0 || s.FocusDelay > maxFormDelay {
		return fmt.Errorf("focus_delay must be between 0 and %v, got %v", maxFormDelay, s.FocusDelay)
	}

	return nil
}

// Reset resets the section to default configuration.
func (s *FormSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.LabelPrefix = defaultLabelPrefix
	s.EmptyMessage = defaultEmptyMessage
	s.AnimationDuration = defaultAnimationDuration
	s.FocusDelay = defaultFocusDelay
}

// Settings returns a consistent snapshot of the form settings.
func (s *FormSection) Settings() (labelPrefix, emptyMessage string, animation, focusDelay time.Duration) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LabelPrefix, s.EmptyMessage, s.AnimationDuration, s.FocusDelay
}
