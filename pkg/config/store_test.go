package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNewFileStore(t *testing.T) {
	t.Run("creates store with custom path", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "config.yaml")

		store, err := NewFileStore(configPath)
		if err != nil {
			t.Fatalf("NewFileStore failed: %v", err)
		}

		if store.Path() != configPath {
			t.Errorf("Expected path %s, got %s", configPath, store.Path())
		}
	})

	t.Run("creates store with default path when empty", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		store, err := NewFileStore("")
		if err != nil {
			t.Fatalf("NewFileStore with empty path failed: %v", err)
		}

		homeDir, _ := os.UserHomeDir()
		expectedPath := filepath.Join(homeDir, ".mesto", "config.yaml")

		if store.Path() != expectedPath {
			t.Errorf("Expected default path %s, got %s", expectedPath, store.Path())
		}
	})

	t.Run("loads existing config file", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "config.yaml")

		content := "version: \"1.0\"\nsections:\n  form:\n    label_prefix: Place\n"
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		store, err := NewFileStore(configPath)
		if err != nil {
			t.Fatalf("NewFileStore failed: %v", err)
		}

		section, err := store.GetSection("form")
		if err != nil {
			t.Fatalf("GetSection failed: %v", err)
		}

		if section["label_prefix"] != "Place" {
			t.Errorf("Expected label_prefix=Place, got %v", section["label_prefix"])
		}
	})
}

func TestFileStore_Load(t *testing.T) {
	t.Run("handles non-existent file", func(t *testing.T) {
		store := &FileStore{path: filepath.Join(t.TempDir(), "nonexistent.yaml")}
		if err := store.Load(); err != nil {
			t.Fatalf("Load should not fail for non-existent file: %v", err)
		}

		if len(store.data) != 0 {
			t.Error("Expected empty config for non-existent file")
		}
	})

	t.Run("handles empty file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "empty.yaml")
		if err := os.WriteFile(configPath, nil, 0644); err != nil {
			t.Fatalf("Failed to write empty config: %v", err)
		}

		store := &FileStore{path: configPath}
		if err := store.Load(); err != nil {
			t.Fatalf("Load should accept an empty file: %v", err)
		}
	})

	t.Run("handles invalid YAML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "invalid.yaml")
		if err := os.WriteFile(configPath, []byte("sections: [unclosed"), 0644); err != nil {
			t.Fatalf("Failed to write invalid YAML: %v", err)
		}

		store := &FileStore{path: configPath}
		if err := store.Load(); err == nil {
			t.Error("Load should fail for invalid YAML")
		}
	})
}

func TestFileStore_Save(t *testing.T) {
	t.Run("saves config to file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")

		store, _ := NewFileStore(configPath)
		testData := map[string]interface{}{
			"key1": "value1",
			"key2": 42,
		}
		if err := store.SetSection("test_section", testData); err != nil {
			t.Fatalf("SetSection failed: %v", err)
		}

		if err := store.Save(); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		data, err := os.ReadFile(configPath)
		if err != nil {
			t.Fatalf("Failed to read saved config: %v", err)
		}

		var config struct {
			Version  string                            `yaml:"version"`
			Sections map[string]map[string]interface{} `yaml:"sections"`
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			t.Fatalf("Saved config is not valid YAML: %v", err)
		}

		if config.Version != "1.0" {
			t.Error("Version not saved correctly")
		}
		if config.Sections["test_section"]["key1"] != "value1" {
			t.Error("Data not saved correctly")
		}
		if config.Sections["test_section"]["key2"] != 42 {
			t.Error("Numeric data not saved correctly")
		}
	})

	t.Run("creates directory if needed", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

		store, _ := NewFileStore(configPath)
		store.SetSection("test", map[string]interface{}{"key": "value"})

		if err := store.Save(); err != nil {
			t.Fatalf("Save should create nested directories: %v", err)
		}

		if _, err := os.Stat(filepath.Dir(configPath)); os.IsNotExist(err) {
			t.Error("Directory was not created")
		}
	})

	t.Run("round trips through a fresh store", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")

		store, _ := NewFileStore(configPath)
		store.SetSection("ui", map[string]interface{}{"highlight_preview": false})
		if err := store.Save(); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		reloaded, err := NewFileStore(configPath)
		if err != nil {
			t.Fatalf("NewFileStore failed: %v", err)
		}
		section, _ := reloaded.GetSection("ui")
		if section["highlight_preview"] != false {
			t.Errorf("Expected highlight_preview=false, got %v", section["highlight_preview"])
		}
	})
}

func TestFileStore_SectionCopies(t *testing.T) {
	t.Run("GetSection returns copy", func(t *testing.T) {
		store := &FileStore{
			data: map[string]map[string]interface{}{
				"test": {"key": "value"},
			},
		}

		section1, _ := store.GetSection("test")
		section1["key"] = "modified"

		section2, _ := store.GetSection("test")
		if section2["key"] == "modified" {
			t.Error("External modification affected store data")
		}
	})

	t.Run("SetSection stores copy", func(t *testing.T) {
		store := &FileStore{data: make(map[string]map[string]interface{})}

		testData := map[string]interface{}{"key": "value"}
		store.SetSection("test", testData)
		testData["key"] = "modified"

		section, _ := store.GetSection("test")
		if section["key"] == "modified" {
			t.Error("External modification affected store data")
		}
	})
}
