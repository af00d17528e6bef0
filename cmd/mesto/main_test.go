package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/entrhq/mesto/pkg/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     Config
		want    form.Format
		wantErr bool
	}{
		{name: "default json", cfg: Config{Format: "json"}, want: form.FormatJSON},
		{name: "yaml alias", cfg: Config{Format: "YML"}, want: form.FormatYAML},
		{name: "unknown format", cfg: Config{Format: "xml"}, wantErr: true},
		{name: "quiet with out", cfg: Config{Format: "json", Quiet: true, OutPath: "x.json"}, wantErr: true},
		{name: "out is a directory", cfg: Config{Format: "json", OutPath: dir}, wantErr: true},
		{name: "out file", cfg: Config{Format: "yaml", OutPath: filepath.Join(dir, "out.yaml")}, want: form.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.format)
		})
	}
}

func TestWriteOutput(t *testing.T) {
	data := form.Data{{Key: "field1", Value: "Paris"}, {Key: "field2", Value: "Rome"}}

	t.Run("stdout json", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &Config{format: form.FormatJSON}

		require.NoError(t, writeOutput(cfg, data, &buf))
		assert.Equal(t, "{\n  \"field1\": \"Paris\",\n  \"field2\": \"Rome\"\n}\n", buf.String())
	})

	t.Run("file yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "places.yaml")
		cfg := &Config{OutPath: path, format: form.FormatYAML}

		var buf bytes.Buffer
		require.NoError(t, writeOutput(cfg, data, &buf))
		assert.Empty(t, buf.String())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "field1: Paris\nfield2: Rome\n", string(content))
	})

	t.Run("missing directory", func(t *testing.T) {
		cfg := &Config{OutPath: filepath.Join(t.TempDir(), "nope", "out.json"), format: form.FormatJSON}
		assert.Error(t, writeOutput(cfg, data, &bytes.Buffer{}))
	})
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{ConfigPath: path}

	var buf bytes.Buffer
	require.NoError(t, initConfig(cfg, &buf))
	assert.Equal(t, "Wrote "+path+" (sections: form, ui)\n", buf.String())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "highlight_style: monokai")
}
