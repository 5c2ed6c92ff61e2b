package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/mention-cli/pkg/mention"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config", Config{}, false},
		{"valid format", Config{OutputFormat: "json"}, false},
		{"invalid format", Config{OutputFormat: "xml"}, true},
		{"valid kinds", Config{DefaultKinds: []string{"user", "timestamp"}}, false},
		{"invalid kind", Config{DefaultKinds: []string{"user", "guild"}}, true},
		{"all fields", Config{OutputFormat: "plain", DefaultKinds: []string{"emoji"}, NoColor: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_Kinds(t *testing.T) {
	cfg := Config{DefaultKinds: []string{"user", "channel"}}

	kinds, err := cfg.Kinds()
	require.NoError(t, err)
	assert.Equal(t, []mention.Kind{mention.KindUser, mention.KindChannel}, kinds)
}

func TestConfig_Kinds_Empty(t *testing.T) {
	cfg := Config{}

	kinds, err := cfg.Kinds()
	require.NoError(t, err)
	assert.Nil(t, kinds)
}

func TestConfig_Kinds_Invalid(t *testing.T) {
	cfg := Config{DefaultKinds: []string{"guild"}}

	_, err := cfg.Kinds()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mention kind")
}

func TestConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dmn", "config.yml")

	cfg := &Config{
		OutputFormat: "json",
		DefaultKinds: []string{"user", "timestamp"},
		NoColor:      true,
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("output_format: [broken"), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DMN_OUTPUT_FORMAT", "plain")
	t.Setenv("DMN_DEFAULT_KINDS", "user, role ,channel")
	t.Setenv("DMN_NO_COLOR", "1")

	cfg := &Config{OutputFormat: "table"}
	cfg.LoadFromEnv()

	assert.Equal(t, "plain", cfg.OutputFormat)
	assert.Equal(t, []string{"user", "role", "channel"}, cfg.DefaultKinds)
	assert.True(t, cfg.NoColor)
}

func TestLoadFromEnv_Unset(t *testing.T) {
	t.Setenv("DMN_OUTPUT_FORMAT", "")
	t.Setenv("DMN_DEFAULT_KINDS", "")
	t.Setenv("DMN_NO_COLOR", "")

	cfg := &Config{OutputFormat: "table", DefaultKinds: []string{"user"}}
	cfg.LoadFromEnv()

	// Empty env vars leave existing values alone
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, []string{"user"}, cfg.DefaultKinds)
	assert.False(t, cfg.NoColor)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Setenv("DMN_OUTPUT_FORMAT", "json")

	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, (&Config{OutputFormat: "table"}).Save(path))

	t.Setenv("DMN_OUTPUT_FORMAT", "plain")

	cfg, err := LoadWithEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "plain", cfg.OutputFormat)
}

func TestDefaultConfigPath_XDG(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	assert.Equal(t, filepath.Join(tmpDir, "dmn", "config.yml"), DefaultConfigPath())
}
