package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.HTTP.ProfileTimeout != 30*time.Second {
		t.Errorf("Expected default profile timeout to be 30s, got %v", config.HTTP.ProfileTimeout)
	}

	if config.HTTP.ProbeTimeout != 10*time.Second {
		t.Errorf("Expected default probe timeout to be 10s, got %v", config.HTTP.ProbeTimeout)
	}

	if config.Output.BaseDirectory != "output" {
		t.Errorf("Expected default output directory to be output, got %s", config.Output.BaseDirectory)
	}

	assert.Equal(t, filepath.Join("output", "images"), config.Output.ImagesPath())
	assert.Equal(t, filepath.Join("output", "reports"), config.Output.ReportsPath())
	assert.Equal(t, DefaultSites, config.Presence.Sites)
	assert.Len(t, config.Presence.Sites, 8)
	assert.NoError(t, config.Validate())
}

func TestDefaultConfigCopiesSites(t *testing.T) {
	config := DefaultConfig()
	config.Presence.Sites[0] = "changed.example"

	assert.Equal(t, "linkedin.com", DefaultSites[0])
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("IGOSINT_USER_AGENT", "test-agent")
	t.Setenv("IGOSINT_PROBE_TIMEOUT", "3s")
	t.Setenv("IGOSINT_OUTPUT_DIR", "/tmp/test-output")
	t.Setenv("IGOSINT_MARKDOWN", "true")
	t.Setenv("IGOSINT_SITES", "github.com, gitlab.com ,")
	t.Setenv("IGOSINT_LOG_LEVEL", "debug")

	config := DefaultConfig()
	err := config.LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "test-agent", config.HTTP.UserAgent)
	assert.Equal(t, 3*time.Second, config.HTTP.ProbeTimeout)
	assert.Equal(t, 30*time.Second, config.HTTP.ProfileTimeout)
	assert.Equal(t, "/tmp/test-output", config.Output.BaseDirectory)
	assert.True(t, config.Output.Markdown)
	assert.Equal(t, []string{"github.com", "gitlab.com"}, config.Presence.Sites)
	assert.Equal(t, "debug", config.Logging.Level)
}

func TestLoadFromEnvInvalidValues(t *testing.T) {
	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("IGOSINT_IMAGE_TIMEOUT", "soon")
		assert.Error(t, DefaultConfig().LoadFromEnv())
	})

	t.Run("bad markdown flag", func(t *testing.T) {
		t.Setenv("IGOSINT_MARKDOWN", "maybe")
		assert.Error(t, DefaultConfig().LoadFromEnv())
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantError bool
	}{
		{
			name:      "valid config",
			mutate:    func(c *Config) {},
			wantError: false,
		},
		{
			name:      "missing user agent",
			mutate:    func(c *Config) { c.HTTP.UserAgent = "" },
			wantError: true,
		},
		{
			name:      "zero probe timeout",
			mutate:    func(c *Config) { c.HTTP.ProbeTimeout = 0 },
			wantError: true,
		},
		{
			name:      "negative image timeout",
			mutate:    func(c *Config) { c.HTTP.ImageTimeout = -time.Second },
			wantError: true,
		},
		{
			name:      "empty output directory",
			mutate:    func(c *Config) { c.Output.BaseDirectory = "" },
			wantError: true,
		},
		{
			name:      "site with path",
			mutate:    func(c *Config) { c.Presence.Sites = []string{"github.com/users"} },
			wantError: true,
		},
		{
			name:      "empty site list is allowed",
			mutate:    func(c *Config) { c.Presence.Sites = nil },
			wantError: false,
		},
		{
			name:      "invalid log level",
			mutate:    func(c *Config) { c.Logging.Level = "verbose" },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	config := DefaultConfig()
	config.HTTP.UserAgent = ""
	config.Output.BaseDirectory = ""

	err := config.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user agent is required")
	assert.Contains(t, err.Error(), "output directory is required")
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	content := `
http:
  probe_timeout: 5s
output:
  base_directory: /data/osint
  markdown: true
presence:
  sites:
    - github.com
    - reddit.com
logging:
  level: info
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	config := DefaultConfig()
	require.NoError(t, config.LoadFromFile(configPath))

	assert.Equal(t, 5*time.Second, config.HTTP.ProbeTimeout)
	assert.Equal(t, 30*time.Second, config.HTTP.ProfileTimeout)
	assert.Equal(t, "/data/osint", config.Output.BaseDirectory)
	assert.Equal(t, "images", config.Output.ImagesDir)
	assert.True(t, config.Output.Markdown)
	assert.Equal(t, []string{"github.com", "reddit.com"}, config.Presence.Sites)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadFromFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		err := DefaultConfig().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("http: [unterminated"), 0644))
		assert.Error(t, DefaultConfig().LoadFromFile(path))
	})
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	original := DefaultConfig()
	original.Output.BaseDirectory = "/srv/reports"
	original.Presence.Sites = []string{"github.com"}
	require.NoError(t, original.Save(path))

	loaded := DefaultConfig()
	require.NoError(t, loaded.LoadFromFile(path))
	assert.Equal(t, original, loaded)
}

func TestMergeCommandLineFlags(t *testing.T) {
	config := DefaultConfig()
	config.MergeCommandLineFlags(map[string]interface{}{
		"output":    "/tmp/cli",
		"log-level": "debug",
		"markdown":  true,
	})

	assert.Equal(t, "/tmp/cli", config.Output.BaseDirectory)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.True(t, config.Output.Markdown)
}

func TestLoadPrecedence(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output:\n  base_directory: from-file\nlogging:\n  level: info\n"), 0644))

	t.Setenv("IGOSINT_OUTPUT_DIR", "from-env")

	config, err := Load(configPath, map[string]interface{}{"log-level": "error"})
	require.NoError(t, err)

	assert.Equal(t, "from-env", config.Output.BaseDirectory)
	assert.Equal(t, "error", config.Logging.Level)
}

func TestLoadInvalidConfig(t *testing.T) {
	t.Setenv("IGOSINT_LOG_LEVEL", "chatty")

	_, err := Load("", nil)
	assert.Error(t, err)
}
