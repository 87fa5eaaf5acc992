package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{Files: Files{DataDir: "/data"}},
		Server:  Server{HTTPAddress: ":8080"},
		Log:     Log{Level: "info"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder fails validation
// because the data directory is required.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that later layers override earlier
// non-zero fields and leave the rest untouched.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{Server: Server{HTTPAddress: ":9999"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, ":9999", cfg.Server.HTTPAddress)
	assert.Equal(t, defaultDataDir, cfg.Storage.Files.DataDir)
	assert.Equal(t, defaultShutdownTimeout, cfg.Server.ShutdownTimeout)
}

// TestBuild_Defaults verifies the built-in defaults pass validation.
func TestBuild_Defaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, defaultVersion, cfg.App.Version)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultDataDir, cfg.Storage.Files.DataDir)
	assert.Equal(t, defaultReadHeaderTimeout, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, defaultLogLevel, cfg.Log.Level)
	assert.Empty(t, cfg.Server.MetricsAddress)
	assert.False(t, cfg.Storage.Files.LockAccounts)
	assert.Zero(t, cfg.Server.MaxUploadBytes)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "empty data dir",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Files.DataDir = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "bucket without region",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Mirror.S3.Bucket = "b" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "bucket with region",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Mirror.S3.Bucket = "b"
				cfg.Storage.Mirror.S3.Region = "us-east-1"
			},
		},
		{
			name:    "empty http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative upload limit",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.MaxUploadBytes = -1 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.Log.Level = "loud" },
			wantErr: ErrInvalidLogConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":            "env-version",
		"STORAGE_FILES_DATA_DIR": "/env/data",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "/env/data", b.configs[0].Storage.Files.DataDir)
}

// TestWithEnv_SetsErrorOnBadValue verifies conversion failures are collected.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_MAX_UPLOAD_BYTES": "lots"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

// TestWithFlags_SetsErrorOnUnknownFlag verifies parse errors are collected.
func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-unknown"})

	assert.ErrorIs(t, b.err, ErrInvalidFlags)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_NoOp_WhenNoPathSet verifies that withFile does nothing when
// no config has a FilePath.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithFile_InsertsAboveDefaults verifies that the file layer lands right
// after the defaults so env and flags still win.
func TestWithFile_InsertsAboveDefaults(t *testing.T) {
	payload := fileConfig{}
	payload.App.Version = "file-version"
	payload.Server.HTTPAddress = ":7000"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		FilePath: path,
		Server:   Server{HTTPAddress: ":9000"},
	})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "file-version", b.configs[1].App.Version)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "file-version", cfg.App.Version)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
}

// TestWithFile_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		FilePath: "/nonexistent/config.json",
	})
	b.withFile()

	assert.Error(t, b.err)
}

// TestWithFile_UsesLastPath verifies that when multiple configs have a
// FilePath, the last non-empty one wins.
func TestWithFile_UsesLastPath(t *testing.T) {
	first := fileConfig{}
	first.App.Version = "first"
	last := fileConfig{}
	last.App.Version = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{FilePath: writeTempJSONConfig(t, last)},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[1].App.Version)
}

// ── loadStructuredConfig ──────────────────────────────────────────────────────

// TestLoadStructuredConfig_Precedence verifies defaults < file < env < flags.
func TestLoadStructuredConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vault.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storage:
  files:
    data_dir: /from/file
server:
  http_address: ":7000"
  shutdown_timeout: 42s
log:
  level: warn
`), 0o600))

	setEnvVars(t, map[string]string{
		"CONFIG":         path,
		"SERVER_ADDRESS": ":8000",
		"LOG_LEVEL":      "debug",
	})

	cfg, err := loadStructuredConfig([]string{"-log-level", "error"})
	require.NoError(t, err)

	assert.Equal(t, "/from/file", cfg.Storage.Files.DataDir)
	assert.Equal(t, 42*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, ":8000", cfg.Server.HTTPAddress)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, defaultReadHeaderTimeout, cfg.Server.ReadHeaderTimeout)
}
