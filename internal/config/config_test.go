package config_test

import (
	"github.com/davejbax/go-baseconv"
	"github.com/davejbax/go-baseconv/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "baseconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644), "test config should be writable")

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err, "Load should not return an error without a file")
	assert.Equal(t, config.Default(), cfg, "Load without a file or environment should return the defaults")
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, "precision: 16\noutput: json\nexact: true\n")

	cfg, err := config.Load(path)
	require.NoError(t, err, "Load should not return an error for a valid file")
	assert.Equal(t, 16, cfg.Precision, "Precision should be read from the file")
	assert.Equal(t, config.OutputJSON, cfg.Output, "Output should be read from the file")
	assert.True(t, cfg.Exact, "Exact should be read from the file")
	assert.Equal(t, "warning", cfg.LogLevel, "Unset values should keep their defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "precision: 16\noutput: json\n")
	t.Setenv("BASECONV_PRECISION", "4")
	t.Setenv("BASECONV_LOG_LEVEL", "debug")

	cfg, err := config.Load(path)
	require.NoError(t, err, "Load should not return an error for valid file and environment")
	assert.Equal(t, 4, cfg.Precision, "Environment should override the file")
	assert.Equal(t, config.OutputJSON, cfg.Output, "File values without an environment override should be kept")
	assert.Equal(t, "debug", cfg.LogLevel, "Environment should override the defaults")
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "Load should fail for a missing file")

	_, err = config.Load(writeConfig(t, "precision: [1, 2]\n"))
	assert.Error(t, err, "Load should fail for a malformed file")

	_, err = config.Load(writeConfig(t, "precision: -1\n"))
	assert.ErrorIs(t, err, config.ErrInvalidPrecision, "Load should reject a negative precision")
	assert.ErrorIs(t, err, baseconv.ErrInvalidPrecision, "Precision errors should match the library's sentinel")

	_, err = config.Load(writeConfig(t, "output: xml\n"))
	assert.ErrorIs(t, err, config.ErrInvalidOutput, "Load should reject an unknown output format")
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("BASECONV_PRECISION", "lots")

	_, err := config.Load("")
	assert.Error(t, err, "Load should fail when the environment cannot be parsed")
}
