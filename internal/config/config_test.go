package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-projector/internal/normalizer"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for key := range defaults {
		name := strings.ToUpper(key)
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.PostgresAddress)
	assert.Equal(t, "5433", cfg.PostgresPort)
	assert.Equal(t, "postgres", cfg.PostgresDB)
	assert.Equal(t, "9446", cfg.HTTPPort)
	assert.Equal(t, 4, cfg.OperatorWorkers)
	assert.Equal(t, normalizer.PolarityFlag, cfg.Polarity)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTGRES_ADDRESS", "db.internal")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("OPERATOR_WORKERS", "8")
	t.Setenv("IMPORT_POLARITY", "expense-positive")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.PostgresAddress)
	assert.Equal(t, "5432", cfg.PostgresPort)
	assert.Equal(t, 8, cfg.OperatorWorkers)
	assert.Equal(t, normalizer.PolarityExpensePositive, cfg.Polarity)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "postgres_db: ledger\nhttp_port: \"8080\"\nimport_polarity: signed\n")
	t.Setenv("HTTP_PORT", "9000")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ledger", cfg.PostgresDB)
	assert.Equal(t, "9000", cfg.HTTPPort, "environment wins over the file")
	assert.Equal(t, normalizer.PolaritySigned, cfg.Polarity)
}

func TestProcessEnvironmentVariables_UsesConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(ConfigFileVariable, writeFile(t, "postgres_username: budget\n"))

	cfg, err := ProcessEnvironmentVariables()
	require.NoError(t, err)
	assert.Equal(t, "budget", cfg.PostgresUsername)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown polarity", env: map[string]string{"IMPORT_POLARITY": "sideways"}},
		{name: "no workers", env: map[string]string{"OPERATOR_WORKERS": "0"}},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
