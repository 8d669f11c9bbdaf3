package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	content := `
store:
  path: /var/lib/airreserve/reservations.txt
flights:
  domestic_file: dom.txt
  international_file: intl.txt
fares:
  domestic: 150
  international: 450
logging:
  level: debug
  format: json
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/airreserve/reservations.txt", cfg.Store.Path)
	assert.Equal(t, "dom.txt", cfg.Flights.DomesticFile)
	assert.Equal(t, "intl.txt", cfg.Flights.InternationalFile)
	assert.Equal(t, 150.0, cfg.Fares.Domestic)
	assert.Equal(t, 450.0, cfg.Fares.International)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	content := "fares:\n  domestic: 120\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 120.0, cfg.Fares.Domestic)
	assert.Equal(t, 300.0, cfg.Fares.International)
	assert.Equal(t, "reservations.txt", cfg.Store.Path)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: [not a mapping"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "reservations.txt", cfg.Store.Path)
	assert.Equal(t, "domestic_flights.txt", cfg.Flights.DomesticFile)
	assert.Equal(t, "international_flights.txt", cfg.Flights.InternationalFile)
	assert.Equal(t, 100.0, cfg.Fares.Domestic)
	assert.Equal(t, 300.0, cfg.Fares.International)
}
