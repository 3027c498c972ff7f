package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *ConfigManager {
	t.Helper()
	t.Setenv("GALOIS_CONFIG", filepath.Join(t.TempDir(), "config.json"))

	cm, err := NewConfigManager()
	require.NoError(t, err)
	return cm
}

func TestNewConfigManagerDefaults(t *testing.T) {
	cm := newTestManager(t)

	assert.Equal(t, DefaultConfig(), cm.GetConfig())
	_, err := os.Stat(cm.Path())
	assert.True(t, os.IsNotExist(err), "config must not be written until saved")
}

func TestSaveAndLoadConfig(t *testing.T) {
	cm := newTestManager(t)

	cfg := cm.GetConfig()
	cfg.Defaults.Preset = "gf8"
	cfg.Search.MaxSteps = 5000
	require.NoError(t, cm.SaveConfig())

	reloaded, err := NewConfigManager()
	require.NoError(t, err)
	assert.Equal(t, "gf8", reloaded.GetConfig().Defaults.Preset)
	assert.Equal(t, uint64(5000), reloaded.GetConfig().Search.MaxSteps)
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))
	t.Setenv("GALOIS_CONFIG", path)

	_, err := NewConfigManager()
	assert.Error(t, err)
}

func TestConfigPathFromXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GALOIS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", dir)

	cm, err := NewConfigManager()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "galois", "config.json"), cm.Path())
}

func TestPresets(t *testing.T) {
	cm := newTestManager(t)

	preset, err := cm.GetPreset("gf125")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), preset.Prime)
	assert.Equal(t, []uint64{1, 0, 3, 2}, preset.Modulus)

	_, err = cm.GetPreset("missing")
	assert.Error(t, err)

	err = cm.AddPreset(&FieldPreset{Name: "gf49", Prime: 7, Modulus: []uint64{1, 0, 1}})
	require.NoError(t, err)

	assert.Error(t, cm.AddPreset(&FieldPreset{Name: "gf8", Prime: 2, Modulus: []uint64{1, 1, 1}}))
	assert.Error(t, cm.AddPreset(&FieldPreset{Name: "bad", Prime: 6, Modulus: []uint64{1, 0, 1}}))
	assert.Error(t, cm.AddPreset(&FieldPreset{Prime: 7, Modulus: []uint64{1, 0, 1}}))

	reloaded, err := NewConfigManager()
	require.NoError(t, err)
	preset, err = reloaded.GetPreset("gf49")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), preset.Prime)

	names := []string{}
	for _, p := range reloaded.ListPresets() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"gf125", "gf16", "gf256", "gf27", "gf49", "gf8", "gf9"}, names)

	require.NoError(t, reloaded.DeletePreset("gf49"))
	assert.Error(t, reloaded.DeletePreset("gf49"))
	assert.Error(t, reloaded.DeletePreset("gf8"))
}

func TestResolveField(t *testing.T) {
	cm := newTestManager(t)

	tests := []struct {
		name        string
		preset      string
		prime       uint64
		modulus     []uint64
		wantPrime   uint64
		wantModulus []uint64
		wantError   bool
	}{
		{"Defaults", "", 0, nil, 5, []uint64{1, 0, 3, 2}, false},
		{"Preset", "gf8", 0, nil, 2, []uint64{1, 0, 1, 1}, false},
		{"Explicit", "gf8", 3, []uint64{1, 0, 1}, 3, []uint64{1, 0, 1}, false},
		{"Prime without modulus", "", 3, nil, 0, nil, true},
		{"Composite prime", "", 9, []uint64{1, 0, 1}, 0, nil, true},
		{"Unknown preset", "gf1000", 0, nil, 0, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, m, err := cm.ResolveField(tt.preset, tt.prime, tt.modulus)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrime, p)
			assert.Equal(t, tt.wantModulus, m)
		})
	}

	cm.GetConfig().Defaults.Prime = 2
	cm.GetConfig().Defaults.Modulus = []uint64{1, 1, 1}
	p, m, err := cm.ResolveField("", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), p)
	assert.Equal(t, []uint64{1, 1, 1}, m)
}
