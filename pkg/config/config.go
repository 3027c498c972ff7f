// Package config provides configuration management for the galois CLI tool
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Davincible/galois/internal/validation"
)

// Config represents the main configuration structure
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	Search   SearchConfig    `json:"search"`
	UI       UIConfig        `json:"ui"`
	Export   ExportConfig    `json:"export"`
}

// DefaultSettings selects the field used when no flags are given
type DefaultSettings struct {
	Preset  string   `json:"preset"`            // Default: gf125
	Prime   uint64   `json:"prime,omitempty"`   // Overrides the preset when set
	Modulus []uint64 `json:"modulus,omitempty"` // Highest degree first
}

// SearchConfig bounds the primitive element search
type SearchConfig struct {
	MaxSteps uint64 `json:"max_steps"` // 0 = exhaustive
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor  bool   `json:"use_color"` // Enable colored output
	Verbosity string `json:"verbosity"` // quiet, normal, verbose
}

// ExportConfig contains settings for exported tables
type ExportConfig struct {
	DefaultPath string `json:"default_path"` // Directory for exported tables
	Format      string `json:"format"`       // json, csv
}

// FieldPreset is a named field definition for quick access
type FieldPreset struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Prime       uint64   `json:"prime"`
	Modulus     []uint64 `json:"modulus"`
	Tags        []string `json:"tags"`
}

// builtinPresets are always available and cannot be deleted
var builtinPresets = map[string]*FieldPreset{
	"gf8": {
		Name:        "gf8",
		Description: "GF(2^3) modulo x^3 + x + 1",
		Prime:       2,
		Modulus:     []uint64{1, 0, 1, 1},
		Tags:        []string{"binary"},
	},
	"gf9": {
		Name:        "gf9",
		Description: "GF(3^2) modulo x^2 + 1",
		Prime:       3,
		Modulus:     []uint64{1, 0, 1},
	},
	"gf16": {
		Name:        "gf16",
		Description: "GF(2^4) modulo x^4 + x + 1",
		Prime:       2,
		Modulus:     []uint64{1, 0, 0, 1, 1},
		Tags:        []string{"binary"},
	},
	"gf27": {
		Name:        "gf27",
		Description: "GF(3^3) modulo x^3 + 2x + 1",
		Prime:       3,
		Modulus:     []uint64{1, 0, 2, 1},
	},
	"gf125": {
		Name:        "gf125",
		Description: "GF(5^3) modulo x^3 + 3x + 2",
		Prime:       5,
		Modulus:     []uint64{1, 0, 3, 2},
	},
	"gf256": {
		Name:        "gf256",
		Description: "GF(2^8) modulo the Rijndael polynomial x^8 + x^4 + x^3 + x + 1",
		Prime:       2,
		Modulus:     []uint64{1, 0, 0, 0, 1, 1, 0, 1, 1},
		Tags:        []string{"binary", "aes"},
	},
}

// ConfigManager manages configuration loading and saving
type ConfigManager struct {
	config     *Config
	configPath string
	presets    map[string]*FieldPreset
}

// NewConfigManager creates a new configuration manager. A missing config
// file is not an error: defaults are used until SaveConfig is called.
func NewConfigManager() (*ConfigManager, error) {
	cm := &ConfigManager{
		presets: make(map[string]*FieldPreset),
	}

	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	cm.configPath = configPath

	if err := cm.LoadConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		cm.config = DefaultConfig()
	}

	if err := cm.LoadPresets(); err != nil {
		return nil, err
	}

	return cm, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			Preset: "gf125",
		},
		Search: SearchConfig{
			MaxSteps: 0,
		},
		UI: UIConfig{
			UseColor:  true,
			Verbosity: "normal",
		},
		Export: ExportConfig{
			DefaultPath: ".",
			Format:      "json",
		},
	}
}

// LoadConfig loads the configuration from disk
func (cm *ConfigManager) LoadConfig() error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	cm.config = config
	return nil
}

// SaveConfig saves the configuration to disk
func (cm *ConfigManager) SaveConfig() error {
	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig updates the configuration
func (cm *ConfigManager) SetConfig(config *Config) {
	cm.config = config
}

// Path returns the configuration file path
func (cm *ConfigManager) Path() string {
	return cm.configPath
}

func (cm *ConfigManager) presetsPath() string {
	return filepath.Join(filepath.Dir(cm.configPath), "presets.json")
}

// LoadPresets loads user-defined presets
func (cm *ConfigManager) LoadPresets() error {
	data, err := os.ReadFile(cm.presetsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	presets := make(map[string]*FieldPreset)
	if err := json.Unmarshal(data, &presets); err != nil {
		return fmt.Errorf("failed to parse presets: %w", err)
	}

	cm.presets = presets
	return nil
}

// SavePresets saves user-defined presets to disk
func (cm *ConfigManager) SavePresets() error {
	if err := os.MkdirAll(filepath.Dir(cm.configPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.presets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal presets: %w", err)
	}

	if err := os.WriteFile(cm.presetsPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write presets: %w", err)
	}

	return nil
}

// AddPreset validates and stores a user-defined preset
func (cm *ConfigManager) AddPreset(preset *FieldPreset) error {
	if preset.Name == "" {
		return fmt.Errorf("preset name cannot be empty")
	}
	if _, exists := builtinPresets[preset.Name]; exists {
		return fmt.Errorf("preset '%s' is built in", preset.Name)
	}
	if err := validation.ValidateFieldParams(preset.Prime, preset.Modulus); err != nil {
		return fmt.Errorf("preset '%s': %w", preset.Name, err)
	}

	cm.presets[preset.Name] = preset
	return cm.SavePresets()
}

// GetPreset retrieves a preset by name, user presets first
func (cm *ConfigManager) GetPreset(name string) (*FieldPreset, error) {
	if preset, exists := cm.presets[name]; exists {
		return preset, nil
	}
	if preset, exists := builtinPresets[name]; exists {
		return preset, nil
	}
	return nil, fmt.Errorf("preset '%s' not found", name)
}

// ListPresets returns built-in and user presets sorted by name
func (cm *ConfigManager) ListPresets() []*FieldPreset {
	byName := make(map[string]*FieldPreset, len(builtinPresets)+len(cm.presets))
	for name, preset := range builtinPresets {
		byName[name] = preset
	}
	for name, preset := range cm.presets {
		byName[name] = preset
	}

	presets := make([]*FieldPreset, 0, len(byName))
	for _, preset := range byName {
		presets = append(presets, preset)
	}
	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})
	return presets
}

// DeletePreset removes a user-defined preset
func (cm *ConfigManager) DeletePreset(name string) error {
	if _, exists := cm.presets[name]; !exists {
		return fmt.Errorf("preset '%s' not found", name)
	}

	delete(cm.presets, name)
	return cm.SavePresets()
}

// ResolveField picks the field parameters: explicit prime and modulus win,
// then the named preset, then the configured defaults.
func (cm *ConfigManager) ResolveField(preset string, prime uint64, modulus []uint64) (uint64, []uint64, error) {
	if prime != 0 && len(modulus) > 0 {
		if err := validation.ValidateFieldParams(prime, modulus); err != nil {
			return 0, nil, err
		}
		return prime, modulus, nil
	}
	if prime != 0 || len(modulus) > 0 {
		return 0, nil, fmt.Errorf("--prime and --modulus must be given together")
	}

	if preset == "" {
		defaults := cm.config.Defaults
		if defaults.Prime != 0 && len(defaults.Modulus) > 0 {
			if err := validation.ValidateFieldParams(defaults.Prime, defaults.Modulus); err != nil {
				return 0, nil, fmt.Errorf("config defaults: %w", err)
			}
			return defaults.Prime, defaults.Modulus, nil
		}
		preset = defaults.Preset
	}

	p, err := cm.GetPreset(preset)
	if err != nil {
		return 0, nil, err
	}
	return p.Prime, p.Modulus, nil
}

// getConfigPath returns the configuration file path
func getConfigPath() (string, error) {
	if customPath := os.Getenv("GALOIS_CONFIG"); customPath != "" {
		return customPath, nil
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "galois", "config.json"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "galois", "config.json"), nil
}
