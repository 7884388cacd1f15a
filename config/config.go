package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kbheight/keyboard"
	"kbheight/log"
)

const (
	ConfigFileName = "config.json"

	// HomeEnvVar overrides the config directory.
	HomeEnvVar = "KBHEIGHT_HOME"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ErrUnknownProfile is returned when a profile name is not configured.
var ErrUnknownProfile = errors.New("unknown profile")

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	if dir := os.Getenv(HomeEnvVar); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".kbheight"), nil
}

// DeviceProfile is a named set of display metrics.
type DeviceProfile struct {
	Name     string  `json:"name"`
	WidthPx  int     `json:"width_px"`
	HeightPx int     `json:"height_px"`
	YDpi     float64 `json:"ydpi"`
}

// Metrics converts the profile to display metrics.
func (p DeviceProfile) Metrics() keyboard.DisplayMetrics {
	return keyboard.DisplayMetrics{
		ScreenWidthPx:   p.WidthPx,
		ScreenHeightPx:  p.HeightPx,
		VerticalDensity: p.YDpi,
	}
}

// RowDefaults are the row-based layout parameters used when none are given.
type RowDefaults struct {
	Rows        int `json:"rows"`
	KeyHeightPx int `json:"key_height_px"`
	GapPx       int `json:"gap_px"`
}

// Params converts the defaults to gap adjustment parameters.
func (r RowDefaults) Params() keyboard.RowLayoutParams {
	return keyboard.RowLayoutParams{
		RowCount:              r.Rows,
		KeyHeightPx:           r.KeyHeightPx,
		ExistingVerticalGapPx: r.GapPx,
	}
}

// Config represents the application configuration. It is loaded once and
// passed by value to whatever needs it; nothing mutates it after loading.
type Config struct {
	// DefaultProfile names the profile used when no metrics are given.
	DefaultProfile string `json:"default_profile"`
	// Profiles are the known devices.
	Profiles []DeviceProfile `json:"profiles"`
	// RowLayout holds the default row-based layout parameters.
	RowLayout RowDefaults `json:"row_layout"`
	// Output is the default output format: "text" or "json".
	Output string `json:"output"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		DefaultProfile: "phone",
		Profiles: []DeviceProfile{
			{Name: "phone", WidthPx: 1080, HeightPx: 2340, YDpi: 420},
			{Name: "phone-landscape", WidthPx: 2340, HeightPx: 1080, YDpi: 420},
			{Name: "tablet", WidthPx: 1600, HeightPx: 2560, YDpi: 320},
			{Name: "tablet-landscape", WidthPx: 2560, HeightPx: 1600, YDpi: 320},
			{Name: "no-density", WidthPx: 720, HeightPx: 1280, YDpi: 0},
		},
		RowLayout: RowDefaults{Rows: 4, KeyHeightPx: 150, GapPx: 10},
		Output:    OutputText,
	}
}

// Profile looks up a profile by name.
func (c Config) Profile(name string) (DeviceProfile, error) {
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return DeviceProfile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// ProfileNames returns the profile names in configuration order.
func (c Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for _, p := range c.Profiles {
		names = append(names, p.Name)
	}
	return names
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("invalid output %q (must be %q or %q)", c.Output, OutputText, OutputJSON)
	}

	seen := make(map[string]bool, len(c.Profiles))
	for i, p := range c.Profiles {
		if p.Name == "" {
			return fmt.Errorf("profile %d has no name", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate profile %q", p.Name)
		}
		seen[p.Name] = true

		if err := keyboard.Validate(p.Metrics(), 0, c.RowLayout.Params()); err != nil {
			return fmt.Errorf("profile %q: %w", p.Name, err)
		}
	}

	if _, err := c.Profile(c.DefaultProfile); err != nil {
		return fmt.Errorf("default profile: %w", err)
	}
	return nil
}

// clone returns a copy that shares no slices with c.
func (c Config) clone() Config {
	c.Profiles = append([]DeviceProfile(nil), c.Profiles...)
	return c
}

// LoadConfig reads the configuration from disk. Any failure is logged and
// the defaults are returned instead.
func LoadConfig() Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := SaveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	// Keys missing from the file keep their default values. Profiles are
	// decoded into a fresh slice so defaults never leak into user entries.
	config := DefaultConfig()
	config.Profiles = nil
	if err := json.Unmarshal(data, &config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)
		backupConfig(configPath, data)
		return DefaultConfig()
	}
	if config.Profiles == nil {
		config.Profiles = DefaultConfig().Profiles
	}

	if err := config.Validate(); err != nil {
		log.ErrorLog.Printf("invalid config file at %s: %v", configPath, err)
		backupConfig(configPath, data)
		return DefaultConfig()
	}

	return config.clone()
}

// backupConfig keeps a copy of an unusable config file before defaults replace it.
func backupConfig(configPath string, data []byte) {
	backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
	if err := os.WriteFile(backupPath, data, 0644); err == nil {
		log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
	}
}

// SaveConfig writes the configuration to disk under an exclusive lock.
func SaveConfig(config Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return withLock(configPath, func() error {
		return os.WriteFile(configPath, data, 0644)
	})
}

// ConfigPath returns the path of the config file.
func ConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}
