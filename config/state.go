package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"kbheight/keyboard"
	"kbheight/log"
)

const StateFileName = "state.json"

// Inputs are the calculator's input values.
type Inputs struct {
	Profile     string  `json:"profile,omitempty"`
	WidthPx     int     `json:"width_px"`
	HeightPx    int     `json:"height_px"`
	YDpi        float64 `json:"ydpi"`
	Rows        int     `json:"rows"`
	KeyHeightPx int     `json:"key_height_px"`
	GapPx       int     `json:"gap_px"`
}

// InputsFor builds calculator inputs from a profile and row defaults.
func InputsFor(p DeviceProfile, row RowDefaults) Inputs {
	return Inputs{
		Profile:     p.Name,
		WidthPx:     p.WidthPx,
		HeightPx:    p.HeightPx,
		YDpi:        p.YDpi,
		Rows:        row.Rows,
		KeyHeightPx: row.KeyHeightPx,
		GapPx:       row.GapPx,
	}
}

// Metrics returns the display part of the inputs.
func (in Inputs) Metrics() keyboard.DisplayMetrics {
	return keyboard.DisplayMetrics{
		ScreenWidthPx:   in.WidthPx,
		ScreenHeightPx:  in.HeightPx,
		VerticalDensity: in.YDpi,
	}
}

// Row returns the row layout part of the inputs.
func (in Inputs) Row() keyboard.RowLayoutParams {
	return keyboard.RowLayoutParams{
		RowCount:              in.Rows,
		KeyHeightPx:           in.KeyHeightPx,
		ExistingVerticalGapPx: in.GapPx,
	}
}

// State is what the calculator remembers between runs.
type State struct {
	// LastInputs are the inputs shown when the calculator last exited.
	LastInputs *Inputs `json:"last_inputs,omitempty"`
}

// DefaultState returns the default state
func DefaultState() *State {
	return &State{}
}

// LoadState loads the state from disk. If it cannot be done, we return the default state.
// This function acquires a shared lock to allow concurrent reads.
func LoadState() *State {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultState()
	}

	statePath := filepath.Join(configDir, StateFileName)

	lock := NewFileLock(statePath)
	if err := lock.RLock(); err != nil {
		log.WarningLog.Printf("failed to acquire read lock: %v", err)
		// Continue without lock - better to have stale data than fail
	} else {
		defer lock.Unlock()
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WarningLog.Printf("failed to get state file: %v", err)
		}
		return DefaultState()
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		log.ErrorLog.Printf("failed to parse state file: %v", err)
		return DefaultState()
	}
	return &state
}

// SaveState saves the state to disk.
// This function acquires an exclusive lock to prevent concurrent writes.
func SaveState(state *State) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	statePath := filepath.Join(configDir, StateFileName)
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	return withLock(statePath, func() error {
		return os.WriteFile(statePath, data, 0644)
	})
}

// SetLastInputs records the calculator inputs and saves the state.
func (s *State) SetLastInputs(in Inputs) error {
	s.LastInputs = &in
	return SaveState(s)
}
