package tui

import (
	"encoding/json"
	"os"
)

// UIState is the slice of UI state that survives restarts.
type UIState struct {
	Screen  string `json:"screen"`
	Section string `json:"section"`
}

func LoadUIState(path string) (UIState, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return UIState{}, err
	}
	var out UIState
	if err := json.Unmarshal(raw, &out); err != nil {
		return UIState{}, err
	}
	return out, nil
}

func SaveUIState(path string, state UIState) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
