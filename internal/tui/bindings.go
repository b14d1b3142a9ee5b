package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/bubbles/key"
)

// ---------------------------------------------------------------------------
// Key binding overrides (TOML-based)
// ---------------------------------------------------------------------------
//
// Users can rebind actions in ~/.config/klondike/keybindings.toml:
//
//	[keys]
//	draw = ["d", "tab"]
//	quit = ["q", "ctrl+c"]
//
// Unlisted actions keep their defaults. A missing file is not an error.

type bindingsFile struct {
	Keys map[string][]string `toml:"keys"`
}

// bindingsPath returns the full path to the keybindings.toml file,
// using XDG_CONFIG_HOME or falling back to ~/.config.
func bindingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "klondike", "keybindings.toml"), nil
}

// loadKeyOverrides reads the override file if it exists.
func loadKeyOverrides() (map[string][]string, error) {
	path, err := bindingsPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read keybindings: %w", err)
	}
	return parseKeyOverrides(data)
}

// parseKeyOverrides parses TOML bytes into an action -> keys map.
func parseKeyOverrides(data []byte) (map[string][]string, error) {
	var f bindingsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse keybindings.toml: %w", err)
	}
	for action, keys := range f.Keys {
		if len(keys) == 0 {
			return nil, fmt.Errorf("keybindings.toml: action %q has no keys", action)
		}
		for _, k := range keys {
			if k == "" {
				return nil, fmt.Errorf("keybindings.toml: action %q has an empty key", action)
			}
		}
	}
	return f.Keys, nil
}

// applyKeyOverrides rebinds the named actions, keeping each binding's
// help text. Unknown action names are an error so typos surface.
func applyKeyOverrides(km keyMap, overrides map[string][]string) (keyMap, error) {
	targets := map[string]*key.Binding{
		"left":       &km.Left,
		"right":      &km.Right,
		"up":         &km.Up,
		"down":       &km.Down,
		"select":     &km.Select,
		"waste":      &km.Waste,
		"foundation": &km.Foundation,
		"draw":       &km.Draw,
		"new_deal":   &km.NewDeal,
		"palette":    &km.Palette,
		"help":       &km.Help,
		"cancel":     &km.Cancel,
		"quit":       &km.Quit,
	}
	for action, keys := range overrides {
		binding, ok := targets[action]
		if !ok {
			return km, fmt.Errorf("keybindings.toml: unknown action %q", action)
		}
		desc := binding.Help().Desc
		*binding = key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], desc))
	}
	return km, nil
}
