package tui

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseKeyOverrides(t *testing.T) {
	data := []byte(`[keys]
draw = ["x", "tab"]
quit = ["ctrl+q"]
`)
	got, err := parseKeyOverrides(data)
	if err != nil {
		t.Fatalf("parseKeyOverrides: %v", err)
	}
	want := map[string][]string{
		"draw": {"x", "tab"},
		"quit": {"ctrl+q"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("overrides = %v, want %v", got, want)
	}
}

func TestParseKeyOverridesRejectsBadEntries(t *testing.T) {
	if _, err := parseKeyOverrides([]byte("[keys]\ndraw = []\n")); err == nil {
		t.Error("expected error for an action with no keys")
	}
	if _, err := parseKeyOverrides([]byte("[keys]\ndraw = [\"\"]\n")); err == nil {
		t.Error("expected error for an empty key string")
	}
	if _, err := parseKeyOverrides([]byte("not toml at all = [")); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestApplyKeyOverrides(t *testing.T) {
	km := newKeyMap()
	km, err := applyKeyOverrides(km, map[string][]string{
		"draw": {"x", "tab"},
	})
	if err != nil {
		t.Fatalf("applyKeyOverrides: %v", err)
	}
	if got := km.Draw.Keys(); !reflect.DeepEqual(got, []string{"x", "tab"}) {
		t.Errorf("Draw keys = %v, want [x tab]", got)
	}
	if km.Draw.Help().Desc != "draw" {
		t.Errorf("Draw help desc = %q, want the original description", km.Draw.Help().Desc)
	}
	if got := km.Quit.Keys(); !reflect.DeepEqual(got, []string{"q", "ctrl+c"}) {
		t.Errorf("Quit keys changed without an override: %v", got)
	}
}

func TestApplyKeyOverridesUnknownAction(t *testing.T) {
	if _, err := applyKeyOverrides(newKeyMap(), map[string][]string{"bogus": {"x"}}); err == nil {
		t.Error("expected error for an unknown action name")
	}
}

func TestLoadKeyOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := loadKeyOverrides()
	if err != nil {
		t.Fatalf("loadKeyOverrides with no file: %v", err)
	}
	if got != nil {
		t.Errorf("overrides = %v, want nil for a missing file", got)
	}

	cfgDir := filepath.Join(dir, "klondike")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "[keys]\nnew_deal = [\"r\"]\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "keybindings.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err = loadKeyOverrides()
	if err != nil {
		t.Fatalf("loadKeyOverrides: %v", err)
	}
	if !reflect.DeepEqual(got, map[string][]string{"new_deal": {"r"}}) {
		t.Errorf("overrides = %v", got)
	}
}
