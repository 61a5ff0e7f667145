package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if !cfg.UI.ShowClose || !cfg.UI.Bell || !cfg.UI.SmartCase {
		t.Errorf("Expected defaults, got %+v", cfg.UI)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `ui:
  size: small
  bell: false
strings:
  editor.noResults: "Nothing here"
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.UI.Size != "small" {
		t.Errorf("Expected size small, got %q", cfg.UI.Size)
	}
	if cfg.UI.Bell {
		t.Error("Expected bell disabled")
	}
	if !cfg.UI.ShowClose {
		t.Error("Expected show_close to keep its default")
	}
	if cfg.Strings["editor.noResults"] != "Nothing here" {
		t.Errorf("Expected string override, got %v", cfg.Strings)
	}
}

func TestLoadFrom_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("Expected a parse error")
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.UI.Placeholder = "Find…"
	cfg.UI.ShowClose = false

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected mode 0600, got %v", info.Mode().Perm())
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if got.UI.Placeholder != "Find…" || got.UI.ShowClose {
		t.Errorf("Round trip lost settings: %+v", got.UI)
	}
}
