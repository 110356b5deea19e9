package magazyn

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"margin": 0.25, "sync_server_url": "", "shared_file_path": "shared_inventory.json"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := decimal.NewFromFloat(0.25); !cfg.Margin.Equal(want) {
		t.Errorf("margin = %v, want %v", cfg.Margin, want)
	}
	if cfg.SharedFilePath != "shared_inventory.json" {
		t.Errorf("shared file path = %q", cfg.SharedFilePath)
	}
}

func TestLoadConfig_partialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"sync_server_url": "http://example.invalid"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Margin.Equal(DefaultMargin) {
		t.Errorf("margin = %v, want default %v", cfg.Margin, DefaultMargin)
	}
}

func TestBootstrap_materializesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Bootstrap(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Margin.Equal(DefaultMargin) {
		t.Errorf("margin = %v, want %v", cfg.Margin, DefaultMargin)
	}

	// The default config file must now exist and be loadable.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), `"margin": 0.3`) {
		t.Errorf("written config lacks margin:\n%s", data)
	}
	again, err := Bootstrap(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !again.Margin.Equal(cfg.Margin) {
		t.Errorf("second bootstrap margin = %v, want %v", again.Margin, cfg.Margin)
	}
}
