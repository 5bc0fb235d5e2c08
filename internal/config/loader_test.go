package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files the test creates.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadHostEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadHost("")
	if err != nil {
		t.Fatalf("LoadHost() error: %v", err)
	}
	if cfg != DefaultHostConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultHostConfig())
	}
}

func TestLoadHostSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "breakout.yaml"), "variant: dense\ntick_rate: 30\n")

	cfg, err := LoadHost("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Variant != "dense" || cfg.TickRate != 30 {
		t.Errorf("local config not used: %+v", cfg)
	}

	writeFile(t, filepath.Join(home, ".breakout", "config.yaml"), "tick_rate: 90\n")

	cfg, err = LoadHost("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TickRate != 90 || cfg.Variant != "classic" {
		t.Errorf("user config should win over local: %+v", cfg)
	}
}

func TestLoadHostSkipsBrokenSearchFiles(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".breakout", "config.yaml"), "variant: [oops\n")

	cfg, err := LoadHost("")
	if err != nil {
		t.Fatalf("broken user config should be skipped, got %v", err)
	}
	if cfg != DefaultHostConfig() {
		t.Errorf("cfg = %+v, expected defaults", cfg)
	}
}

func TestLoadHostCustomPath(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "custom.yaml")

	tests := []struct {
		name    string
		content string
		wantErr error
		check   func(t *testing.T, cfg HostConfig)
	}{
		{
			name:    "partial file keeps defaults",
			content: "log:\n  level: debug\nsim:\n  seed: 42\n",
			check: func(t *testing.T, cfg HostConfig) {
				if cfg.Log.Level != "debug" || cfg.Sim.Seed != 42 {
					t.Errorf("overrides not applied: %+v", cfg)
				}
				if cfg.TickRate != 60 || cfg.Sim.MaxTicks != 36000 || cfg.Controls.KeyStep != 16 {
					t.Errorf("defaults lost: %+v", cfg)
				}
			},
		},
		{
			name:    "unknown variant",
			content: "variant: hexagonal\n",
			wantErr: ErrUnknownVariant,
		},
		{
			name:    "zero tick rate",
			content: "tick_rate: 0\n",
			wantErr: ErrTickRate,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			writeFile(t, path, tc.content)

			cfg, err := LoadHost(path)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("LoadHost() error = %v, expected %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadHost() error: %v", err)
			}
			tc.check(t, cfg)
		})
	}
}

func TestLoadHostMissingCustomPath(t *testing.T) {
	_, work := isolate(t)

	if _, err := LoadHost(filepath.Join(work, "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := isolate(t)

	tests := []struct {
		in   string
		want string
	}{
		{"~/logs/b.log", filepath.Join(home, "logs", "b.log")},
		{"~", home},
		{"/var/log/b.log", "/var/log/b.log"},
		{"relative/~b", "relative/~b"},
	}
	for _, tc := range tests {
		if got := ExpandHome(tc.in); got != tc.want {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
