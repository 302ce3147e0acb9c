package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		EnvPaletteDir: " /tmp/palettes ",
		EnvLang:       "de",
		EnvLogLevel:   "DEBUG",
		EnvNoColor:    "1",
	}
	cfg, err := FromEnv(func(k string) string { return env[k] })
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	if cfg.PaletteDir != "/tmp/palettes" {
		t.Errorf("PaletteDir = %q, want /tmp/palettes", cfg.PaletteDir)
	}
	if cfg.Lang != "de" {
		t.Errorf("Lang = %q, want de", cfg.Lang)
	}
	if cfg.LogLevel != hclog.Debug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if !cfg.NoColor {
		t.Error("NoColor = false, want true")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(func(string) string { return "" })
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if cfg.PaletteDir != "" || cfg.Lang != "" || cfg.NoColor {
		t.Errorf("FromEnv() = %+v, want zero values", cfg)
	}
	if cfg.LogLevel != hclog.NoLevel {
		t.Errorf("LogLevel = %v, want NoLevel", cfg.LogLevel)
	}
}

func TestFromEnvInvalidLogLevel(t *testing.T) {
	_, err := FromEnv(func(k string) string {
		if k == EnvLogLevel {
			return "loud"
		}
		return ""
	})
	if err == nil {
		t.Error("FromEnv() error = nil, want error")
	}
}

func TestEnvFiles(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want []string
	}{
		{
			name: "xdg",
			env:  map[string]string{"XDG_CONFIG_HOME": "/xdg", "HOME": "/home/u"},
			want: []string{".env", filepath.Join("/xdg", "gplgen", "env")},
		},
		{
			name: "home",
			env:  map[string]string{"HOME": "/home/u"},
			want: []string{".env", filepath.Join("/home/u", ".config", "gplgen", "env")},
		},
		{
			name: "neither",
			env:  map[string]string{},
			want: []string{".env"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnvFiles(func(k string) string { return tt.env[k] })
			if len(got) != len(tt.want) {
				t.Fatalf("EnvFiles() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("EnvFiles()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	if err := os.WriteFile(first, []byte("GPLGEN_TEST_A=first\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("GPLGEN_TEST_A=second\nGPLGEN_TEST_B=second\nGPLGEN_TEST_C=second\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GPLGEN_TEST_A", "")
	t.Setenv("GPLGEN_TEST_B", "")
	t.Setenv("GPLGEN_TEST_C", "preset")
	os.Unsetenv("GPLGEN_TEST_A")
	os.Unsetenv("GPLGEN_TEST_B")

	if err := LoadEnvFiles(filepath.Join(dir, "missing.env"), first, second); err != nil {
		t.Fatalf("LoadEnvFiles() error = %v", err)
	}

	for key, want := range map[string]string{
		"GPLGEN_TEST_A": "first",
		"GPLGEN_TEST_B": "second",
		"GPLGEN_TEST_C": "preset",
	} {
		if got := os.Getenv(key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}
