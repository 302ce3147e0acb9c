package palette

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDirFor(t *testing.T) {
	home := func() (string, error) { return "/home/ink", nil }

	tests := []struct {
		name    string
		goos    string
		env     map[string]string
		want    string
		wantErr bool
	}{
		{
			name: "xdg config home",
			goos: "linux",
			env:  map[string]string{"XDG_CONFIG_HOME": "/srv/config"},
			want: filepath.Join("/srv/config", "inkscape", "palettes"),
		},
		{
			name: "default config root",
			goos: "linux",
			want: filepath.Join("/home/ink", ".config", "inkscape", "palettes"),
		},
		{
			name: "tilde in xdg",
			goos: "darwin",
			env:  map[string]string{"XDG_CONFIG_HOME": "~/cfg"},
			want: filepath.Join("/home/ink", "cfg", "inkscape", "palettes"),
		},
		{
			name: "windows appdata",
			goos: "windows",
			env:  map[string]string{"APPDATA": "/appdata", "XDG_CONFIG_HOME": "/ignored"},
			want: filepath.Join("/appdata", "inkscape", "palettes"),
		},
		{
			name:    "windows without appdata",
			goos:    "windows",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			got, err := DirFor(tt.goos, getenv, home)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DirFor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DirFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDirForHomeError(t *testing.T) {
	home := func() (string, error) { return "", errors.New("no home") }
	if _, err := DirFor("linux", func(string) string { return "" }, home); err == nil {
		t.Error("DirFor() expected error when the home directory is unknown")
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "Brand", want: "Brand.gpl"},
		{name: "My Brand Colours", want: "My-Brand-Colours.gpl"},
		{name: "", wantErr: true},
		{name: "../escape", wantErr: true},
		{name: "sub/dir", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FileName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FileName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FileName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
