package i18n

import (
	"errors"
	"fmt"
	"testing"

	"golang.org/x/text/language"

	"github.com/jmylchreest/gplgen/internal/palette"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{locale: "", want: language.English},
		{locale: "C", want: language.English},
		{locale: "POSIX", want: language.English},
		{locale: "en_GB.UTF-8", want: language.English},
		{locale: "de_DE.UTF-8", want: language.German},
		{locale: "de_AT@euro", want: language.German},
		{locale: "fr-CA", want: language.French},
		{locale: "es", want: language.Spanish},
		{locale: "ja_JP", want: language.English},
		{locale: "not a locale!", want: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			if got := Match(tt.locale); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.locale, got, tt.want)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{"LC_MESSAGES": "fr_FR.UTF-8", "LANG": "de_DE.UTF-8"}
	getenv := func(k string) string { return env[k] }

	if got := FromEnv("", getenv); got != language.French {
		t.Errorf("FromEnv() = %v, want fr", got)
	}
	if got := FromEnv("es", getenv); got != language.Spanish {
		t.Errorf("FromEnv(es) = %v, want es", got)
	}
	if got := FromEnv("", func(string) string { return "" }); got != language.English {
		t.Errorf("FromEnv() with empty environment = %v, want en", got)
	}
}

func TestErrorMessage(t *testing.T) {
	sel := palette.Selection{}
	err := palette.Validate(palette.Options{Name: "x"}, sel)
	if !errors.Is(err, palette.ErrTooFewObjects) {
		t.Fatalf("Validate() error = %v", err)
	}

	tests := []struct {
		tag  language.Tag
		want string
	}{
		{tag: language.English, want: "Please select at least 2 objects."},
		{tag: language.German, want: "Bitte wählen Sie mindestens 2 Objekte aus."},
		{tag: language.French, want: "Veuillez sélectionner au moins 2 objets."},
		{tag: language.Spanish, want: "Seleccione al menos 2 objetos."},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			if got := ErrorMessage(NewPrinter(tt.tag), err); got != tt.want {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}

	plain := fmt.Errorf("failed to read document: %w", errors.New("boom"))
	if got := ErrorMessage(NewPrinter(language.German), plain); got != plain.Error() {
		t.Errorf("ErrorMessage(plain) = %q, want %q", got, plain.Error())
	}
}

func TestStatusMessages(t *testing.T) {
	p := NewPrinter(language.German)
	if got, want := p.Sprintf(MsgWritten, "Web", "/tmp/Web.gpl"), `Palette "Web" nach /tmp/Web.gpl geschrieben`; got != want {
		t.Errorf("Sprintf(MsgWritten) = %q, want %q", got, want)
	}

	p = NewPrinter(language.English)
	if got, want := p.Sprintf(MsgWritten, "Web", "/tmp/Web.gpl"), `Palette "Web" written to /tmp/Web.gpl`; got != want {
		t.Errorf("Sprintf(MsgWritten) = %q, want %q", got, want)
	}
}

func TestTranslationsComplete(t *testing.T) {
	keys := []string{
		palette.MsgNameRequired, palette.MsgTooFewObjects, palette.MsgPaletteExists, palette.MsgNoColours,
		MsgWritten, MsgDryRun, MsgRestartInkscape, MsgSelectionRequired, MsgNoPalettes,
	}
	for tag, msgs := range translations {
		for _, key := range keys {
			if _, ok := msgs[key]; !ok {
				t.Errorf("%v: missing translation for %q", tag, key)
			}
		}
	}
}
