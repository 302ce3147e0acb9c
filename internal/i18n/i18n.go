// Package i18n localises the messages gplgen shows to users.
package i18n

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/jmylchreest/gplgen/internal/palette"
)

// Status lines printed by the CLI. They double as translation keys.
const (
	MsgWritten           = "Palette %q written to %s"
	MsgDryRun            = "Dry run: %s was not written"
	MsgRestartInkscape   = "Inkscape is running; restart it to load the new palette."
	MsgSelectionRequired = "Select objects with --id, --all or --plugin."
	MsgNoPalettes        = "No palettes found in %s"
)

// Supported lists the available languages, English first as the fallback.
var Supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
}

var translations = map[language.Tag]map[string]string{
	language.German: {
		palette.MsgNameRequired:  "Bitte geben Sie einen Palettennamen ein.",
		palette.MsgTooFewObjects: "Bitte wählen Sie mindestens 2 Objekte aus.",
		palette.MsgPaletteExists: "Palette existiert bereits!",
		palette.MsgNoColours:     "Keine Farben in den ausgewählten Objekten gefunden!",
		MsgWritten:               "Palette %q nach %s geschrieben",
		MsgDryRun:                "Testlauf: %s wurde nicht geschrieben",
		MsgRestartInkscape:       "Inkscape läuft; starten Sie es neu, um die neue Palette zu laden.",
		MsgSelectionRequired:     "Wählen Sie Objekte mit --id, --all oder --plugin aus.",
		MsgNoPalettes:            "Keine Paletten in %s gefunden",
	},
	language.French: {
		palette.MsgNameRequired:  "Veuillez saisir un nom de palette.",
		palette.MsgTooFewObjects: "Veuillez sélectionner au moins 2 objets.",
		palette.MsgPaletteExists: "La palette existe déjà !",
		palette.MsgNoColours:     "Aucune couleur trouvée dans les objets sélectionnés !",
		MsgWritten:               "Palette %q écrite dans %s",
		MsgDryRun:                "Essai à blanc : %s n'a pas été écrit",
		MsgRestartInkscape:       "Inkscape est en cours d'exécution ; redémarrez-le pour charger la nouvelle palette.",
		MsgSelectionRequired:     "Sélectionnez des objets avec --id, --all ou --plugin.",
		MsgNoPalettes:            "Aucune palette trouvée dans %s",
	},
	language.Spanish: {
		palette.MsgNameRequired:  "Introduzca un nombre para la paleta.",
		palette.MsgTooFewObjects: "Seleccione al menos 2 objetos.",
		palette.MsgPaletteExists: "¡La paleta ya existe!",
		palette.MsgNoColours:     "¡No se encontraron colores en los objetos seleccionados!",
		MsgWritten:               "Paleta %q escrita en %s",
		MsgDryRun:                "Simulación: %s no se ha escrito",
		MsgRestartInkscape:       "Inkscape está en ejecución; reinícielo para cargar la nueva paleta.",
		MsgSelectionRequired:     "Seleccione objetos con --id, --all o --plugin.",
		MsgNoPalettes:            "No se encontraron paletas en %s",
	},
}

var (
	catalogOnce sync.Once
	builtin     *catalog.Builder
	matcher     = language.NewMatcher(Supported)
)

func messages() catalog.Catalog {
	catalogOnce.Do(func() {
		builtin = catalog.NewBuilder(catalog.Fallback(language.English))
		for tag, msgs := range translations {
			for key, msg := range msgs {
				// Keys and translations are static; SetString only fails on
				// malformed messages.
				_ = builtin.SetString(tag, key, msg)
			}
		}
	})
	return builtin
}

// Match returns the supported language closest to a locale or BCP 47 tag,
// such as "de_DE.UTF-8" or "fr-CA". Unknown and empty values match English.
func Match(locale string) language.Tag {
	tag, err := language.Parse(normalise(locale))
	if err != nil {
		return language.English
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.English
	}
	return Supported[index]
}

// normalise turns a POSIX locale name into a BCP 47 tag.
func normalise(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	switch locale {
	case "", "C", "POSIX":
		return "en"
	}
	return strings.ReplaceAll(locale, "_", "-")
}

// FromEnv picks the language from the first of lang, LC_ALL, LC_MESSAGES
// and LANG that is set.
func FromEnv(lang string, getenv func(string) string) language.Tag {
	if lang != "" {
		return Match(lang)
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := getenv(key); v != "" {
			return Match(v)
		}
	}
	return language.English
}

// NewPrinter returns a printer for the given language.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages()))
}

// ErrorMessage returns the localised message for an abort error, or the
// plain error text for anything else.
func ErrorMessage(p *message.Printer, err error) string {
	var abort *palette.AbortError
	if errors.As(err, &abort) {
		return p.Sprintf(abort.Message)
	}
	return err.Error()
}
