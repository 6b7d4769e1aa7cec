// Package locale holds the page chrome strings for each supported language.
package locale

import (
	"golang.org/x/text/language"

	"github.com/ziadkadry99/cheatsheet/internal/theme"
)

// Strings is the fixed, non-dataset text of the page.
type Strings struct {
	Lang        string
	Eyebrow     string
	Title       string
	Subtitle    string
	JumpText    string
	SwitchTo    string // prefix shown before the target mode name
	NavTitle    string
	NavLabel    string
	FooterTop   string
	Credit      string
	Wording     theme.Wording
	PreviewHelp string
}

var german = Strings{
	Lang:      "de",
	Eyebrow:   "Spickzettel",
	Title:     "Häufig genutzte JavaScript-Methoden im Überblick",
	Subtitle:  "Schnellreferenz für die Methoden, die dir beim Umgang mit Daten, dem DOM, asynchronen Abläufen und mehr helfen.",
	JumpText:  "Abschnitte ansehen",
	SwitchTo:  "Wechsel zu",
	NavTitle:  "Schnellzugriff",
	NavLabel:  "Abschnittsnavigation",
	FooterTop: "Zum Seitenanfang",
	Credit:    "Erstellt für schnelle JavaScript-Referenzen.",
	Wording: theme.Wording{
		SwitchToLight: "In den Hellmodus wechseln",
		SwitchToDark:  "In den Dunkelmodus wechseln",
		LightName:     "Hellmodus",
		DarkName:      "Dunkelmodus",
	},
	PreviewHelp: "t: Modus wechseln • ↑/↓: scrollen • q: beenden",
}

var english = Strings{
	Lang:      "en",
	Eyebrow:   "Cheat sheet",
	Title:     "Commonly used JavaScript methods at a glance",
	Subtitle:  "A quick reference for the methods that help you with data, the DOM, asynchronous code and more.",
	JumpText:  "Browse sections",
	SwitchTo:  "Switch to",
	NavTitle:  "Quick access",
	NavLabel:  "Section navigation",
	FooterTop: "Back to top",
	Credit:    "Made for quick JavaScript lookups.",
	Wording: theme.Wording{
		SwitchToLight: "Switch to light mode",
		SwitchToDark:  "Switch to dark mode",
		LightName:     "Light mode",
		DarkName:      "Dark mode",
	},
	PreviewHelp: "t: toggle mode • ↑/↓: scroll • q: quit",
}

// German is first so it wins when nothing matches.
var (
	supported = []language.Tag{language.German, language.English}
	catalog   = []Strings{german, english}
	matcher   = language.NewMatcher(supported)
)

// Lookup returns the strings that best match the given language tags, e.g.
// "en-GB" or "de-AT, en;q=0.8". Unknown or empty input yields German.
func Lookup(tags ...string) Strings {
	_, idx := language.MatchStrings(matcher, tags...)
	if idx < 0 || idx >= len(catalog) {
		return german
	}
	return catalog[idx]
}
