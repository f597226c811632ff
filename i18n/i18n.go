// Package i18n provides the localized message catalog used to render test
// outcomes. Each supported language maps message keys to fmt-style templates;
// a Renderer resolves a key for its language and substitutes positional
// arguments. Catalogs are immutable: they are built once at package init and
// never mutated at runtime.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Supported languages, in matcher priority order. English is the fallback.
var supported = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
}

var matcher = language.NewMatcher(supported)

// Supported returns the languages the catalog ships templates for.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Parse resolves a BCP 47 language string (e.g. "en", "es-MX") to the closest
// supported language. Unknown or malformed input falls back to English.
func Parse(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	_, idx, _ := matcher.Match(tag)
	return supported[idx]
}

// Renderer renders catalog templates for a single language.
type Renderer struct {
	tag      language.Tag
	messages map[string]string
}

// NewRenderer returns a Renderer for the closest supported match of tag.
func NewRenderer(tag language.Tag) *Renderer {
	_, idx, _ := matcher.Match(tag)
	resolved := supported[idx]
	return &Renderer{
		tag:      resolved,
		messages: catalogs[resolved.String()],
	}
}

// Tag returns the resolved language of this renderer.
func (r *Renderer) Tag() language.Tag {
	return r.tag
}

// Render looks up the template for key and substitutes the positional
// arguments. A key missing from this language's catalog falls back to the
// English catalog, and an entirely unknown key renders as the key itself.
// Mismatched arguments surface fmt's diagnostic verbs (e.g. %!s(MISSING))
// instead of failing the run.
func (r *Renderer) Render(key string, args ...any) string {
	pattern, ok := r.messages[key]
	if !ok {
		pattern, ok = catalogs[language.English.String()][key]
		if !ok {
			return key
		}
	}
	if len(args) == 0 {
		return pattern
	}
	return fmt.Sprintf(pattern, args...)
}
