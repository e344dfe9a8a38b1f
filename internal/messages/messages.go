// Package messages renders role- and language-specific chat text.
// Rendering is a pure mapping from (language, key, params) to a string.
package messages

import "strings"

// DefaultLanguage is the fallback for unknown languages and missing keys.
const DefaultLanguage = "en"

// Params holds {placeholder} substitutions for a template.
type Params map[string]string

// Bundle resolves templates for a single language.
type Bundle struct {
	lang string
}

// ForLanguage returns a bundle for the given language code.
// Unknown languages fall back to English.
func ForLanguage(lang string) Bundle {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, ok := catalog[lang]; !ok {
		lang = DefaultLanguage
	}
	return Bundle{lang: lang}
}

// Language returns the resolved language code.
func (b Bundle) Language() string {
	if b.lang == "" {
		return DefaultLanguage
	}
	return b.lang
}

// Get renders the template for key, substituting {name}-style placeholders.
func (b Bundle) Get(key string, params ...Params) string {
	text, ok := catalog[b.Language()][key]
	if !ok {
		text, ok = catalog[DefaultLanguage][key]
	}
	if !ok {
		return key
	}
	if len(params) == 0 || len(params[0]) == 0 {
		return text
	}
	pairs := make([]string, 0, len(params[0])*2)
	for name, value := range params[0] {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Known reports whether the key exists in any catalog.
func Known(key string) bool {
	for _, templates := range catalog {
		if _, ok := templates[key]; ok {
			return true
		}
	}
	return false
}
