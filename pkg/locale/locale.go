// Copyright (c) 2026 Jhair Studio. All rights reserved.

/*
Package locale defines the languages the platform publishes in and the rules
for resolving localized content.

The site is trilingual (English, Spanish, Dutch). Every public read endpoint
accepts a "lang" query parameter; this package is the single authority on
which values are valid and what happens when one is missing or unknown.

Storage Convention:

Localized fields are stored with a locale suffix on the field name
("hero_title_en", "hero_title_es", "hero_title_nl"). Invariant fields
(image URLs, phone numbers) carry no suffix.

Resolution Rules:

  - Parse: unknown or empty input resolves to English, never an error.
  - Resolve: a missing translation resolves to empty, NEVER to another
    locale's text. Showing Spanish on the Dutch site is worse than showing
    nothing, because an editor will spot a gap but not a silent mix.
*/
package locale

import "strings"

// Locale is an ISO 639-1 language code supported by the platform.
type Locale string

const (
	EN Locale = "en"
	ES Locale = "es"
	NL Locale = "nl"
)

// Default is the locale used when a request does not specify one.
const Default = EN

// Supported returns all locales the platform publishes in, in display order.
func Supported() []Locale {
	return []Locale{EN, ES, NL}
}

// IsSupported reports whether the raw string is a valid locale code.
// Used by endpoints that must reject unknown locales with a 400 instead
// of falling back.
func IsSupported(raw string) bool {
	switch Locale(strings.ToLower(strings.TrimSpace(raw))) {
	case EN, ES, NL:
		return true
	}
	return false
}

// Parse converts a raw string into a [Locale], falling back to [Default]
// for empty or unknown input. It never fails: a bad "lang" value in a
// stored preference should render the English site, not an error page.
func Parse(raw string) Locale {
	normalized := Locale(strings.ToLower(strings.TrimSpace(raw)))
	switch normalized {
	case EN, ES, NL:
		return normalized
	}
	return Default
}

// String implements fmt.Stringer.
func (l Locale) String() string { return string(l) }

// Suffix returns the storage suffix for the locale ("_en", "_es", "_nl").
func (l Locale) Suffix() string { return "_" + string(l) }

// # Field Resolution

// Resolve returns the value of a localized field for the given locale.
//
// It looks up field+"_"+locale in the raw record. A missing translation
// yields an empty string. There is deliberately no fallback to another
// locale.
func Resolve(fields map[string]string, field string, l Locale) string {
	if fields == nil {
		return ""
	}
	return fields[field+l.Suffix()]
}

// Flatten resolves a raw suffixed record into a single-locale view.
//
// Suffixed keys of the active locale are stripped to their logical name
// ("hero_title_es" → "hero_title"); other locales' keys are dropped;
// invariant keys pass through unchanged. The resulting view always has
// the same logical keys regardless of locale, so client templates stay
// stable even when a translation is blank.
func Flatten(fields map[string]string, l Locale) map[string]string {
	flat := make(map[string]string, len(fields))

	for key, value := range fields {
		suffix, found := localeSuffix(key)
		if !found {
			// Invariant field: keep as-is
			flat[key] = value
			continue
		}

		if suffix == l {
			flat[strings.TrimSuffix(key, l.Suffix())] = value
		}
	}

	// Guarantee a stable key set: a logical field whose active-locale
	// variant is absent still appears, as an empty string.
	for key := range fields {
		if suffix, found := localeSuffix(key); found && suffix != l {
			logical := strings.TrimSuffix(key, suffix.Suffix())
			if _, present := flat[logical]; !present {
				flat[logical] = ""
			}
		}
	}

	return flat
}

// localeSuffix extracts the trailing locale marker from a field name.
func localeSuffix(key string) (Locale, bool) {
	for _, l := range Supported() {
		if strings.HasSuffix(key, l.Suffix()) {
			return l, true
		}
	}
	return "", false
}
