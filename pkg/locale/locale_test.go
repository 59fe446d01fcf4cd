// Copyright (c) 2026 Jhair Studio. All rights reserved.

package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhairstudio/jhair-server/pkg/locale"
)

/*
TestParse verifies locale parsing and the English fallback for bad input.
*/
func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want locale.Locale
	}{
		{"english", "en", locale.EN},
		{"spanish", "es", locale.ES},
		{"dutch", "nl", locale.NL},
		{"uppercase", "ES", locale.ES},
		{"padded", "  nl ", locale.NL},
		{"empty_defaults_to_english", "", locale.EN},
		{"unknown_defaults_to_english", "fr", locale.EN},
		{"garbage_defaults_to_english", "en-US;q=0.9", locale.EN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.Parse(tt.raw))
		})
	}
}

/*
TestIsSupported checks strict validation, used by endpoints that must
reject unknown locales instead of falling back.
*/
func TestIsSupported(t *testing.T) {
	assert.True(t, locale.IsSupported("en"))
	assert.True(t, locale.IsSupported("ES"))
	assert.False(t, locale.IsSupported("fr"))
	assert.False(t, locale.IsSupported(""))
}

/*
TestResolve verifies that a missing translation yields empty,
never another locale's text.
*/
func TestResolve(t *testing.T) {
	fields := map[string]string{
		"hero_title_en": "Our Services",
		"hero_title_es": "Nuestros Servicios",
		"phone":         "+31 6 1234 5678",
	}

	assert.Equal(t, "Our Services", locale.Resolve(fields, "hero_title", locale.EN))
	assert.Equal(t, "Nuestros Servicios", locale.Resolve(fields, "hero_title", locale.ES))

	// Dutch translation missing: must NOT fall back to English
	assert.Equal(t, "", locale.Resolve(fields, "hero_title", locale.NL))

	// nil map is safe
	assert.Equal(t, "", locale.Resolve(nil, "hero_title", locale.EN))
}

/*
TestFlatten verifies whole-record resolution to a single locale.
*/
func TestFlatten(t *testing.T) {
	fields := map[string]string{
		"hero_title_en":    "Welcome",
		"hero_title_es":    "Bienvenido",
		"hero_title_nl":    "Welkom",
		"hero_subtitle_en": "Hair studio",
		"hero_image":       "/uploads/hero.webp",
	}

	flatES := locale.Flatten(fields, locale.ES)
	assert.Equal(t, "Bienvenido", flatES["hero_title"])

	// Subtitle has no Spanish variant: present but empty, never English
	assert.Equal(t, "", flatES["hero_subtitle"])

	// Invariant fields pass through unchanged in every locale
	assert.Equal(t, "/uploads/hero.webp", flatES["hero_image"])

	flatEN := locale.Flatten(fields, locale.EN)
	assert.Equal(t, "Welcome", flatEN["hero_title"])
	assert.Equal(t, "Hair studio", flatEN["hero_subtitle"])

	// Identical logical key set across locales
	assert.Equal(t, len(flatEN), len(flatES))

	// No suffixed or foreign-locale keys leak into the view
	for key := range flatES {
		assert.NotContains(t, key, "_en")
		assert.NotContains(t, key, "_nl")
	}
}
