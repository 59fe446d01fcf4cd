// Copyright (c) 2026 Jhair Studio. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhairstudio/jhair-server/pkg/slug"
)

/*
TestFrom verifies slug generation across the languages the studio publishes in.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Hair Treatments", "hair-treatments"},
		{"spanish_accents", "Balayage y Más", "balayage-y-mas"},
		{"spanish_enye", "Cortes de Diseño", "cortes-de-diseno"},
		{"dutch", "Kleuren & Knippen", "kleuren-knippen"},
		{"multiple_spaces", "Hair   Extensions", "hair-extensions"},
		{"leading_trailing", "  ¡Promoción!  ", "promocion"},
		{"numbers", "Top 10 Styles 2026", "top-10-styles-2026"},
		{"already_slugged", "keratin-treatment", "keratin-treatment"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

/*
TestIsValid checks canonical slug recognition.
*/
func TestIsValid(t *testing.T) {
	assert.True(t, slug.IsValid("balayage-y-mechas"))
	assert.True(t, slug.IsValid("top-10"))
	assert.False(t, slug.IsValid("Balayage"))
	assert.False(t, slug.IsValid("-leading"))
	assert.False(t, slug.IsValid("trailing-"))
	assert.False(t, slug.IsValid("double--hyphen"))
	assert.False(t, slug.IsValid(""))
}
