package tag

import (
	"time"

	"github.com/jhairstudio/jhair-server/pkg/locale"
)

// Tag categorizes blog posts. Names are stored in all three locales;
// the slug is locale-invariant and used in listing filter URLs.
type Tag struct {
	ID        int       `json:"id"`
	Slug      string    `json:"slug"`
	NameEN    string    `json:"name_en"`
	NameES    string    `json:"name_es"`
	NameNL    string    `json:"name_nl"`
	CreatedAt time.Time `json:"-"`
}

// Localized is the public single-locale view of a tag.
type Localized struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Localize resolves the tag to a single locale. A missing translation
// yields an empty name, never another locale's text.
func (t Tag) Localize(loc locale.Locale) Localized {
	name := ""
	switch loc {
	case locale.EN:
		name = t.NameEN
	case locale.ES:
		name = t.NameES
	case locale.NL:
		name = t.NameNL
	}

	return Localized{
		ID:   t.ID,
		Slug: t.Slug,
		Name: name,
	}
}
