// Package offering models the studio's marketing services (balayage,
// keratin treatments, ...). The name avoids colliding with the service
// layer naming used across the codebase; HTTP routes still say "services".
package offering

import (
	"time"

	"github.com/jhairstudio/jhair-server/pkg/locale"
)

// Section is one localized content block on a service detail page.
// Each offering carries up to three.
type Section struct {
	TitleEN string `json:"title_en"`
	TitleES string `json:"title_es"`
	TitleNL string `json:"title_nl"`
	BodyEN  string `json:"content_en"`
	BodyES  string `json:"content_es"`
	BodyNL  string `json:"content_nl"`
}

// localize resolves a section to a single locale.
func (s Section) localize(loc locale.Locale) LocalizedSection {
	switch loc {
	case locale.ES:
		return LocalizedSection{Title: s.TitleES, Body: s.BodyES}
	case locale.NL:
		return LocalizedSection{Title: s.TitleNL, Body: s.BodyNL}
	default:
		return LocalizedSection{Title: s.TitleEN, Body: s.BodyEN}
	}
}

// Offering is a service as stored, carrying every locale variant.
type Offering struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	Icon string `json:"icon"`

	TitleEN string `json:"title_en"`
	TitleES string `json:"title_es"`
	TitleNL string `json:"title_nl"`

	DescriptionEN string `json:"description_en"`
	DescriptionES string `json:"description_es"`
	DescriptionNL string `json:"description_nl"`

	Sections [3]Section `json:"sections"`

	SortOrder   int  `json:"sort_order"`
	IsPublished bool `json:"is_published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocalizedSection is the public single-locale view of a content block.
type LocalizedSection struct {
	Title string `json:"title"`
	Body  string `json:"content"`
}

// Localized is the public single-locale view of a service.
type Localized struct {
	ID          int                `json:"id"`
	Slug        string             `json:"slug"`
	Icon        string             `json:"icon"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Sections    []LocalizedSection `json:"sections"`
	SortOrder   int                `json:"sort_order"`
}

// Localize resolves the offering to a single locale. Sections that are
// entirely blank in the active locale are dropped from the public view.
func (o *Offering) Localize(loc locale.Locale) Localized {
	view := Localized{
		ID:        o.ID,
		Slug:      o.Slug,
		Icon:      o.Icon,
		SortOrder: o.SortOrder,
		Sections:  make([]LocalizedSection, 0, len(o.Sections)),
	}

	switch loc {
	case locale.ES:
		view.Title, view.Description = o.TitleES, o.DescriptionES
	case locale.NL:
		view.Title, view.Description = o.TitleNL, o.DescriptionNL
	default:
		view.Title, view.Description = o.TitleEN, o.DescriptionEN
	}

	for _, section := range o.Sections {
		localized := section.localize(loc)
		if localized.Title == "" && localized.Body == "" {
			continue
		}
		view.Sections = append(view.Sections, localized)
	}

	return view
}
