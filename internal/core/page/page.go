package page

import (
	"strings"
	"time"
)

// Record is one editable page document. Fields maps field names to string
// values; locale-variant fields carry an "_en|_es|_nl" suffix, invariant
// fields (image URLs, phone numbers) carry none.
type Record struct {
	Key       string            `json:"key"`
	Fields    map[string]string `json:"fields"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Page keys, one per editable page type on the site.
const (
	KeyHome              = "home"
	KeyGlobal            = "global"
	KeyContactForm       = "contact_form"
	KeyServicesPage      = "services_page"
	KeyServiceSinglePage = "service_single_page"
	KeyBlogPage          = "blog_page"
	KeyBlogSinglePage    = "blog_single_page"
)

// Keys lists every known page key.
func Keys() []string {
	return []string{
		KeyHome, KeyGlobal, KeyContactForm,
		KeyServicesPage, KeyServiceSinglePage,
		KeyBlogPage, KeyBlogSinglePage,
	}
}

// KeyFromRoute converts a URL segment ("contact-form") into a storage key
// ("contact_form"). Returns false for unknown pages.
func KeyFromRoute(segment string) (string, bool) {
	key := strings.ReplaceAll(segment, "-", "_")
	for _, known := range Keys() {
		if key == known {
			return key, true
		}
	}
	return "", false
}
