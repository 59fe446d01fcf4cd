package partner

import "time"

// Partner is a brand logo shown on the site. Names and URLs are
// locale-invariant, so no localization pass is needed.
type Partner struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	LogoURL     string    `json:"logo_url"`
	WebsiteURL  string    `json:"website_url"`
	SortOrder   int       `json:"sort_order"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"-"`
}
