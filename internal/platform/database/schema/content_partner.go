package schema

// ContentPartnerTable represents the 'content.partner' table
type ContentPartnerTable struct {
	Table       string
	ID          string
	Name        string
	LogoURL     string
	WebsiteURL  string
	SortOrder   string
	IsPublished string
	CreatedAt   string
}

// ContentPartner is the schema definition for content.partner
var ContentPartner = ContentPartnerTable{
	Table:       "content.partner",
	ID:          "id",
	Name:        "name",
	LogoURL:     "logo_url",
	WebsiteURL:  "website_url",
	SortOrder:   "sort_order",
	IsPublished: "is_published",
	CreatedAt:   "created_at",
}

func (t ContentPartnerTable) Columns() []string {
	return []string{t.ID, t.Name, t.LogoURL, t.WebsiteURL, t.SortOrder, t.IsPublished, t.CreatedAt}
}
