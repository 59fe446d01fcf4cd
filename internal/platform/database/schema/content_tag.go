package schema

// ContentTagTable represents the 'content.tag' table
type ContentTagTable struct {
	Table     string
	ID        string
	Slug      string
	NameEN    string
	NameES    string
	NameNL    string
	CreatedAt string
}

// ContentTag is the schema definition for content.tag
var ContentTag = ContentTagTable{
	Table:     "content.tag",
	ID:        "id",
	Slug:      "slug",
	NameEN:    "name_en",
	NameES:    "name_es",
	NameNL:    "name_nl",
	CreatedAt: "created_at",
}

func (t ContentTagTable) Columns() []string {
	return []string{t.ID, t.Slug, t.NameEN, t.NameES, t.NameNL, t.CreatedAt}
}
