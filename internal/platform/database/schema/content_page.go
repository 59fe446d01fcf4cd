package schema

// ContentPageTable represents the 'content.page' table
type ContentPageTable struct {
	Table     string
	Key       string
	Fields    string
	UpdatedAt string
}

// ContentPage is the schema definition for content.page
var ContentPage = ContentPageTable{
	Table:     "content.page",
	Key:       "key",
	Fields:    "fields",
	UpdatedAt: "updated_at",
}

func (t ContentPageTable) Columns() []string {
	return []string{t.Key, t.Fields, t.UpdatedAt}
}
