package schema

// ContentOfferingTable represents the 'content.offering' table
type ContentOfferingTable struct {
	Table            string
	ID               string
	Slug             string
	Icon             string
	TitleEN          string
	TitleES          string
	TitleNL          string
	DescriptionEN    string
	DescriptionES    string
	DescriptionNL    string
	Section1TitleEN  string
	Section1TitleES  string
	Section1TitleNL  string
	Section1BodyEN   string
	Section1BodyES   string
	Section1BodyNL   string
	Section2TitleEN  string
	Section2TitleES  string
	Section2TitleNL  string
	Section2BodyEN   string
	Section2BodyES   string
	Section2BodyNL   string
	Section3TitleEN  string
	Section3TitleES  string
	Section3TitleNL  string
	Section3BodyEN   string
	Section3BodyES   string
	Section3BodyNL   string
	SortOrder        string
	IsPublished      string
	CreatedAt        string
	UpdatedAt        string
}

// ContentOffering is the schema definition for content.offering
var ContentOffering = ContentOfferingTable{
	Table:            "content.offering",
	ID:               "id",
	Slug:             "slug",
	Icon:             "icon",
	TitleEN:          "title_en",
	TitleES:          "title_es",
	TitleNL:          "title_nl",
	DescriptionEN:    "description_en",
	DescriptionES:    "description_es",
	DescriptionNL:    "description_nl",
	Section1TitleEN:  "section_1_title_en",
	Section1TitleES:  "section_1_title_es",
	Section1TitleNL:  "section_1_title_nl",
	Section1BodyEN:   "section_1_content_en",
	Section1BodyES:   "section_1_content_es",
	Section1BodyNL:   "section_1_content_nl",
	Section2TitleEN:  "section_2_title_en",
	Section2TitleES:  "section_2_title_es",
	Section2TitleNL:  "section_2_title_nl",
	Section2BodyEN:   "section_2_content_en",
	Section2BodyES:   "section_2_content_es",
	Section2BodyNL:   "section_2_content_nl",
	Section3TitleEN:  "section_3_title_en",
	Section3TitleES:  "section_3_title_es",
	Section3TitleNL:  "section_3_title_nl",
	Section3BodyEN:   "section_3_content_en",
	Section3BodyES:   "section_3_content_es",
	Section3BodyNL:   "section_3_content_nl",
	SortOrder:        "sort_order",
	IsPublished:      "is_published",
	CreatedAt:        "created_at",
	UpdatedAt:        "updated_at",
}

func (t ContentOfferingTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Icon,
		t.TitleEN, t.TitleES, t.TitleNL,
		t.DescriptionEN, t.DescriptionES, t.DescriptionNL,
		t.Section1TitleEN, t.Section1TitleES, t.Section1TitleNL,
		t.Section1BodyEN, t.Section1BodyES, t.Section1BodyNL,
		t.Section2TitleEN, t.Section2TitleES, t.Section2TitleNL,
		t.Section2BodyEN, t.Section2BodyES, t.Section2BodyNL,
		t.Section3TitleEN, t.Section3TitleES, t.Section3TitleNL,
		t.Section3BodyEN, t.Section3BodyES, t.Section3BodyNL,
		t.SortOrder, t.IsPublished, t.CreatedAt, t.UpdatedAt,
	}
}
