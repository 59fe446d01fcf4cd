package schema

// ContentContactSubmissionTable represents the 'content.contact_submission' table
type ContentContactSubmissionTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	IsRead    string
	CreatedAt string
}

// ContentContactSubmission is the schema definition for content.contact_submission
var ContentContactSubmission = ContentContactSubmissionTable{
	Table:     "content.contact_submission",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Phone:     "phone",
	Subject:   "subject",
	Message:   "message",
	IsRead:    "is_read",
	CreatedAt: "created_at",
}

func (t ContentContactSubmissionTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.Phone, t.Subject, t.Message, t.IsRead, t.CreatedAt}
}
