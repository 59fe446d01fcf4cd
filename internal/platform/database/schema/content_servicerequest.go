package schema

// ContentServiceRequestTable represents the 'content.service_request' table
type ContentServiceRequestTable struct {
	Table      string
	ID         string
	OfferingID string
	Name       string
	Email      string
	Phone      string
	CreatedAt  string
}

// ContentServiceRequest is the schema definition for content.service_request
var ContentServiceRequest = ContentServiceRequestTable{
	Table:      "content.service_request",
	ID:         "id",
	OfferingID: "offering_id",
	Name:       "name",
	Email:      "email",
	Phone:      "phone",
	CreatedAt:  "created_at",
}

func (t ContentServiceRequestTable) Columns() []string {
	return []string{t.ID, t.OfferingID, t.Name, t.Email, t.Phone, t.CreatedAt}
}
