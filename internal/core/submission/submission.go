package submission

import "time"

// ContactSubmission is a message sent through the site's contact form.
type ContactSubmission struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// ServiceRequest is a booking inquiry for a specific offering, sent from
// a service detail page.
type ServiceRequest struct {
	ID         int       `json:"id"`
	OfferingID int       `json:"offering_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
}
