package model

import "time"

// Vendor is tenant-wide: vendors carry no department of their own and are
// visible to every member of the owning organization.
type Vendor struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ContactEmail   string    `json:"contact_email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	OrganizationID string    `json:"organization_id"`
	CreatedBy      string    `json:"created_by"`
	IsDeleted      bool      `json:"is_deleted"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
