package model

import "time"

type Notification struct {
	ID             string    `json:"id"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body,omitempty"`
	OrganizationID string    `json:"organization_id"`
	DepartmentID   string    `json:"department_id,omitempty"`
	CreatedBy      string    `json:"created_by"`
	Recipients     []string  `json:"recipients"`
	ReadBy         []string  `json:"read_by,omitempty"`
	IsDeleted      bool      `json:"is_deleted"`
	CreatedAt      time.Time `json:"created_at"`
}
