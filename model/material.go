package model

import "time"

type Material struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit,omitempty"`
	TaskID         string    `json:"task_id,omitempty"`
	OrganizationID string    `json:"organization_id"`
	DepartmentID   string    `json:"department_id"`
	AddedBy        string    `json:"added_by"`
	IsDeleted      bool      `json:"is_deleted"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
