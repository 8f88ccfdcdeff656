package model

import "time"

type Task struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Status         string    `json:"status"` // "open", "in_progress", "done"
	OrganizationID string    `json:"organization_id"`
	DepartmentID   string    `json:"department_id"`
	CreatedBy      string    `json:"created_by"`
	Assignees      []string  `json:"assignees,omitempty"`
	Watchers       []string  `json:"watchers,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	IsDeleted      bool      `json:"is_deleted"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type TaskActivity struct {
	ID             string    `json:"id"`
	TaskID         string    `json:"task_id"`
	Action         string    `json:"action"` // "status_changed", "assigned", etc.
	Detail         string    `json:"detail,omitempty"`
	OrganizationID string    `json:"organization_id"`
	DepartmentID   string    `json:"department_id"`
	CreatedBy      string    `json:"created_by"`
	IsDeleted      bool      `json:"is_deleted"`
	CreatedAt      time.Time `json:"created_at"`
}

type TaskComment struct {
	ID             string    `json:"id"`
	TaskID         string    `json:"task_id"`
	ParentID       string    `json:"parent_id,omitempty"`
	Body           string    `json:"body"`
	OrganizationID string    `json:"organization_id"`
	DepartmentID   string    `json:"department_id"`
	CreatedBy      string    `json:"created_by"`
	Mentions       []string  `json:"mentions,omitempty"`
	IsDeleted      bool      `json:"is_deleted"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
