// api/util/validation_util.go

package util

import (
	"fmt"

	"github.com/taskhive/taskhive/api/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateTask(task model.Task) error {
	if task.Title == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	if task.OrganizationID == "" {
		return fmt.Errorf("task organization ID cannot be empty")
	}
	if task.DepartmentID == "" {
		return fmt.Errorf("task department ID cannot be empty")
	}
	if task.CreatedBy == "" {
		return fmt.Errorf("task creator cannot be empty")
	}
	switch task.Status {
	case "", "open", "in_progress", "done":
	default:
		return fmt.Errorf("unknown task status %q", task.Status)
	}
	return nil
}

func (v *ValidationUtil) ValidateOrganization(organization model.Organization) error {
	if organization.Name == "" {
		return fmt.Errorf("organization name cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateNotification(notification model.Notification) error {
	if notification.Subject == "" {
		return fmt.Errorf("notification subject cannot be empty")
	}
	if len(notification.Recipients) == 0 {
		return fmt.Errorf("notification must have at least one recipient")
	}
	if notification.OrganizationID == "" {
		return fmt.Errorf("notification organization ID cannot be empty")
	}
	return nil
}
