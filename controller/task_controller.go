// api/controller/task_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/api/authz"
	taskhive_errors "github.com/taskhive/taskhive/api/errors"
	"github.com/taskhive/taskhive/api/model"
	"github.com/taskhive/taskhive/api/service"
	"github.com/taskhive/taskhive/api/util"
	helper_util "github.com/taskhive/taskhive/api/util/helper"
)

type TaskController struct {
	taskService service.ITaskService
}

func NewTaskController(taskService service.ITaskService) *TaskController {
	return &TaskController{
		taskService: taskService,
	}
}

// RegisterRoutes registers the API routes
func (tc *TaskController) RegisterRoutes(r *gin.RouterGroup, guard *authz.Guard) {
	tasks := r.Group("/tasks")
	{
		tasks.POST("", guard.Authorize(authz.ResourceTask, authz.OpCreate, authz.WithBodyHints()), tc.CreateTask)
		tasks.PUT("/:id", guard.Authorize(authz.ResourceTask, authz.OpUpdate), tc.UpdateTask)
		tasks.DELETE("/:id", guard.Authorize(authz.ResourceTask, authz.OpDelete), tc.DeleteTask)
		tasks.POST("/:id/restore", guard.Authorize(authz.ResourceTask, authz.OpRestore, authz.WithIncludeDeleted()), tc.RestoreTask)
		tasks.GET("/:id", guard.Authorize(authz.ResourceTask, authz.OpRead), tc.GetTask)
		tasks.GET("", guard.Authorize(authz.ResourceTask, authz.OpList), tc.ListTasks)
	}
}

// CreateTask endpoint
func (tc *TaskController) CreateTask(c *gin.Context) {
	var task model.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid task data", taskhive_errors.ErrInvalidTaskData)
		return
	}
	caller, ok := authz.CallerFrom(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", taskhive_errors.ErrAuthentication)
		return
	}
	task.OrganizationID = caller.OrganizationID

	createdTask, err := tc.taskService.CreateTask(c, task, caller.ID)
	if err != nil {
		switch err {
		case taskhive_errors.ErrInvalidTaskData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid task data", err)
		case taskhive_errors.ErrTaskConflict:
			util.RespondWithError(c, http.StatusConflict, "Task already exists", err)
		case taskhive_errors.ErrDatabaseOperation:
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create task", taskhive_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, createdTask)
}

// UpdateTask endpoint
func (tc *TaskController) UpdateTask(c *gin.Context) {
	taskID := c.Param("id")
	var task model.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid task data", err)
		return
	}
	task.ID = taskID
	caller, ok := authz.CallerFrom(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", taskhive_errors.ErrAuthentication)
		return
	}

	updatedTask, err := tc.taskService.UpdateTask(c, task, caller.ID)
	if err != nil {
		if err == taskhive_errors.ErrTaskNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Task not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update task", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedTask)
}

// DeleteTask endpoint
func (tc *TaskController) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")
	caller, ok := authz.CallerFrom(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", taskhive_errors.ErrAuthentication)
		return
	}

	if err := tc.taskService.DeleteTask(c, taskID, caller.ID); err != nil {
		if err == taskhive_errors.ErrTaskNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Task not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete task", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// RestoreTask endpoint
func (tc *TaskController) RestoreTask(c *gin.Context) {
	taskID := c.Param("id")
	caller, ok := authz.CallerFrom(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", taskhive_errors.ErrAuthentication)
		return
	}

	restoredTask, err := tc.taskService.RestoreTask(c, taskID, caller.ID)
	if err != nil {
		if err == taskhive_errors.ErrTaskNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Task not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to restore task", err)
		}
		return
	}

	c.JSON(http.StatusOK, restoredTask)
}

// GetTask endpoint
func (tc *TaskController) GetTask(c *gin.Context) {
	taskID := c.Param("id")

	task, err := tc.taskService.GetTask(c, taskID)
	if err != nil {
		if err == taskhive_errors.ErrTaskNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Task not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve task", err)
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// ListTasks endpoint
func (tc *TaskController) ListTasks(c *gin.Context) {
	caller, ok := authz.CallerFrom(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", taskhive_errors.ErrAuthentication)
		return
	}
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	// The granted scope decides how wide the listing may reach. A cross-org
	// grant lifts the tenant filter; everything else stays inside the
	// caller's organization.
	organizationID := caller.OrganizationID
	departmentID := c.Query("departmentId")
	if decision, ok := authz.DecisionFrom(c); ok {
		if decision.Scope == authz.ScopeCrossOrg {
			organizationID = c.Query("organizationId")
		} else if decision.Context == authz.ContextOwnDept && departmentID == "" {
			departmentID = caller.DepartmentID
		}
	}

	tasks, err := tc.taskService.ListTasks(c, organizationID, departmentID, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}
