package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/assistco/assist-api/internal/dto"
	apierrors "github.com/assistco/assist-api/internal/errors"
	"github.com/assistco/assist-api/internal/models"
	"github.com/assistco/assist-api/internal/services"
	"github.com/assistco/assist-api/internal/utils"
)

// TaskHandler coordinates task resource HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// List returns a page of all tasks. The global listing deliberately
// includes archived tasks.
func (h *TaskHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	tasks, total, err := h.taskService.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(c, params, total, dto.ToTaskDTOs(tasks)))
}

// Create creates a task in the ready state.
func (h *TaskHandler) Create(c *gin.Context) {
	type CreateTaskRequest struct {
		Client    uint       `json:"client" binding:"required"`
		TaskType  string     `json:"task_type" binding:"required"`
		Text      string     `json:"text" binding:"required"`
		Location  *string    `json:"location"`
		Assistant *uint      `json:"assistant"`
		StartOn   *time.Time `json:"start_on"`
		EndOn     *time.Time `json:"end_on"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(services.CreateTaskInput{
		ClientID:          req.Client,
		TaskTypePermalink: req.TaskType,
		Text:              req.Text,
		Location:          req.Location,
		AssistantID:       req.Assistant,
		StartOn:           req.StartOn,
		EndOn:             req.EndOn,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// ListByClient returns a client's non-archived tasks.
func (h *TaskHandler) ListByClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "client_id")
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)

	tasks, total, err := h.taskService.ListByClient(clientID, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(c, params, total, dto.ToTaskDTOs(tasks)))
}

// GetClientTask returns a task scoped to its client.
func (h *TaskHandler) GetClientTask(c *gin.Context) {
	clientID, ok := parseIDParam(c, "client_id")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		return
	}

	task, err := h.taskService.GetClientTask(clientID, taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// PatchClientTask applies a partial update to a client's task.
func (h *TaskHandler) PatchClientTask(c *gin.Context) {
	clientID, ok := parseIDParam(c, "client_id")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		Text        *string           `json:"text"`
		Location    *string           `json:"location"`
		TaskType    *string           `json:"task_type"`
		Assistant   *uint             `json:"assistant"`
		State       *models.TaskState `json:"state"`
		IsComplete  *bool             `json:"is_complete"`
		StartOn     *time.Time        `json:"start_on"`
		EndOn       *time.Time        `json:"end_on"`
		CompletedOn *time.Time        `json:"completed_on"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.PatchClientTask(clientID, taskID, services.UpdateTaskInput{
		Text:        req.Text,
		Location:    req.Location,
		TaskType:    req.TaskType,
		Assistant:   req.Assistant,
		State:       req.State,
		IsComplete:  req.IsComplete,
		StartOn:     req.StartOn,
		EndOn:       req.EndOn,
		CompletedOn: req.CompletedOn,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteClientTask archives a task. No hard delete.
func (h *TaskHandler) DeleteClientTask(c *gin.Context) {
	clientID, ok := parseIDParam(c, "client_id")
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		return
	}

	if err := h.taskService.ArchiveClientTask(clientID, taskID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddContacts links contacts to a task. The contacts array is
// homogeneous: either all existing contact ids or all inline payloads.
func (h *TaskHandler) AddContacts(c *gin.Context) {
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		return
	}

	type AddContactsRequest struct {
		Contacts []json.RawMessage `json:"contacts" binding:"required"`
	}

	var req AddContactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	refs, ok := parseContactRefs(c, req.Contacts)
	if !ok {
		return
	}

	task, err := h.taskService.AddContacts(taskID, refs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// parseContactRefs resolves the contacts array into a tagged union of
// ids or inline payloads before any mutation. Mixed arrays are
// rejected outright rather than inferred from the first element.
func parseContactRefs(c *gin.Context, raw []json.RawMessage) (services.ContactRefs, bool) {
	var refs services.ContactRefs

	for _, item := range raw {
		trimmed := bytes.TrimSpace(item)
		if len(trimmed) == 0 {
			apierrors.BadRequest(c, "Invalid contact entry")
			return refs, false
		}

		if trimmed[0] == '{' {
			type InlineContact struct {
				FirstName string  `json:"first_name"`
				LastName  string  `json:"last_name"`
				Email     *string `json:"email"`
				Phone     *string `json:"phone"`
			}
			var in InlineContact
			if err := json.Unmarshal(trimmed, &in); err != nil {
				apierrors.BadRequest(c, "Invalid contact entry")
				return refs, false
			}
			refs.Inline = append(refs.Inline, services.ContactInput{
				FirstName: in.FirstName,
				LastName:  in.LastName,
				Email:     in.Email,
				Phone:     in.Phone,
			})
			continue
		}

		var id uint
		if err := json.Unmarshal(trimmed, &id); err != nil {
			apierrors.BadRequest(c, "Invalid contact entry")
			return refs, false
		}
		refs.IDs = append(refs.IDs, id)
	}

	if len(refs.IDs) > 0 && len(refs.Inline) > 0 {
		apierrors.BadRequest(c, "Mixed contact arrays are not supported")
		return refs, false
	}

	return refs, true
}

// ListContacts returns the contacts linked to a task.
func (h *TaskHandler) ListContacts(c *gin.Context) {
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		return
	}

	contacts, err := h.taskService.ListContacts(taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactDTOs(contacts))
}
