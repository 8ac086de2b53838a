package dto

import (
	"time"

	"github.com/assistco/assist-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint             `json:"id"`
	ClientID    uint             `json:"client_id"`
	AssistantID *uint            `json:"assistant_id"`
	Text        string           `json:"text"`
	Location    *string          `json:"location"`
	TaskType    string           `json:"task_type"`
	State       models.TaskState `json:"state"`
	IsComplete  bool             `json:"is_complete"`
	IsArchived  bool             `json:"is_archived"`
	StartOn     *time.Time       `json:"start_on"`
	EndOn       *time.Time       `json:"end_on"`
	CompletedOn *time.Time       `json:"completed_on"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Contacts    []ContactDTO     `json:"contacts,omitempty"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		ClientID:    task.ClientID,
		AssistantID: task.AssistantID,
		Text:        task.Text,
		Location:    task.Location,
		TaskType:    task.TaskType.Permalink,
		State:       task.State,
		IsComplete:  task.IsComplete,
		IsArchived:  task.IsArchived,
		StartOn:     task.StartOn,
		EndOn:       task.EndOn,
		CompletedOn: task.CompletedOn,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	// Include contacts if preloaded
	if len(task.Contacts) > 0 {
		dto.Contacts = ToContactDTOs(task.Contacts)
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
