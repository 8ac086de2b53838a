package models

import "time"

type TaskState string

const (
	TaskStateReady      TaskState = "ready"
	TaskStateExecuting  TaskState = "executing"
	TaskStateCompleted  TaskState = "completed"
	TaskStateTerminated TaskState = "terminated"
)

// ValidTaskState reports whether s is one of the enumerated states.
// Transitions between states are deliberately not validated; any value
// in the set is accepted on partial update.
func ValidTaskState(s TaskState) bool {
	switch s {
	case TaskStateReady, TaskStateExecuting, TaskStateCompleted, TaskStateTerminated:
		return true
	}
	return false
}

type Task struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	ClientID    uint       `gorm:"not null;index" json:"client_id"`
	AssistantID *uint      `gorm:"index" json:"assistant_id"`
	Text        string     `gorm:"type:text;not null" json:"text"`
	Location    *string    `gorm:"type:varchar(255)" json:"location"`
	TaskTypeID  uint       `gorm:"not null" json:"-"`
	State       TaskState  `gorm:"type:varchar(100);not null;default:'ready'" json:"state"`
	IsComplete  bool       `gorm:"not null;default:false" json:"is_complete"`
	IsArchived  bool       `gorm:"not null;default:false" json:"is_archived"`
	StartOn     *time.Time `json:"start_on"`
	EndOn       *time.Time `json:"end_on"`
	CompletedOn *time.Time `json:"completed_on"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Client    Client     `gorm:"foreignKey:ClientID" json:"-"`
	Assistant *Assistant `gorm:"foreignKey:AssistantID" json:"-"`
	TaskType  TaskType   `gorm:"foreignKey:TaskTypeID" json:"-"`
	Contacts  []Contact  `gorm:"many2many:task_contacts" json:"-"`
}

func (Task) TableName() string { return "tasks" }

// TaskContact is the join row behind the Task.Contacts association.
// Declared explicitly so links can be appended with an upsert.
type TaskContact struct {
	TaskID    uint `gorm:"primarykey"`
	ContactID uint `gorm:"primarykey"`
}

func (TaskContact) TableName() string { return "task_contacts" }
