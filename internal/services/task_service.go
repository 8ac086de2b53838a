package services

import (
	"errors"
	"fmt"
	"time"

	apierrors "github.com/assistco/assist-api/internal/errors"
	"github.com/assistco/assist-api/internal/models"
	"github.com/assistco/assist-api/internal/repository"
	"github.com/assistco/assist-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrContactRefUnresolved = errors.New("one or more contact ids do not exist")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo      repository.TaskRepository
	clientRepo    repository.ClientRepository
	assistantRepo repository.AssistantRepository
	contactRepo   repository.ContactRepository
	optionService *OptionService
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	clientRepo repository.ClientRepository,
	assistantRepo repository.AssistantRepository,
	contactRepo repository.ContactRepository,
	optionService *OptionService,
) *TaskService {
	return &TaskService{
		taskRepo:      taskRepo,
		clientRepo:    clientRepo,
		assistantRepo: assistantRepo,
		contactRepo:   contactRepo,
		optionService: optionService,
	}
}

// List returns a page of all tasks, archived included.
func (s *TaskService) List(params utils.PaginationParams) ([]models.Task, int64, error) {
	return s.taskRepo.List(params)
}

// ListByClient returns a page of a client's non-archived tasks.
func (s *TaskService) ListByClient(clientID uint, params utils.PaginationParams) ([]models.Task, int64, error) {
	if _, err := s.clientRepo.FindActiveByID(clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrClientNotFound
		}
		return nil, 0, fmt.Errorf("failed to find client: %w", err)
	}
	return s.taskRepo.ListByClient(clientID, params)
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	ClientID          uint
	TaskTypePermalink string
	Text              string
	Location          *string
	AssistantID       *uint
	StartOn           *time.Time
	EndOn             *time.Time
}

// Create creates a task in the ready state.
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	errs := apierrors.ValidationErrors{}

	if input.Text == "" {
		errs.Add("text", msgRequired)
	}

	var client *models.Client
	if input.ClientID == 0 {
		errs.Add("client", msgRequired)
	} else {
		c, err := s.clientRepo.FindActiveByID(input.ClientID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				errs.Add("client", "Client does not exist.")
			} else {
				return nil, fmt.Errorf("failed to find client: %w", err)
			}
		} else {
			client = c
		}
	}

	var taskType *models.TaskType
	if input.TaskTypePermalink == "" {
		errs.Add("task_type", msgRequired)
	} else {
		tt, err := s.optionService.ResolveTaskType(input.TaskTypePermalink)
		if err != nil {
			errs.Add("task_type", fmt.Sprintf(msgUnknownOption, input.TaskTypePermalink))
		} else {
			taskType = tt
		}
	}

	if input.AssistantID != nil {
		if _, err := s.assistantRepo.FindByID(*input.AssistantID); err != nil {
			errs.Add("assistant", "Assistant does not exist.")
		}
	}

	if errs.HasErrors() {
		return nil, errs
	}

	task := &models.Task{
		ClientID:    client.ID,
		AssistantID: input.AssistantID,
		Text:        input.Text,
		Location:    input.Location,
		TaskTypeID:  taskType.ID,
		State:       models.TaskStateReady,
		IsComplete:  false,
		IsArchived:  false,
		StartOn:     input.StartOn,
		EndOn:       input.EndOn,
		TaskType:    *taskType,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// GetClientTask returns a non-archived task scoped to a client.
func (s *TaskService) GetClientTask(clientID, taskID uint) (*models.Task, error) {
	task, err := s.taskRepo.FindClientTask(clientID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// UpdateTaskInput holds the patchable task fields.
type UpdateTaskInput struct {
	Text        *string
	Location    *string
	TaskType    *string
	Assistant   *uint
	State       *models.TaskState
	IsComplete  *bool
	StartOn     *time.Time
	EndOn       *time.Time
	CompletedOn *time.Time
}

// PatchClientTask applies a partial update to a client's task. Any
// state in the enumerated set is accepted; transitions between states
// are not checked.
func (s *TaskService) PatchClientTask(clientID, taskID uint, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.GetClientTask(clientID, taskID)
	if err != nil {
		return nil, err
	}

	errs := apierrors.ValidationErrors{}

	if input.Text != nil {
		if *input.Text == "" {
			errs.Add("text", msgRequired)
		} else {
			task.Text = *input.Text
		}
	}

	if input.Location != nil {
		task.Location = input.Location
	}

	if input.TaskType != nil {
		tt, err := s.optionService.ResolveTaskType(*input.TaskType)
		if err != nil {
			errs.Add("task_type", fmt.Sprintf(msgUnknownOption, *input.TaskType))
		} else {
			task.TaskTypeID = tt.ID
			task.TaskType = *tt
		}
	}

	if input.Assistant != nil {
		if _, err := s.assistantRepo.FindByID(*input.Assistant); err != nil {
			errs.Add("assistant", "Assistant does not exist.")
		} else {
			task.AssistantID = input.Assistant
		}
	}

	if input.State != nil {
		if !models.ValidTaskState(*input.State) {
			errs.Add("state", msgInvalidState)
		} else {
			task.State = *input.State
		}
	}

	if input.IsComplete != nil {
		task.IsComplete = *input.IsComplete
	}
	if input.StartOn != nil {
		task.StartOn = input.StartOn
	}
	if input.EndOn != nil {
		task.EndOn = input.EndOn
	}
	if input.CompletedOn != nil {
		task.CompletedOn = input.CompletedOn
	}

	if errs.HasErrors() {
		return nil, errs
	}

	if err := s.taskRepo.Save(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// ArchiveClientTask soft deletes a client's task. Archiving an already
// archived task succeeds; contact links survive.
func (s *TaskService) ArchiveClientTask(clientID, taskID uint) error {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}
	if task.ClientID != clientID {
		return ErrTaskNotFound
	}
	return s.taskRepo.Archive(taskID)
}

// ContactInput is an inline contact payload supplied when linking
// contacts to a task.
type ContactInput struct {
	FirstName string
	LastName  string
	Email     *string
	Phone     *string
}

// ContactRefs is the resolved form of the contacts array: either a set
// of existing contact ids or a set of inline payloads, never both.
type ContactRefs struct {
	IDs    []uint
	Inline []ContactInput
}

// AddContacts links contacts to a task and returns the updated task.
// Existing ids must all resolve before anything is written; inline
// payloads are created with get-or-create semantics scoped to the
// task's client. Re-linking an already linked contact is a no-op.
func (s *TaskService) AddContacts(taskID uint, refs ContactRefs) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	var contactIDs []uint
	switch {
	case len(refs.IDs) > 0:
		count, err := s.contactRepo.CountByIDs(refs.IDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve contacts: %w", err)
		}
		if count != int64(len(uniqueIDs(refs.IDs))) {
			return nil, ErrContactRefUnresolved
		}
		contactIDs = refs.IDs

	case len(refs.Inline) > 0:
		for i, in := range refs.Inline {
			if (in.Email == nil || *in.Email == "") && (in.Phone == nil || *in.Phone == "") {
				errs := apierrors.ValidationErrors{}
				errs.Add(fmt.Sprintf("contacts[%d]", i), msgEmailOrPhone)
				return nil, errs
			}
		}
		clientID := task.ClientID
		for _, in := range refs.Inline {
			contact := &models.Contact{
				FirstName: in.FirstName,
				LastName:  in.LastName,
				Email:     normalizeOptional(in.Email),
				Phone:     normalizeOptional(in.Phone),
				ClientID:  &clientID,
			}
			resolved, err := s.contactRepo.GetOrCreateByAttrs(contact)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve contact: %w", err)
			}
			contactIDs = append(contactIDs, resolved.ID)
		}
	}

	if err := s.taskRepo.AddContacts(taskID, uniqueIDs(contactIDs)); err != nil {
		return nil, fmt.Errorf("failed to link contacts: %w", err)
	}

	updated, err := s.taskRepo.FindByID(taskID, "TaskType", "Contacts")
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	return updated, nil
}

// ListContacts returns the contacts linked to a task.
func (s *TaskService) ListContacts(taskID uint) ([]models.Contact, error) {
	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return s.taskRepo.ListContacts(taskID)
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// normalizeOptional maps empty strings to nil so blanks are stored as
// NULL and stay out of the unique indexes.
func normalizeOptional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
