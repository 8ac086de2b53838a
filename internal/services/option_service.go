package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/assistco/assist-api/internal/models"
	"github.com/assistco/assist-api/internal/repository"
	"github.com/assistco/assist-api/internal/utils"
	"gorm.io/gorm"
)

// ErrUnknownReference is returned when a permalink does not resolve to
// a reference row.
var ErrUnknownReference = errors.New("unknown reference option")

// OptionService serves the reference option tables. Permalink lookups
// go through a small read-through cache: reference data only changes
// when reseeded, at which point Invalidate is called out-of-band.
type OptionService struct {
	refRepo repository.ReferenceRepository

	mu          sync.RWMutex
	genders     map[string]*models.Gender
	professions map[string]*models.Profession
	taskTypes   map[string]*models.TaskType
}

// NewOptionService creates a new OptionService
func NewOptionService(refRepo repository.ReferenceRepository) *OptionService {
	s := &OptionService{refRepo: refRepo}
	s.reset()
	return s
}

func (s *OptionService) reset() {
	s.genders = make(map[string]*models.Gender)
	s.professions = make(map[string]*models.Profession)
	s.taskTypes = make(map[string]*models.TaskType)
}

// Invalidate drops the permalink cache after a reseed.
func (s *OptionService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// ListGenders returns a page of genders ordered by sort
func (s *OptionService) ListGenders(params utils.PaginationParams) ([]models.Gender, int64, error) {
	return s.refRepo.ListGenders(params)
}

// ListProfessions returns a page of professions ordered by sort
func (s *OptionService) ListProfessions(params utils.PaginationParams) ([]models.Profession, int64, error) {
	return s.refRepo.ListProfessions(params)
}

// ListTaskTypes returns a page of task types ordered by sort
func (s *OptionService) ListTaskTypes(params utils.PaginationParams) ([]models.TaskType, int64, error) {
	return s.refRepo.ListTaskTypes(params)
}

// ResolveGender resolves a gender permalink through the cache
func (s *OptionService) ResolveGender(permalink string) (*models.Gender, error) {
	s.mu.RLock()
	cached, ok := s.genders[permalink]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	g, err := s.refRepo.FindGenderByPermalink(permalink)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownReference
		}
		return nil, fmt.Errorf("failed to resolve gender: %w", err)
	}

	s.mu.Lock()
	s.genders[permalink] = g
	s.mu.Unlock()
	return g, nil
}

// ResolveProfession resolves a profession permalink through the cache
func (s *OptionService) ResolveProfession(permalink string) (*models.Profession, error) {
	s.mu.RLock()
	cached, ok := s.professions[permalink]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	p, err := s.refRepo.FindProfessionByPermalink(permalink)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownReference
		}
		return nil, fmt.Errorf("failed to resolve profession: %w", err)
	}

	s.mu.Lock()
	s.professions[permalink] = p
	s.mu.Unlock()
	return p, nil
}

// ResolveTaskType resolves a task type permalink through the cache
func (s *OptionService) ResolveTaskType(permalink string) (*models.TaskType, error) {
	s.mu.RLock()
	cached, ok := s.taskTypes[permalink]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	tt, err := s.refRepo.FindTaskTypeByPermalink(permalink)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownReference
		}
		return nil, fmt.Errorf("failed to resolve task type: %w", err)
	}

	s.mu.Lock()
	s.taskTypes[permalink] = tt
	s.mu.Unlock()
	return tt, nil
}
