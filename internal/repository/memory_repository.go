package repository

import (
	"sync"

	"github.com/fadilmartias/interview-simulator/internal/model"
)

// MemoryInterviewRepository keeps interviews in memory. It backs demo mode
// (no database configured) and tests.
type MemoryInterviewRepository struct {
	mu         sync.RWMutex
	interviews map[string]model.Interview
	order      []string // ids in insertion order
}

func NewMemoryInterviewRepository() *MemoryInterviewRepository {
	return &MemoryInterviewRepository{
		interviews: make(map[string]model.Interview),
	}
}

func (r *MemoryInterviewRepository) Create(interview *model.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := interview.ID.String()
	r.interviews[id] = *interview
	r.order = append(r.order, id)
	return nil
}

func (r *MemoryInterviewRepository) FindByID(id string) (*model.Interview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	interview, ok := r.interviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &interview, nil
}

func (r *MemoryInterviewRepository) Update(interview *model.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := interview.ID.String()
	if _, ok := r.interviews[id]; !ok {
		return ErrNotFound
	}
	r.interviews[id] = *interview
	return nil
}

func (r *MemoryInterviewRepository) List(offset, limit int) ([]model.Interview, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := int64(len(r.order))
	interviews := make([]model.Interview, 0, limit)
	// Newest first: walk the insertion order backwards.
	for i := len(r.order) - 1 - offset; i >= 0 && len(interviews) < limit; i-- {
		interviews = append(interviews, r.interviews[r.order[i]])
	}
	return interviews, total, nil
}

func (r *MemoryInterviewRepository) ListCompleted() ([]model.Interview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var interviews []model.Interview
	for _, id := range r.order {
		if interview := r.interviews[id]; interview.Status == model.StatusCompleted {
			interviews = append(interviews, interview)
		}
	}
	return interviews, nil
}
