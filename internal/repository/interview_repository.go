package repository

import (
	"errors"

	"github.com/fadilmartias/interview-simulator/internal/model"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no interview exists for the requested id.
var ErrNotFound = errors.New("interview not found")

// InterviewRepository abstracts interview persistence so the selection,
// scoring and aggregation logic stays independent of the backing store.
type InterviewRepository interface {
	Create(interview *model.Interview) error
	FindByID(id string) (*model.Interview, error)
	Update(interview *model.Interview) error
	// List returns interviews ordered by creation time descending, plus the
	// total count for pagination.
	List(offset, limit int) ([]model.Interview, int64, error)
	// ListCompleted returns completed interviews ordered by creation time
	// ascending (oldest first).
	ListCompleted() ([]model.Interview, error)
}

type GormInterviewRepository struct {
	db *gorm.DB
}

func NewGormInterviewRepository(db *gorm.DB) *GormInterviewRepository {
	return &GormInterviewRepository{db}
}

func (r *GormInterviewRepository) Create(interview *model.Interview) error {
	return r.db.Create(interview).Error
}

func (r *GormInterviewRepository) FindByID(id string) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.First(&interview, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *GormInterviewRepository) Update(interview *model.Interview) error {
	return r.db.Save(interview).Error
}

func (r *GormInterviewRepository) List(offset, limit int) ([]model.Interview, int64, error) {
	var total int64
	if err := r.db.Model(&model.Interview{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var interviews []model.Interview
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&interviews).Error
	return interviews, total, err
}

func (r *GormInterviewRepository) ListCompleted() ([]model.Interview, error) {
	var interviews []model.Interview
	err := r.db.Where("status = ?", model.StatusCompleted).Order("created_at ASC").Find(&interviews).Error
	return interviews, err
}
