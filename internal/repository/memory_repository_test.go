package repository

import (
	"testing"
	"time"

	"github.com/fadilmartias/interview-simulator/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInterview(name string, status model.Status) *model.Interview {
	return &model.Interview{
		ID:            uuid.New(),
		CandidateName: name,
		Role:          "Software Engineer",
		Status:        status,
		CreatedAt:     time.Now(),
	}
}

func TestMemoryRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryInterviewRepository()
	interview := newInterview("Ada", model.StatusCreated)

	require.NoError(t, repo.Create(interview))

	found, err := repo.FindByID(interview.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.CandidateName)
}

func TestMemoryRepository_FindUnknownID(t *testing.T) {
	repo := NewMemoryInterviewRepository()
	_, err := repo.FindByID(uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepository_UpdateUnknownID(t *testing.T) {
	repo := NewMemoryInterviewRepository()
	err := repo.Update(newInterview("Ghost", model.StatusCreated))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepository_UpdateIsVisible(t *testing.T) {
	repo := NewMemoryInterviewRepository()
	interview := newInterview("Ada", model.StatusCreated)
	require.NoError(t, repo.Create(interview))

	interview.Status = model.StatusInProgress
	require.NoError(t, repo.Update(interview))

	found, err := repo.FindByID(interview.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, found.Status)
}

func TestMemoryRepository_FindReturnsCopy(t *testing.T) {
	repo := NewMemoryInterviewRepository()
	interview := newInterview("Ada", model.StatusCreated)
	require.NoError(t, repo.Create(interview))

	found, err := repo.FindByID(interview.ID.String())
	require.NoError(t, err)
	found.CandidateName = "mutated"

	again, err := repo.FindByID(interview.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.CandidateName)
}

func TestMemoryRepository_ListNewestFirstWithPagination(t *testing.T) {
	repo := NewMemoryInterviewRepository()
	first := newInterview("First", model.StatusCreated)
	second := newInterview("Second", model.StatusCreated)
	third := newInterview("Third", model.StatusCreated)
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))
	require.NoError(t, repo.Create(third))

	page, total, err := repo.List(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.Equal(t, "Third", page[0].CandidateName)
	assert.Equal(t, "Second", page[1].CandidateName)

	page, _, err = repo.List(2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "First", page[0].CandidateName)
}

func TestMemoryRepository_ListCompleted(t *testing.T) {
	repo := NewMemoryInterviewRepository()
	done := newInterview("Done", model.StatusCompleted)
	require.NoError(t, repo.Create(newInterview("Open", model.StatusInProgress)))
	require.NoError(t, repo.Create(done))

	completed, err := repo.ListCompleted()
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "Done", completed[0].CandidateName)
}
