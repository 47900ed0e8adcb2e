package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"sync"
	"time"

	"github.com/fadilmartias/interview-simulator/internal/model"
	"github.com/fadilmartias/interview-simulator/internal/repository"
	"github.com/fadilmartias/interview-simulator/internal/service"
	"github.com/google/uuid"
)

var (
	ErrNotInProgress = errors.New("interview is not in progress")
	ErrNotCompleted  = errors.New("interview not completed yet")
	ErrAlreadyDone   = errors.New("interview already completed")
)

// AnswerAnalyzer selects questions and scores answers heuristically.
type AnswerAnalyzer interface {
	GenerateQuestions(role string, difficulty model.Difficulty, durationMinutes int) []model.Question
	AnalyzeAnswer(question, answer string, category model.Category, difficulty model.Difficulty) (int, string)
}

// AnswerScorer scores an answer through an external model. Implementations
// may fail; the usecase falls back to heuristic scoring when they do.
type AnswerScorer interface {
	ScoreAnswer(ctx context.Context, question, answer string, category model.Category, difficulty model.Difficulty) (int, string, error)
}

// InterviewUsecase orchestrates the interview lifecycle: question selection
// at creation, answer scoring on submission and aggregation on finish. All
// mutations of one interview are serialized through a per-id lock so
// concurrent submissions cannot lose updates.
type InterviewUsecase struct {
	repo        repository.InterviewRepository
	interviewer AnswerAnalyzer
	llm         AnswerScorer // optional

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewInterviewUsecase(repo repository.InterviewRepository, interviewer AnswerAnalyzer, llm AnswerScorer) *InterviewUsecase {
	return &InterviewUsecase{
		repo:        repo,
		interviewer: interviewer,
		llm:         llm,
		locks:       make(map[string]*sync.Mutex),
	}
}

func (uc *InterviewUsecase) lock(id string) func() {
	uc.locksMu.Lock()
	mu, ok := uc.locks[id]
	if !ok {
		mu = &sync.Mutex{}
		uc.locks[id] = mu
	}
	uc.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// CreateInterview generates the question sequence for the configuration and
// persists a new interview in the created state.
func (uc *InterviewUsecase) CreateInterview(candidateName, role, experience string, duration int, difficulty model.Difficulty, focusAreas []string) (*model.Interview, error) {
	var questions []model.Question
	if uc.interviewer != nil {
		questions = uc.interviewer.GenerateQuestions(role, difficulty, duration)
	}

	now := time.Now()
	interview := &model.Interview{
		ID:            uuid.New(),
		CandidateName: candidateName,
		Role:          role,
		Experience:    experience,
		Duration:      duration,
		Difficulty:    difficulty,
		FocusAreas:    focusAreas,
		Questions:     questions,
		Answers:       []model.Answer{},
		Status:        model.StatusCreated,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.repo.Create(interview); err != nil {
		return nil, err
	}

	log.Printf("Interview created: %s for %s", interview.ID, interview.CandidateName)
	return interview, nil
}

// GetInterview fetches an interview and starts it on first read: a created
// interview transitions to in-progress with its start time set.
func (uc *InterviewUsecase) GetInterview(id string) (*model.Interview, error) {
	unlock := uc.lock(id)
	defer unlock()

	interview, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if interview.Status == model.StatusCreated {
		now := time.Now()
		interview.Status = model.StatusInProgress
		interview.StartTime = &now
		interview.UpdatedAt = now
		if err := uc.repo.Update(interview); err != nil {
			return nil, err
		}
	}

	return interview, nil
}

// SubmitAnswer scores one answer and records it on the interview. A second
// submission for the same question index overwrites the first. Scoring
// degrades through the chain LLM -> heuristic -> length+confidence formula;
// a degraded score never fails the request.
func (uc *InterviewUsecase) SubmitAnswer(ctx context.Context, id string, answer model.Answer) (int, string, error) {
	unlock := uc.lock(id)
	defer unlock()

	interview, err := uc.repo.FindByID(id)
	if err != nil {
		return 0, "", err
	}

	if interview.Status != model.StatusInProgress {
		return 0, "", ErrNotInProgress
	}

	var category model.Category
	if answer.QuestionIndex >= 0 && answer.QuestionIndex < len(interview.Questions) {
		category = interview.Questions[answer.QuestionIndex].Category
	}

	score, feedback := uc.scoreAnswer(ctx, answer, category, interview.Difficulty)
	answer.Score = &score
	answer.Feedback = feedback
	if answer.Timestamp == nil {
		now := time.Now()
		answer.Timestamp = &now
	}

	replaced := false
	for i := range interview.Answers {
		if interview.Answers[i].QuestionIndex == answer.QuestionIndex {
			interview.Answers[i] = answer
			replaced = true
			break
		}
	}
	if !replaced {
		interview.Answers = append(interview.Answers, answer)
	}
	interview.UpdatedAt = time.Now()

	if err := uc.repo.Update(interview); err != nil {
		return 0, "", err
	}

	log.Printf("Answer submitted for interview %s, question %d", id, answer.QuestionIndex)
	return score, feedback, nil
}

func (uc *InterviewUsecase) scoreAnswer(ctx context.Context, answer model.Answer, category model.Category, difficulty model.Difficulty) (int, string) {
	if uc.llm != nil {
		score, feedback, err := uc.llm.ScoreAnswer(ctx, answer.Question, answer.Answer, category, difficulty)
		if err == nil {
			return score, feedback
		}
		log.Printf("LLM scoring failed, using heuristic scoring: %v", err)
	}

	if uc.interviewer != nil {
		return uc.interviewer.AnalyzeAnswer(answer.Question, answer.Answer, category, difficulty)
	}

	confidence := 0.0
	if answer.Confidence != nil {
		confidence = *answer.Confidence
	}
	return service.FallbackScore(answer.Answer, confidence)
}

// FinishInterview completes the interview and computes its aggregate scores
// and feedback. Answers carried in the request fill only question indexes not
// already answered. Finishing an already completed interview is a no-op that
// returns the existing overall score.
func (uc *InterviewUsecase) FinishInterview(id string, remaining []model.Answer) (*model.Interview, error) {
	unlock := uc.lock(id)
	defer unlock()

	interview, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if interview.Status == model.StatusCompleted {
		return interview, nil
	}
	if interview.Status == model.StatusCancelled {
		return nil, ErrNotInProgress
	}

	for _, answer := range remaining {
		exists := false
		for _, a := range interview.Answers {
			if a.QuestionIndex == answer.QuestionIndex {
				exists = true
				break
			}
		}
		if !exists {
			interview.Answers = append(interview.Answers, answer)
		}
	}

	now := time.Now()
	interview.Status = model.StatusCompleted
	interview.EndTime = &now
	interview.UpdatedAt = now

	interview.CalculateScores()
	interview.GenerateFeedback()

	if err := uc.repo.Update(interview); err != nil {
		return nil, err
	}

	if interview.OverallScore != nil {
		log.Printf("Interview completed: %s with score %d", id, *interview.OverallScore)
	} else {
		log.Printf("Interview completed: %s with no scored answers", id)
	}
	return interview, nil
}

// CancelInterview moves a created or in-progress interview to the cancelled
// state. Cancelling twice is a no-op; a completed interview cannot be
// cancelled.
func (uc *InterviewUsecase) CancelInterview(id string) (*model.Interview, error) {
	unlock := uc.lock(id)
	defer unlock()

	interview, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	switch interview.Status {
	case model.StatusCancelled:
		return interview, nil
	case model.StatusCompleted:
		return nil, ErrAlreadyDone
	}

	now := time.Now()
	interview.Status = model.StatusCancelled
	interview.EndTime = &now
	interview.UpdatedAt = now

	if err := uc.repo.Update(interview); err != nil {
		return nil, err
	}

	log.Printf("Interview cancelled: %s", id)
	return interview, nil
}

// GetResults returns a completed interview for result rendering.
func (uc *InterviewUsecase) GetResults(id string) (*model.Interview, error) {
	interview, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if interview.Status != model.StatusCompleted {
		return nil, ErrNotCompleted
	}

	return interview, nil
}

// GetHistory returns one page of interview summaries, newest first.
func (uc *InterviewUsecase) GetHistory(page, limit int) ([]model.Interview, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return uc.repo.List((page-1)*limit, limit)
}

// Stats aggregates completed interviews into the dashboard numbers: total
// count, average overall score, total time spent in minutes and the
// improvement trend of the five most recent interviews against the overall
// average.
type Stats struct {
	TotalInterviews  int
	AverageScore     int
	TotalTime        int
	ImprovementTrend int
}

func (uc *InterviewUsecase) GetStats() (Stats, error) {
	interviews, err := uc.repo.ListCompleted()
	if err != nil {
		return Stats{}, err
	}

	if len(interviews) == 0 {
		return Stats{}, nil
	}

	totalScore := 0
	totalTime := 0
	for _, interview := range interviews {
		if interview.OverallScore != nil {
			totalScore += *interview.OverallScore
		}
		if interview.StartTime != nil && interview.EndTime != nil {
			totalTime += int(math.Round(interview.EndTime.Sub(*interview.StartTime).Minutes()))
		}
	}
	averageScore := int(math.Round(float64(totalScore) / float64(len(interviews))))

	recent := interviews
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	recentTotal := 0
	for _, interview := range recent {
		if interview.OverallScore != nil {
			recentTotal += *interview.OverallScore
		}
	}
	recentAverage := int(math.Round(float64(recentTotal) / float64(len(recent))))

	improvementTrend := 0
	if averageScore > 0 {
		improvementTrend = int(math.Round(float64(recentAverage-averageScore) / float64(averageScore) * 100))
	}

	return Stats{
		TotalInterviews:  len(interviews),
		AverageScore:     averageScore,
		TotalTime:        totalTime,
		ImprovementTrend: improvementTrend,
	}, nil
}
