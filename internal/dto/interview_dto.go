package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/interview-simulator/internal/model"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError is one entry of a validation failure response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CreateInterviewRequest is the interview configuration submitted at setup.
type CreateInterviewRequest struct {
	CandidateName string   `json:"candidateName" validate:"required,min=2,max=100"`
	Role          string   `json:"role" validate:"required,min=2,max=100"`
	Experience    string   `json:"experience" validate:"required,oneof=0-1 2-4 5-7 8-12 12+"`
	Duration      int      `json:"duration" validate:"required,min=15,max=120"`
	Difficulty    string   `json:"difficulty" validate:"required,oneof=beginner intermediate advanced expert"`
	FocusAreas    []string `json:"focusAreas" validate:"omitempty,dive,oneof='Technical Skills' 'Problem Solving' 'System Design' 'Behavioral Questions' 'Communication' 'Leadership' 'Project Management' 'Algorithms & Data Structures'"`
}

func (r *CreateInterviewRequest) Validate() []FieldError {
	return collectFieldErrors(validate.Struct(r), interviewMessages)
}

// SubmitAnswerRequest is one answer to a question, without the computed
// score/feedback fields.
type SubmitAnswerRequest struct {
	QuestionIndex int        `json:"questionIndex" validate:"gte=0"`
	Question      string     `json:"question" validate:"required"`
	Answer        string     `json:"answer" validate:"required,min=1,max=10000"`
	Confidence    *float64   `json:"confidence" validate:"omitempty,gte=0,lte=1"`
	Timestamp     *time.Time `json:"timestamp"`
	Duration      int        `json:"duration" validate:"gte=0"`
}

func (r *SubmitAnswerRequest) Validate() []FieldError {
	return collectFieldErrors(validate.Struct(r), answerMessages)
}

func (r *SubmitAnswerRequest) ToModel() model.Answer {
	return model.Answer{
		QuestionIndex: r.QuestionIndex,
		Question:      r.Question,
		Answer:        r.Answer,
		Confidence:    r.Confidence,
		Timestamp:     r.Timestamp,
		Duration:      r.Duration,
	}
}

// FinishInterviewRequest carries any answers not yet submitted individually.
type FinishInterviewRequest struct {
	Answers []SubmitAnswerRequest `json:"answers" validate:"omitempty,dive"`
}

func (r *FinishInterviewRequest) Validate() []FieldError {
	var errs []FieldError
	for i, a := range r.Answers {
		for _, fe := range a.Validate() {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("answers.%d.%s", i, fe.Field),
				Message: fe.Message,
			})
		}
	}
	return errs
}

type CreateInterviewResponse struct {
	ID             string `json:"id"`
	Message        string `json:"message"`
	QuestionsCount int    `json:"questionsCount"`
}

type GetInterviewResponse struct {
	ID              string           `json:"id"`
	CandidateName   string           `json:"candidateName"`
	Role            string           `json:"role"`
	Duration        int              `json:"duration"`
	Questions       []model.Question `json:"questions"`
	Status          model.Status     `json:"status"`
	CurrentQuestion int              `json:"currentQuestion"`
}

type SubmitAnswerResponse struct {
	Message  string `json:"message"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

type FinishInterviewResponse struct {
	Message      string `json:"message"`
	InterviewID  string `json:"interviewId"`
	OverallScore int    `json:"overallScore"`
}

type CancelInterviewResponse struct {
	Message     string       `json:"message"`
	InterviewID string       `json:"interviewId"`
	Status      model.Status `json:"status"`
}

type AnswerResult struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Score    *int   `json:"score,omitempty"`
	Feedback string `json:"feedback,omitempty"`
}

type ResultsResponse struct {
	CandidateName      string         `json:"candidateName"`
	Role               string         `json:"role"`
	OverallScore       *int           `json:"overallScore,omitempty"`
	CommunicationScore *int           `json:"communicationScore,omitempty"`
	TechnicalScore     *int           `json:"technicalScore,omitempty"`
	BehavioralScore    *int           `json:"behavioralScore,omitempty"`
	Duration           int            `json:"duration"` // seconds
	QuestionsAnswered  int            `json:"questionsAnswered"`
	TotalQuestions     int            `json:"totalQuestions"`
	Summary            string         `json:"summary"`
	Strengths          []string       `json:"strengths"`
	Improvements       []string       `json:"improvements"`
	Answers            []AnswerResult `json:"answers"`
	CompletedAt        *time.Time     `json:"completedAt,omitempty"`
}

type InterviewSummary struct {
	ID            string       `json:"id"`
	CandidateName string       `json:"candidateName"`
	Role          string       `json:"role"`
	Duration      int          `json:"duration"`
	OverallScore  *int         `json:"overallScore,omitempty"`
	Status        model.Status `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
}

type HistoryPagination struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalInterviews int64 `json:"totalInterviews"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPrevPage     bool  `json:"hasPrevPage"`
}

type HistoryResponse struct {
	Interviews []InterviewSummary `json:"interviews"`
	Pagination HistoryPagination  `json:"pagination"`
}

type StatsResponse struct {
	TotalInterviews  int `json:"totalInterviews"`
	AverageScore     int `json:"averageScore"`
	TotalTime        int `json:"totalTime"` // minutes
	ImprovementTrend int `json:"improvementTrend"`
}

var interviewMessages = map[string]string{
	"CandidateName.required": "Candidate name is required",
	"CandidateName.min":      "Candidate name must be at least 2 characters long",
	"CandidateName.max":      "Candidate name must not exceed 100 characters",
	"Role.required":          "Role is required",
	"Role.min":               "Role must be at least 2 characters long",
	"Role.max":               "Role must not exceed 100 characters",
	"Experience.required":    "Experience is required",
	"Experience.oneof":       "Experience must be one of: 0-1, 2-4, 5-7, 8-12, 12+",
	"Duration.required":      "Duration is required",
	"Duration.min":           "Duration must be at least 15 minutes",
	"Duration.max":           "Duration must not exceed 120 minutes",
	"Difficulty.required":    "Difficulty is required",
	"Difficulty.oneof":       "Difficulty must be one of: beginner, intermediate, advanced, expert",
	"FocusAreas.oneof":       "Focus area is not recognized",
}

var answerMessages = map[string]string{
	"QuestionIndex.gte": "Question index must not be negative",
	"Question.required": "Question is required",
	"Answer.required":   "Answer cannot be empty",
	"Answer.min":        "Answer cannot be empty",
	"Answer.max":        "Answer is too long (maximum 10,000 characters)",
	"Confidence.gte":    "Confidence must be between 0 and 1",
	"Confidence.lte":    "Confidence must be between 0 and 1",
	"Duration.gte":      "Duration must not be negative",
}

// collectFieldErrors turns validator failures into per-field messages,
// reporting every failed field rather than stopping at the first.
func collectFieldErrors(err error, messages map[string]string) []FieldError {
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	errs := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := lowerFirst(fe.Field())
		// Slice items report as e.g. FocusAreas[0]; look up the message by
		// the bare field name.
		bare := fe.Field()
		if i := strings.IndexByte(bare, '['); i >= 0 {
			bare = bare[:i]
		}
		message, ok := messages[bare+"."+fe.Tag()]
		if !ok {
			message = fmt.Sprintf("%s is invalid", field)
		}
		errs = append(errs, FieldError{Field: field, Message: message})
	}
	return errs
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}
