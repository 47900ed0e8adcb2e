package model

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

type Category string

const (
	CategoryTechnical    Category = "technical"
	CategoryBehavioral   Category = "behavioral"
	CategorySituational  Category = "situational"
	CategoryGeneral      Category = "general"
	CategorySystemDesign Category = "system-design"
)

type Status string

const (
	StatusCreated    Status = "created"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type Question struct {
	Text           string     `json:"text"`
	Category       Category   `json:"category"`
	Difficulty     Difficulty `json:"difficulty"`
	ExpectedAnswer string     `json:"expectedAnswer,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	TimeLimit      int        `json:"timeLimit"` // seconds
}

type Answer struct {
	QuestionIndex int        `json:"questionIndex"`
	Question      string     `json:"question"`
	Answer        string     `json:"answer"`
	Confidence    *float64   `json:"confidence,omitempty"` // 0-1
	Timestamp     *time.Time `json:"timestamp,omitempty"`
	Duration      int        `json:"duration"` // seconds
	Score         *int       `json:"score,omitempty"`
	Feedback      string     `json:"feedback,omitempty"`
}

type Feedback struct {
	Summary          string   `json:"summary"`
	Strengths        []string `json:"strengths"`
	Improvements     []string `json:"improvements"`
	DetailedFeedback string   `json:"detailedFeedback,omitempty"`
}

type Interview struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CandidateName      string     `gorm:"type:varchar(100)" json:"candidateName"`
	Role               string     `gorm:"type:varchar(100)" json:"role"`
	Experience         string     `gorm:"type:varchar(10)" json:"experience"`
	Duration           int        `json:"duration"` // minutes
	Difficulty         Difficulty `gorm:"type:varchar(20)" json:"difficulty"`
	FocusAreas         []string   `gorm:"serializer:json;type:jsonb" json:"focusAreas,omitempty"`
	Questions          []Question `gorm:"serializer:json;type:jsonb" json:"questions"`
	Answers            []Answer   `gorm:"serializer:json;type:jsonb" json:"answers"`
	Status             Status     `gorm:"type:varchar(20)" json:"status"`
	StartTime          *time.Time `json:"startTime,omitempty"`
	EndTime            *time.Time `json:"endTime,omitempty"`
	OverallScore       *int       `json:"overallScore,omitempty"`
	CommunicationScore *int       `json:"communicationScore,omitempty"`
	TechnicalScore     *int       `json:"technicalScore,omitempty"`
	BehavioralScore    *int       `json:"behavioralScore,omitempty"`
	Feedback           *Feedback  `gorm:"serializer:json;type:jsonb" json:"feedback,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func (i *Interview) TableName() string {
	return "interviews"
}

func (i *Interview) TotalQuestions() int {
	return len(i.Questions)
}

func (i *Interview) QuestionsAnswered() int {
	return len(i.Answers)
}

func (i *Interview) CompletionPercentage() int {
	if len(i.Questions) == 0 {
		return 0
	}
	return int(math.Round(float64(len(i.Answers)) / float64(len(i.Questions)) * 100))
}

// CalculateScores derives the overall, per-category and communication scores
// from the scored answers. Answers without a score are ignored. Category
// scores are matched by question index rather than question text, so
// interviews with duplicated question text still attribute answers correctly.
func (i *Interview) CalculateScores() {
	if len(i.Answers) == 0 {
		return
	}

	var valid []Answer
	for _, a := range i.Answers {
		if a.Score != nil {
			valid = append(valid, a)
		}
	}
	if len(valid) == 0 {
		return
	}

	total := 0
	for _, a := range valid {
		total += *a.Score
	}
	i.OverallScore = ptr(roundDiv(total, len(valid)))

	techTotal, techCount := 0, 0
	behavTotal, behavCount := 0, 0
	for _, a := range valid {
		if a.QuestionIndex < 0 || a.QuestionIndex >= len(i.Questions) {
			continue
		}
		switch i.Questions[a.QuestionIndex].Category {
		case CategoryTechnical:
			techTotal += *a.Score
			techCount++
		case CategoryBehavioral:
			behavTotal += *a.Score
			behavCount++
		}
	}
	if techCount > 0 {
		i.TechnicalScore = ptr(roundDiv(techTotal, techCount))
	}
	if behavCount > 0 {
		i.BehavioralScore = ptr(roundDiv(behavTotal, behavCount))
	}

	var confSum, lenSum float64
	for _, a := range valid {
		if a.Confidence != nil {
			confSum += *a.Confidence
		}
		lenSum += float64(len(a.Answer))
	}
	avgConfidence := confSum / float64(len(valid))
	avgAnswerLength := lenSum / float64(len(valid))
	i.CommunicationScore = ptr(int(math.Round(avgConfidence*50 + math.Min(avgAnswerLength/10, 50))))
}

// GenerateFeedback fills the feedback record from the overall score band,
// then appends role- and communication-specific improvement suggestions.
func (i *Interview) GenerateFeedback() {
	fb := &Feedback{
		Strengths:    []string{},
		Improvements: []string{},
	}

	overall := 0
	if i.OverallScore != nil {
		overall = *i.OverallScore
	}

	switch {
	case overall >= 85:
		fb.Summary = "Excellent performance! You demonstrated strong knowledge and communication skills throughout the interview."
		fb.Strengths = append(fb.Strengths,
			"Comprehensive and well-structured answers",
			"Strong technical knowledge",
			"Clear communication")
	case overall >= 70:
		fb.Summary = "Good performance with room for improvement. You showed solid understanding of the concepts."
		fb.Strengths = append(fb.Strengths,
			"Good foundational knowledge",
			"Adequate communication skills")
		fb.Improvements = append(fb.Improvements,
			"Provide more detailed examples",
			"Practice explaining complex concepts")
	case overall >= 50:
		fb.Summary = "Average performance. Focus on strengthening your knowledge and practice more."
		fb.Improvements = append(fb.Improvements,
			"Study core concepts more thoroughly",
			"Practice articulating your thoughts clearly",
			"Work on providing specific examples")
	default:
		fb.Summary = "Below average performance. Significant improvement needed in multiple areas."
		fb.Improvements = append(fb.Improvements,
			"Review fundamental concepts",
			"Practice mock interviews regularly",
			"Work on communication and confidence")
	}

	roleLower := strings.ToLower(i.Role)
	if strings.Contains(roleLower, "engineer") || strings.Contains(roleLower, "developer") {
		if i.TechnicalScore != nil && *i.TechnicalScore < 70 {
			fb.Improvements = append(fb.Improvements,
				"Strengthen technical problem-solving skills",
				"Practice coding challenges regularly")
		}
	}

	if i.CommunicationScore != nil && *i.CommunicationScore < 70 {
		fb.Improvements = append(fb.Improvements,
			"Work on speaking more clearly and confidently",
			"Practice explaining technical concepts to non-technical audiences")
	}

	i.Feedback = fb
}

func roundDiv(total, count int) int {
	return int(math.Round(float64(total) / float64(count)))
}

func ptr[T any](v T) *T {
	return &v
}
