package service

import (
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/fadilmartias/interview-simulator/internal/model"
)

// Question time limits in seconds, by category.
const (
	technicalTimeLimit    = 300
	systemDesignTimeLimit = 600
	behavioralTimeLimit   = 240
	generalTimeLimit      = 180
)

var technicalKeywords = []string{
	"algorithm", "complexity", "performance", "optimization",
	"database", "API", "framework", "design pattern",
}

var behavioralKeywords = []string{
	"experience", "team", "project", "challenge", "solution", "learned", "improved",
}

var difficultyMultipliers = map[model.Difficulty]float64{
	model.DifficultyBeginner:     1.1,
	model.DifficultyIntermediate: 1.0,
	model.DifficultyAdvanced:     0.9,
	model.DifficultyExpert:       0.8,
}

type categoryDistribution struct {
	technical  float64
	behavioral float64
	general    float64
}

var distributions = map[model.Difficulty]categoryDistribution{
	model.DifficultyBeginner:     {technical: 0.3, behavioral: 0.5, general: 0.2},
	model.DifficultyIntermediate: {technical: 0.5, behavioral: 0.3, general: 0.2},
	model.DifficultyAdvanced:     {technical: 0.6, behavioral: 0.3, general: 0.1},
	model.DifficultyExpert:       {technical: 0.7, behavioral: 0.2, general: 0.1},
}

// InterviewerService selects interview questions from the static bank and
// scores free-text answers with a keyword heuristic.
type InterviewerService struct {
	bank *QuestionBank
	rng  *rand.Rand
}

func NewInterviewerService() *InterviewerService {
	return NewInterviewerServiceWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewInterviewerServiceWithRand injects the random source so question draws
// can be made reproducible in tests.
func NewInterviewerServiceWithRand(rng *rand.Rand) *InterviewerService {
	return &InterviewerService{bank: NewQuestionBank(), rng: rng}
}

// TargetQuestionCount is the number of questions for a given interview
// duration, roughly one question per 5 minutes with a floor of 3.
func TargetQuestionCount(durationMinutes int) int {
	count := durationMinutes / 5
	if count < 3 {
		count = 3
	}
	return count
}

// GenerateQuestions builds the question sequence for an interview
// configuration. Categories are distributed by difficulty tier, drawn without
// replacement per pool, then the combined list is shuffled once more and
// truncated to the target count. The final shuffle can drop questions of any
// category by chance; that matches the historical behavior and callers should
// not rely on exact per-category counts.
func (s *InterviewerService) GenerateQuestions(role string, difficulty model.Difficulty, durationMinutes int) []model.Question {
	questionsCount := TargetQuestionCount(durationMinutes)

	dist, ok := distributions[difficulty]
	if !ok {
		dist = distributions[model.DifficultyIntermediate]
	}

	technicalCount := int(float64(questionsCount) * dist.technical)
	behavioralCount := int(float64(questionsCount) * dist.behavioral)
	generalCount := questionsCount - technicalCount - behavioralCount

	rolePool := s.bank.RolePool(role)
	var questions []model.Question

	if technicalCount > 0 && len(rolePool.Technical) > 0 {
		for _, text := range s.draw(rolePool.Technical, technicalCount) {
			questions = append(questions, model.Question{
				Text:       text,
				Category:   model.CategoryTechnical,
				Difficulty: difficulty,
				TimeLimit:  technicalTimeLimit,
			})
		}
	}

	// Senior tiers also get system design questions.
	if (difficulty == model.DifficultyAdvanced || difficulty == model.DifficultyExpert) && len(rolePool.SystemDesign) > 0 {
		systemDesignCount := int(float64(technicalCount) * 0.3)
		for _, text := range s.draw(rolePool.SystemDesign, systemDesignCount) {
			questions = append(questions, model.Question{
				Text:       text,
				Category:   model.CategorySystemDesign,
				Difficulty: difficulty,
				TimeLimit:  systemDesignTimeLimit,
			})
		}
	}

	if behavioralCount > 0 {
		for _, text := range s.draw(s.bank.BehavioralPool(role), behavioralCount) {
			questions = append(questions, model.Question{
				Text:       text,
				Category:   model.CategoryBehavioral,
				Difficulty: difficulty,
				TimeLimit:  behavioralTimeLimit,
			})
		}
	}

	if generalCount > 0 {
		for _, text := range s.draw(s.bank.General(), generalCount) {
			questions = append(questions, model.Question{
				Text:       text,
				Category:   model.CategoryGeneral,
				Difficulty: difficulty,
				TimeLimit:  generalTimeLimit,
			})
		}
	}

	s.shuffle(questions)
	if len(questions) > questionsCount {
		questions = questions[:questionsCount]
	}

	log.Printf("Generated %d questions for %s interview", len(questions), role)
	return questions
}

// AnalyzeAnswer scores an answer 0-100 from its length, category-specific
// keyword matches and the difficulty multiplier, and builds the feedback text.
// Given the same inputs it always produces the same result.
func (s *InterviewerService) AnalyzeAnswer(question, answer string, category model.Category, difficulty model.Difficulty) (int, string) {
	score := 0.0
	var feedback strings.Builder

	answerLength := len(answer)
	switch {
	case answerLength < 50:
		score += 20
		feedback.WriteString("Answer is quite brief. ")
	case answerLength < 200:
		score += 50
		feedback.WriteString("Good answer length. ")
	case answerLength < 500:
		score += 80
		feedback.WriteString("Well-detailed response. ")
	default:
		score += 70
		feedback.WriteString("Very comprehensive answer. ")
	}

	lowerAnswer := strings.ToLower(answer)

	switch category {
	case model.CategoryTechnical:
		matches := countKeywordMatches(lowerAnswer, technicalKeywords)
		score += float64(matches) * 5
		if matches > 0 {
			feedback.WriteString("Good use of technical terminology. ")
		}
	case model.CategoryBehavioral:
		matches := countKeywordMatches(lowerAnswer, behavioralKeywords)
		score += float64(matches) * 4
		if strings.Contains(lowerAnswer, "example") || strings.Contains(lowerAnswer, "instance") {
			score += 10
			feedback.WriteString("Good use of specific examples. ")
		}
	}

	multiplier, ok := difficultyMultipliers[difficulty]
	if !ok {
		multiplier = 1.0
	}
	final := int(math.Min(math.Round(score*multiplier), 100))

	switch {
	case final >= 80:
		feedback.WriteString("Excellent answer with good depth and clarity.")
	case final >= 60:
		feedback.WriteString("Good answer, but could be improved with more details or examples.")
	case final >= 40:
		feedback.WriteString("Adequate answer, but needs more depth and specific examples.")
	default:
		feedback.WriteString("Answer needs significant improvement. Consider providing more details and examples.")
	}

	return final, strings.TrimSpace(feedback.String())
}

// FallbackScore is the simplified length-plus-confidence formula used when
// answer analysis is unavailable.
func FallbackScore(answer string, confidence float64) (int, string) {
	score := int(math.Min(math.Round(float64(len(answer))/10+confidence*50), 100))
	feedback := "Could be improved with more details."
	if score >= 70 {
		feedback = "Good answer!"
	}
	return score, feedback
}

func countKeywordMatches(lowerAnswer string, keywords []string) int {
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(lowerAnswer, strings.ToLower(kw)) {
			matches++
		}
	}
	return matches
}

// draw shuffles a copy of the pool and takes up to n entries.
func (s *InterviewerService) draw(pool []string, n int) []string {
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

func (s *InterviewerService) shuffle(questions []model.Question) {
	for i := len(questions) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		questions[i], questions[j] = questions[j], questions[i]
	}
}
