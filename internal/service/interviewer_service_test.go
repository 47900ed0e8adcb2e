package service

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/fadilmartias/interview-simulator/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(seed int64) *InterviewerService {
	return NewInterviewerServiceWithRand(rand.New(rand.NewSource(seed)))
}

func TestTargetQuestionCount(t *testing.T) {
	tests := []struct {
		duration int
		want     int
	}{
		{15, 3},
		{16, 3}, // floor(16/5)=3
		{14, 3}, // floor stays below the minimum of 3
		{30, 6},
		{45, 9},
		{60, 12},
		{120, 24},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TargetQuestionCount(tt.duration), "duration %d", tt.duration)
	}
}

func TestGenerateQuestions_CountNeverExceedsTarget(t *testing.T) {
	svc := newTestService(1)
	for _, duration := range []int{15, 30, 45, 60, 120} {
		questions := svc.GenerateQuestions("Software Engineer", model.DifficultyIntermediate, duration)
		assert.LessOrEqual(t, len(questions), TargetQuestionCount(duration))
	}
}

func TestGenerateQuestions_IntermediateThirtyMinutes(t *testing.T) {
	// target 6, distribution technical=3, behavioral=1, general=2; all pools
	// are large enough so the full target is reached.
	svc := newTestService(42)
	questions := svc.GenerateQuestions("Software Engineer", model.DifficultyIntermediate, 30)
	require.Len(t, questions, 6)

	for _, q := range questions {
		assert.Equal(t, model.DifficultyIntermediate, q.Difficulty)
		assert.NotEmpty(t, q.Text)
	}
}

func TestGenerateQuestions_NoDuplicatesWithinCategory(t *testing.T) {
	svc := newTestService(7)
	questions := svc.GenerateQuestions("Software Engineer", model.DifficultyExpert, 60)
	seen := make(map[string]bool)
	for _, q := range questions {
		assert.False(t, seen[q.Text], "duplicate question %q", q.Text)
		seen[q.Text] = true
	}
}

func TestGenerateQuestions_UnknownRoleDegradesGracefully(t *testing.T) {
	// No role pools: only behavioral (generic) and general questions remain.
	svc := newTestService(3)
	questions := svc.GenerateQuestions("Underwater Basket Weaver", model.DifficultyIntermediate, 30)
	assert.NotEmpty(t, questions)
	for _, q := range questions {
		assert.NotEqual(t, model.CategoryTechnical, q.Category)
		assert.NotEqual(t, model.CategorySystemDesign, q.Category)
	}
}

func TestGenerateQuestions_UnknownDifficultyFallsBackToIntermediate(t *testing.T) {
	svc := newTestService(9)
	questions := svc.GenerateQuestions("Software Engineer", model.Difficulty("nightmare"), 30)
	assert.Len(t, questions, 6)
}

func TestGenerateQuestions_ExpertSkewsTechnical(t *testing.T) {
	// Over many draws the expert tier must produce clearly more
	// technical/system-design questions than the beginner tier.
	beginnerTech := 0
	expertTech := 0
	svc := newTestService(11)
	for i := 0; i < 50; i++ {
		for _, q := range svc.GenerateQuestions("Software Engineer", model.DifficultyBeginner, 60) {
			if q.Category == model.CategoryTechnical || q.Category == model.CategorySystemDesign {
				beginnerTech++
			}
		}
		for _, q := range svc.GenerateQuestions("Software Engineer", model.DifficultyExpert, 60) {
			if q.Category == model.CategoryTechnical || q.Category == model.CategorySystemDesign {
				expertTech++
			}
		}
	}
	assert.Greater(t, expertTech, beginnerTech)
}

func TestGenerateQuestions_TimeLimitsByCategory(t *testing.T) {
	svc := newTestService(5)
	questions := svc.GenerateQuestions("Software Engineer", model.DifficultyExpert, 120)
	for _, q := range questions {
		switch q.Category {
		case model.CategoryTechnical:
			assert.Equal(t, 300, q.TimeLimit)
		case model.CategorySystemDesign:
			assert.Equal(t, 600, q.TimeLimit)
		case model.CategoryBehavioral:
			assert.Equal(t, 240, q.TimeLimit)
		case model.CategoryGeneral:
			assert.Equal(t, 180, q.TimeLimit)
		}
	}
}

func padTo(s string, n int) string {
	if len(s) >= n {
		return s[:n]
	}
	return s + strings.Repeat("x", n-len(s))
}

func TestAnalyzeAnswer_TechnicalScenario(t *testing.T) {
	// 300 chars, technical, intermediate, two keyword matches:
	// base 80 + 2*5 = 90, multiplier 1.0.
	svc := newTestService(1)
	answer := padTo("I would start from the algorithm and then look at the database layer. ", 300)
	require.Len(t, answer, 300)

	score, feedback := svc.AnalyzeAnswer("How would you optimize a slow query?", answer, model.CategoryTechnical, model.DifficultyIntermediate)
	assert.Equal(t, 90, score)
	assert.Contains(t, feedback, "Well-detailed response.")
	assert.Contains(t, feedback, "Good use of technical terminology.")
	assert.Contains(t, feedback, "Excellent answer with good depth and clarity.")
}

func TestAnalyzeAnswer_LengthBands(t *testing.T) {
	svc := newTestService(1)
	tests := []struct {
		length int
		score  int
		phrase string
	}{
		{30, 20, "Answer is quite brief."},
		{100, 50, "Good answer length."},
		{300, 80, "Well-detailed response."},
		{800, 70, "Very comprehensive answer."},
	}
	for _, tt := range tests {
		answer := strings.Repeat("z", tt.length)
		score, feedback := svc.AnalyzeAnswer("q", answer, model.CategoryGeneral, model.DifficultyIntermediate)
		assert.Equal(t, tt.score, score, "length %d", tt.length)
		assert.Contains(t, feedback, tt.phrase)
	}
}

func TestAnalyzeAnswer_BehavioralKeywordsAndExamples(t *testing.T) {
	// base 50 (length 50..199) + 2*4 keyword matches + 10 example bonus = 68.
	svc := newTestService(1)
	answer := padTo("My team faced a hard challenge, for example when we shipped late. ", 120)
	score, feedback := svc.AnalyzeAnswer("Tell me about a challenge.", answer, model.CategoryBehavioral, model.DifficultyIntermediate)
	assert.Equal(t, 68, score)
	assert.Contains(t, feedback, "Good use of specific examples.")
	assert.Contains(t, feedback, "Good answer, but could be improved with more details or examples.")
}

func TestAnalyzeAnswer_DifficultyMultipliers(t *testing.T) {
	svc := newTestService(1)
	answer := strings.Repeat("z", 300) // base 80, no keywords
	tests := []struct {
		difficulty model.Difficulty
		want       int
	}{
		{model.DifficultyBeginner, 88},     // 80*1.1
		{model.DifficultyIntermediate, 80}, // 80*1.0
		{model.DifficultyAdvanced, 72},     // 80*0.9
		{model.DifficultyExpert, 64},       // 80*0.8
		{model.Difficulty("unknown"), 80},  // default 1.0
	}
	for _, tt := range tests {
		score, _ := svc.AnalyzeAnswer("q", answer, model.CategoryGeneral, tt.difficulty)
		assert.Equal(t, tt.want, score, "difficulty %s", tt.difficulty)
	}
}

func TestAnalyzeAnswer_CappedAtHundred(t *testing.T) {
	// All eight technical keywords on a 200+ char beginner answer:
	// (80 + 40) * 1.1 = 132, capped at 100.
	svc := newTestService(1)
	answer := padTo("algorithm complexity performance optimization database API framework design pattern ", 300)
	score, _ := svc.AnalyzeAnswer("q", answer, model.CategoryTechnical, model.DifficultyBeginner)
	assert.Equal(t, 100, score)
}

func TestAnalyzeAnswer_Deterministic(t *testing.T) {
	svc := newTestService(1)
	answer := padTo("A deterministic answer about performance. ", 250)
	score1, feedback1 := svc.AnalyzeAnswer("q", answer, model.CategoryTechnical, model.DifficultyAdvanced)
	score2, feedback2 := svc.AnalyzeAnswer("q", answer, model.CategoryTechnical, model.DifficultyAdvanced)
	assert.Equal(t, score1, score2)
	assert.Equal(t, feedback1, feedback2)
}

func TestFallbackScore(t *testing.T) {
	score, feedback := FallbackScore(strings.Repeat("a", 100), 0.5)
	assert.Equal(t, 35, score) // 100/10 + 0.5*50
	assert.Equal(t, "Could be improved with more details.", feedback)

	score, feedback = FallbackScore(strings.Repeat("a", 900), 1.0)
	assert.Equal(t, 100, score) // 90+50 capped
	assert.Equal(t, "Good answer!", feedback)

	score, _ = FallbackScore("", 0)
	assert.Equal(t, 0, score)
}
