package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/interview-simulator/internal/config"
	"github.com/fadilmartias/interview-simulator/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type OpenRouterServiceInterface interface {
	ScoreAnswer(ctx context.Context, question, answer string, category model.Category, difficulty model.Difficulty) (int, string, error)
}

type OpenRouterService struct {
	APIKey string
	client *resty.Client
}

func NewOpenRouterService() *OpenRouterService {
	return &OpenRouterService{
		APIKey: config.LoadOpenRouterConfig().APIKey,
		client: resty.New(),
	}
}

// ScoreAnswer asks an OpenRouter-hosted model for a score/feedback pair.
// Errors are returned so the caller can fall back to heuristic scoring.
func (s *OpenRouterService) ScoreAnswer(ctx context.Context, question, answer string, category model.Category, difficulty model.Difficulty) (int, string, error) {
	if s.APIKey == "" {
		return 0, "", fmt.Errorf("OPENROUTER_API_KEY not set")
	}

	prompt := fmt.Sprintf(`
Please evaluate the following mock interview answer.
Question category: %s
Interview difficulty: %s
Return your answer STRICTLY in JSON format:
{
  "score": <number 0-100>,
  "feedback": "<short feedback text>"
}

Question:
%s

Answer:
%s
`, category, difficulty, question, answer)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": "openai/gpt-4o-mini",
			"messages": []map[string]string{
				{"role": "system", "content": "You are an AI interviewer scoring mock interview answers."},
				{"role": "user", "content": prompt},
			},
		}).
		Post("https://openrouter.ai/api/v1/chat/completions")
	if err != nil {
		return 0, "", err
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return 0, "", fmt.Errorf("no response from LLM")
	}

	scoreValue := gjson.Get(text, "score")
	if !scoreValue.Exists() {
		return 0, "", fmt.Errorf("no score in LLM response")
	}
	score := int(scoreValue.Int())
	if score < 0 || score > 100 {
		return 0, "", fmt.Errorf("score %d out of range", score)
	}
	return score, gjson.Get(text, "feedback").String(), nil
}
