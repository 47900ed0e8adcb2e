package handler

import (
	"errors"
	"math"

	"github.com/fadilmartias/interview-simulator/internal/dto"
	"github.com/fadilmartias/interview-simulator/internal/model"
	"github.com/fadilmartias/interview-simulator/internal/repository"
	"github.com/fadilmartias/interview-simulator/internal/usecase"
	"github.com/fadilmartias/interview-simulator/internal/util"
	"github.com/gofiber/fiber/v2"
)

type InterviewHandler struct {
	uc *usecase.InterviewUsecase
}

func NewInterviewHandler(uc *usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Root)

	api := app.Group("/api/interviews")
	api.Post("/", h.Create)
	// The user routes must be registered before the :id routes so "user" is
	// not captured as an interview id.
	api.Get("/user/history", h.History)
	api.Get("/user/stats", h.Stats)
	api.Get("/:id", h.Get)
	api.Post("/:id/answers", h.SubmitAnswer)
	api.Post("/:id/finish", h.Finish)
	api.Post("/:id/cancel", h.Cancel)
	api.Get("/:id/results", h.Results)
}

func (h *InterviewHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "AI Interview Simulator API",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"health":     "/livez",
			"interviews": "/api/interviews",
		},
	})
}

func (h *InterviewHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if details := req.Validate(); len(details) > 0 {
		return util.ValidationErrorResponse(c, details)
	}

	interview, err := h.uc.CreateInterview(
		req.CandidateName,
		req.Role,
		req.Experience,
		req.Duration,
		model.Difficulty(req.Difficulty),
		req.FocusAreas,
	)
	if err != nil {
		return h.mapError(c, err, "Failed to create interview")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateInterviewResponse{
		ID:             interview.ID.String(),
		Message:        "Interview created successfully",
		QuestionsCount: interview.TotalQuestions(),
	})
}

func (h *InterviewHandler) Get(c *fiber.Ctx) error {
	interview, err := h.uc.GetInterview(c.Params("id"))
	if err != nil {
		return h.mapError(c, err, "Failed to get interview")
	}

	return c.JSON(dto.GetInterviewResponse{
		ID:              interview.ID.String(),
		CandidateName:   interview.CandidateName,
		Role:            interview.Role,
		Duration:        interview.Duration,
		Questions:       interview.Questions,
		Status:          interview.Status,
		CurrentQuestion: interview.QuestionsAnswered(),
	})
}

func (h *InterviewHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if details := req.Validate(); len(details) > 0 {
		return util.ValidationErrorResponse(c, details)
	}

	score, feedback, err := h.uc.SubmitAnswer(c.UserContext(), c.Params("id"), req.ToModel())
	if err != nil {
		return h.mapError(c, err, "Failed to submit answer")
	}

	return c.JSON(dto.SubmitAnswerResponse{
		Message:  "Answer submitted successfully",
		Score:    score,
		Feedback: feedback,
	})
}

func (h *InterviewHandler) Finish(c *fiber.Ctx) error {
	var req dto.FinishInterviewRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
		}
		if details := req.Validate(); len(details) > 0 {
			return util.ValidationErrorResponse(c, details)
		}
	}

	remaining := make([]model.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		remaining = append(remaining, a.ToModel())
	}

	interview, err := h.uc.FinishInterview(c.Params("id"), remaining)
	if err != nil {
		return h.mapError(c, err, "Failed to finish interview")
	}

	overall := 0
	if interview.OverallScore != nil {
		overall = *interview.OverallScore
	}
	return c.JSON(dto.FinishInterviewResponse{
		Message:      "Interview completed successfully",
		InterviewID:  interview.ID.String(),
		OverallScore: overall,
	})
}

func (h *InterviewHandler) Cancel(c *fiber.Ctx) error {
	interview, err := h.uc.CancelInterview(c.Params("id"))
	if err != nil {
		return h.mapError(c, err, "Failed to cancel interview")
	}

	return c.JSON(dto.CancelInterviewResponse{
		Message:     "Interview cancelled",
		InterviewID: interview.ID.String(),
		Status:      interview.Status,
	})
}

func (h *InterviewHandler) Results(c *fiber.Ctx) error {
	interview, err := h.uc.GetResults(c.Params("id"))
	if err != nil {
		return h.mapError(c, err, "Failed to get results")
	}

	durationSeconds := 0
	if interview.StartTime != nil && interview.EndTime != nil {
		durationSeconds = int(math.Round(interview.EndTime.Sub(*interview.StartTime).Seconds()))
	}

	answers := make([]dto.AnswerResult, 0, len(interview.Answers))
	for _, a := range interview.Answers {
		answers = append(answers, dto.AnswerResult{
			Question: a.Question,
			Answer:   a.Answer,
			Score:    a.Score,
			Feedback: a.Feedback,
		})
	}

	resp := dto.ResultsResponse{
		CandidateName:      interview.CandidateName,
		Role:               interview.Role,
		OverallScore:       interview.OverallScore,
		CommunicationScore: interview.CommunicationScore,
		TechnicalScore:     interview.TechnicalScore,
		BehavioralScore:    interview.BehavioralScore,
		Duration:           durationSeconds,
		QuestionsAnswered:  interview.QuestionsAnswered(),
		TotalQuestions:     interview.TotalQuestions(),
		Answers:            answers,
		CompletedAt:        interview.EndTime,
	}
	if interview.Feedback != nil {
		resp.Summary = interview.Feedback.Summary
		resp.Strengths = interview.Feedback.Strengths
		resp.Improvements = interview.Feedback.Improvements
	}
	return c.JSON(resp)
}

func (h *InterviewHandler) History(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	interviews, total, err := h.uc.GetHistory(page, limit)
	if err != nil {
		return h.mapError(c, err, "Failed to get interviews")
	}

	summaries := make([]dto.InterviewSummary, 0, len(interviews))
	for _, interview := range interviews {
		summaries = append(summaries, dto.InterviewSummary{
			ID:            interview.ID.String(),
			CandidateName: interview.CandidateName,
			Role:          interview.Role,
			Duration:      interview.Duration,
			OverallScore:  interview.OverallScore,
			Status:        interview.Status,
			CreatedAt:     interview.CreatedAt,
		})
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return c.JSON(dto.HistoryResponse{
		Interviews: summaries,
		Pagination: dto.HistoryPagination{
			CurrentPage:     page,
			TotalPages:      totalPages,
			TotalInterviews: total,
			HasNextPage:     page < totalPages,
			HasPrevPage:     page > 1,
		},
	})
}

func (h *InterviewHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats()
	if err != nil {
		return h.mapError(c, err, "Failed to get statistics")
	}

	return c.JSON(dto.StatsResponse{
		TotalInterviews:  stats.TotalInterviews,
		AverageScore:     stats.AverageScore,
		TotalTime:        stats.TotalTime,
		ImprovementTrend: stats.ImprovementTrend,
	})
}

func (h *InterviewHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return util.ErrorResponse(c, fiber.StatusNotFound, "Interview not found")
	case errors.Is(err, usecase.ErrNotInProgress):
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Interview is not in progress")
	case errors.Is(err, usecase.ErrNotCompleted):
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Interview not completed yet")
	case errors.Is(err, usecase.ErrAlreadyDone):
		return util.ErrorResponse(c, fiber.StatusBadRequest, "Interview already completed")
	default:
		return util.ErrorResponse(c, fiber.StatusInternalServerError, fallback, err)
	}
}
