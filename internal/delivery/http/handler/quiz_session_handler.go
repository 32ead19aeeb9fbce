package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/musedlab/tanzquiz-be/internal/delivery/http/domain"
	"github.com/musedlab/tanzquiz-be/internal/delivery/http/entity"
	"github.com/musedlab/tanzquiz-be/internal/delivery/http/repository"
	"github.com/musedlab/tanzquiz-be/internal/delivery/http/usecase"
	"github.com/musedlab/tanzquiz-be/internal/pkg/response"
	"github.com/musedlab/tanzquiz-be/internal/pkg/validate"
	"github.com/sirupsen/logrus"
)

type (
	QuizSessionHandler interface {
		StartSession(ctx *fiber.Ctx) error
		GetSession(ctx *fiber.Ctx) error
		SubmitAnswer(ctx *fiber.Ctx) error
		AdvanceRound(ctx *fiber.Ctx) error
		ResetSession(ctx *fiber.Ctx) error
		Playback(ctx *fiber.Ctx) error
		AbandonSession(ctx *fiber.Ctx) error
		ListCategories(ctx *fiber.Ctx) error
	}

	quizSessionHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.QuizSessionUsecase
	}
)

func NewQuizSessionHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.QuizSessionUsecase) QuizSessionHandler {
	return &quizSessionHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// statusFor maps usecase errors onto HTTP codes: unknown sessions are 404,
// quiz-rule violations are 400 with their instructive prompt. Nothing here is
// a server fault.
func statusFor(err error) int {
	if errors.Is(err, repository.ErrSessionNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

// POST /quiz/sessions
func (h *quizSessionHandler) StartSession(ctx *fiber.Ctx) error {
	view, err := h.usecase.StartSession()
	if err != nil {
		return response.NewFailed(domain.QUIZ_SESSION_START_FAILED, fiber.NewError(fiber.StatusInternalServerError, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_SESSION_START_SUCCESS, view, nil).Send(ctx)
}

// GET /quiz/sessions/:session_id
func (h *quizSessionHandler) GetSession(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.QUIZ_SESSION_GET_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	view, err := h.usecase.GetSession(sessionID)
	if err != nil {
		return response.NewFailed(domain.QUIZ_SESSION_GET_FAILED, fiber.NewError(statusFor(err), err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_SESSION_GET_SUCCESS, view, nil).Send(ctx)
}

// POST /quiz/sessions/:session_id/answer
func (h *quizSessionHandler) SubmitAnswer(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.QUIZ_ANSWER_SUBMIT_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	var req entity.SubmitAnswerRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_ANSWER_SUBMIT_FAILED, err, h.logger).Send(ctx)
	}

	view, err := h.usecase.SubmitAnswer(sessionID, req)
	if err != nil {
		return response.NewFailed(domain.QUIZ_ANSWER_SUBMIT_FAILED, fiber.NewError(statusFor(err), err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_ANSWER_SUBMIT_SUCCESS, view, nil).Send(ctx)
}

// POST /quiz/sessions/:session_id/advance
func (h *quizSessionHandler) AdvanceRound(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.QUIZ_ROUND_ADVANCE_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	view, err := h.usecase.AdvanceRound(sessionID)
	if err != nil {
		return response.NewFailed(domain.QUIZ_ROUND_ADVANCE_FAILED, fiber.NewError(statusFor(err), err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_ROUND_ADVANCE_SUCCESS, view, nil).Send(ctx)
}

// POST /quiz/sessions/:session_id/reset
func (h *quizSessionHandler) ResetSession(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.QUIZ_SESSION_RESET_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	view, err := h.usecase.ResetSession(sessionID)
	if err != nil {
		return response.NewFailed(domain.QUIZ_SESSION_RESET_FAILED, fiber.NewError(statusFor(err), err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_SESSION_RESET_SUCCESS, view, nil).Send(ctx)
}

// POST /quiz/sessions/:session_id/playback
func (h *quizSessionHandler) Playback(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.QUIZ_PLAYBACK_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	var req entity.PlaybackRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_PLAYBACK_FAILED, err, h.logger).Send(ctx)
	}

	view, err := h.usecase.Playback(sessionID, req)
	if err != nil {
		return response.NewFailed(domain.QUIZ_PLAYBACK_FAILED, fiber.NewError(statusFor(err), err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_PLAYBACK_SUCCESS, view, nil).Send(ctx)
}

// DELETE /quiz/sessions/:session_id
func (h *quizSessionHandler) AbandonSession(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")
	if sessionID == "" {
		return response.NewFailed(domain.QUIZ_SESSION_ABANDON_FAILED, fiber.NewError(fiber.StatusBadRequest, "session_id is required"), h.logger).Send(ctx)
	}

	if err := h.usecase.AbandonSession(sessionID); err != nil {
		return response.NewFailed(domain.QUIZ_SESSION_ABANDON_FAILED, fiber.NewError(statusFor(err), err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.QUIZ_SESSION_ABANDON_SUCCESS, nil, nil).Send(ctx)
}

// GET /quiz/categories
func (h *quizSessionHandler) ListCategories(ctx *fiber.Ctx) error {
	return response.NewSuccess(domain.QUIZ_CATEGORIES_SUCCESS, h.usecase.ListCategories(), nil).Send(ctx)
}
