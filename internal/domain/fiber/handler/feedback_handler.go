package handler

import (
	"errors"
	"time"

	"github.com/campuspulse/feedback-api/internal/dto"
	"github.com/campuspulse/feedback-api/internal/middleware"
	"github.com/campuspulse/feedback-api/internal/usecase"
	"github.com/campuspulse/feedback-api/internal/util"
	"github.com/gofiber/fiber/v2"
)

const maxUploadSize = 5 * 1024 * 1024

type FeedbackHandler struct {
	uc *usecase.FeedbackUsecase
}

func NewFeedbackHandler(uc *usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

func (h *FeedbackHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/feedback", h.Submit)
	app.Patch("/feedback/:id/resolve", h.Resolve)
	app.Post("/upload-feedback", middleware.RateLimiter(5, time.Minute), h.Upload)
}

// Submit - POST /feedback
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err)
	}
	if req.StudentID == "" || req.Category == "" || req.Text == "" {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "student_id, category and text are required")
	}

	feedback, err := h.uc.Submit(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "failed to submit feedback", err)
	}
	return c.JSON(feedback)
}

// Resolve - PATCH /feedback/:id/resolve
func (h *FeedbackHandler) Resolve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "invalid feedback id", err)
	}

	var req dto.ResolveFeedbackRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return util.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err)
		}
	}

	if err := h.uc.Resolve(uint(id), req.Note); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return util.ErrorResponse(c, fiber.StatusNotFound, "Feedback not found")
		}
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "failed to resolve feedback", err)
	}
	return c.JSON(fiber.Map{"status": "success"})
}

// Upload - POST /upload-feedback
func (h *FeedbackHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "file is required", err)
	}
	if fileHeader.Size > maxUploadSize {
		return util.ErrorResponse(c, fiber.StatusBadRequest, "file size is too large (max 5MB)")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "cannot open uploaded file", err)
	}
	defer file.Close()

	table, err := util.ParseTabular(fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, util.ErrUnsupportedFormat) {
			return util.ErrorResponse(c, fiber.StatusBadRequest, "Invalid file format. Please upload CSV or Excel.")
		}
		return util.ErrorResponse(c, fiber.StatusBadRequest, "failed to parse file", err)
	}

	count, err := h.uc.BulkImport(c.UserContext(), table)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingColumns) {
			return util.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		return util.ErrorResponse(c, fiber.StatusInternalServerError, "failed to process upload", err)
	}
	return c.JSON(fiber.Map{"status": "success", "count": count})
}
