package handlers

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/internal/api/presenters"
	"FreshKeep-Backend/pkg/label"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LabelHandler interface {
		GenerateLabel(c *fiber.Ctx) error
	}

	labelHandler struct {
		labelService label.LabelService
		validator    *validator.Validate
	}
)

func NewLabelHandler(labelService label.LabelService, validator *validator.Validate) LabelHandler {
	return &labelHandler{
		labelService: labelService,
		validator:    validator,
	}
}

func (h *labelHandler) GenerateLabel(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GenerateLabelRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateLabel, err)
	}

	res, err := h.labelService.GenerateLabel(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGenerateLabel, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessGenerateLabel)
}
