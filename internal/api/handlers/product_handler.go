package handlers

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/internal/api/presenters"
	"FreshKeep-Backend/pkg/product"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		IngestProduct(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
		RemoveProduct(c *fiber.Ctx) error
		MoveToCart(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		validator:      validator,
	}
}

func (h *productHandler) IngestProduct(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.IngestProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedIngestProduct, err)
	}

	res, err := h.productService.Ingest(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedPayload) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDecodeLabel, err)
		}
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedIngestProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessIngestProduct)
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	fridgeID := c.Params("id")
	sortKey := c.Query("sort", "expiry_date")
	query := c.Query("q", "")

	res, err := h.productService.ListProducts(c.Context(), fridgeID, userID, sortKey, query)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) RemoveProduct(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	productID := c.Params("id")

	if err := h.productService.Remove(c.Context(), productID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedRemoveProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveProduct)
}

func (h *productHandler) MoveToCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	productID := c.Params("id")

	res, err := h.productService.MoveToCart(c.Context(), productID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedMoveToCart, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessMoveToCart)
}
