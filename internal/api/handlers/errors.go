package handlers

import (
	"FreshKeep-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps domain sentinels to HTTP statuses. Anything the
// service layer did not classify is an internal error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrFridgeNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrShoppingItemNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrUnauthorizedAccess),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrCredentialsInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrMalformedPayload),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptyProductType),
		errors.Is(err, domain.ErrInvalidMass),
		errors.Is(err, domain.ErrInvalidUnit),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrExpiryBeforeManufacture),
		errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrInvalidStatsRange),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrUserAlreadyVerified),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrLabelRenderFailed):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
