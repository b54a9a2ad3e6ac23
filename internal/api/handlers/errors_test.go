package handlers

import (
	"FreshKeep-Backend/domain"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrProductNotFound, fiber.StatusNotFound},
		{domain.ErrFridgeNotFound, fiber.StatusNotFound},
		{domain.ErrShoppingItemNotFound, fiber.StatusNotFound},
		{domain.ErrInvalidTransition, fiber.StatusConflict},
		{domain.ErrCredentialsInvalid, fiber.StatusUnauthorized},
		{domain.ErrSessionExpired, fiber.StatusUnauthorized},
		{domain.ErrMalformedPayload, fiber.StatusBadRequest},
		{domain.ErrExpiryBeforeManufacture, fiber.StatusBadRequest},
		{domain.ErrInvalidStatsRange, fiber.StatusBadRequest},
		{errors.New("database on fire"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusForError(tt.err), "%v", tt.err)
	}
}
