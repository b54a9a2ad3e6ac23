package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessIngestProduct = "product added to fridge successfully"
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessRemoveProduct = "product removed successfully"
	MessageSuccessMoveToCart    = "product added to shopping list"

	MessageFailedIngestProduct = "failed to add product"
	MessageFailedGetProducts   = "failed to retrieve products"
	MessageFailedRemoveProduct = "failed to remove product"
	MessageFailedMoveToCart    = "failed to add product to shopping list"
	MessageFailedDecodeLabel   = "failed to decode label, try scanning again"

	ErrMalformedPayload        = errors.New("label payload is not valid JSON")
	ErrEmptyName               = errors.New("product name must not be empty")
	ErrEmptyProductType        = errors.New("product type must not be empty")
	ErrInvalidMass             = errors.New("mass must be a finite non-negative number")
	ErrInvalidUnit             = errors.New("unit must be one of г, кг, мл, л")
	ErrInvalidDate             = errors.New("date must be in YYYY-MM-DD format")
	ErrExpiryBeforeManufacture = errors.New("expiry date precedes manufacture date")
	ErrProductNotFound         = errors.New("product not found")
	ErrInvalidTransition       = errors.New("operation not allowed in current product state")
)

type (
	IngestProductRequest struct {
		FridgeID string `json:"fridge_id" validate:"required,uuid"`
		Payload  string `json:"payload" validate:"required"`
	}

	ProductResponse struct {
		ID               string    `json:"id"`
		FridgeID         string    `json:"fridge_id"`
		Name             string    `json:"name"`
		ProductType      string    `json:"product_type"`
		ManufactureDate  time.Time `json:"manufacture_date"`
		ExpiryDate       time.Time `json:"expiry_date"`
		Mass             float64   `json:"mass"`
		Unit             string    `json:"unit"`
		NutritionalValue string    `json:"nutritional_value,omitempty"`
		Status           string    `json:"status"`
		Freshness        string    `json:"freshness"`
	}
)
