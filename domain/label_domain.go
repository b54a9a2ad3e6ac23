package domain

import (
	"errors"
)

var (
	MessageSuccessGenerateLabel = "label generated successfully"

	MessageFailedGenerateLabel = "failed to generate label"

	ErrLabelRenderFailed = errors.New("failed to render label image")
)

type (
	GenerateLabelRequest struct {
		Name             string  `json:"name" validate:"required"`
		ProductType      string  `json:"product_type" validate:"required"`
		ManufactureDate  string  `json:"manufacture_date" validate:"required"`
		ExpiryDate       string  `json:"expiry_date" validate:"required"`
		Mass             float64 `json:"mass" validate:"gte=0"`
		Unit             string  `json:"unit" validate:"required"`
		NutritionalValue string  `json:"nutritional_value"`
	}

	GenerateLabelResponse struct {
		Payload  string `json:"payload"`
		ImageURL string `json:"image_url"`
	}
)
