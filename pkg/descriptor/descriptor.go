package descriptor

import (
	"FreshKeep-Backend/domain"
	"encoding/json"
	"math"
	"time"

	"github.com/skip2/go-qrcode"
)

// DateLayout is the calendar-date format carried inside label payloads.
const DateLayout = "2006-01-02"

// Units is the closed vocabulary accepted on labels. Desktop label
// generators emit "гр" for grams; Normalize folds it into "г".
var Units = []string{"г", "кг", "мл", "л"}

// Attributes is the portable subset of a product: no identity, no fridge
// association. Dates stay calendar strings so a round trip never
// re-interprets them.
type Attributes struct {
	Name             string  `json:"name"`
	ProductType      string  `json:"product_type"`
	ManufactureDate  string  `json:"manufacture_date"`
	ExpiryDate       string  `json:"expiry_date"`
	Mass             float64 `json:"mass"`
	Unit             string  `json:"unit"`
	NutritionalValue string  `json:"nutritional_value,omitempty"`
}

// Encode serializes the attributes into a payload suitable for a QR label.
func Encode(attrs Attributes) (string, error) {
	attrs.Unit = NormalizeUnit(attrs.Unit)
	if err := validate(attrs); err != nil {
		return "", err
	}

	data, err := json.Marshal(attrs)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses and validates a scanned payload. Semantically odd but
// well-formed values (expiry before manufacture) pass here; that check
// belongs to ingestion.
func Decode(payload string) (Attributes, error) {
	var raw struct {
		Name             string   `json:"name"`
		ProductType      string   `json:"product_type"`
		ManufactureDate  string   `json:"manufacture_date"`
		ExpiryDate       string   `json:"expiry_date"`
		Mass             *float64 `json:"mass"`
		Unit             string   `json:"unit"`
		NutritionalValue string   `json:"nutritional_value"`
	}

	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return Attributes{}, domain.ErrMalformedPayload
	}

	if raw.Mass == nil {
		return Attributes{}, domain.ErrInvalidMass
	}

	attrs := Attributes{
		Name:             raw.Name,
		ProductType:      raw.ProductType,
		ManufactureDate:  raw.ManufactureDate,
		ExpiryDate:       raw.ExpiryDate,
		Mass:             *raw.Mass,
		Unit:             NormalizeUnit(raw.Unit),
		NutritionalValue: raw.NutritionalValue,
	}

	if err := validate(attrs); err != nil {
		return Attributes{}, err
	}
	return attrs, nil
}

// RenderPNG renders an encoded payload as a scannable QR image.
func RenderPNG(payload string, size int) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, domain.ErrLabelRenderFailed
	}
	return png, nil
}

// NormalizeUnit folds alternate spellings into the canonical vocabulary.
func NormalizeUnit(unit string) string {
	if unit == "гр" {
		return "г"
	}
	return unit
}

func validate(attrs Attributes) error {
	if attrs.Name == "" {
		return domain.ErrEmptyName
	}
	if attrs.ProductType == "" {
		return domain.ErrEmptyProductType
	}
	if math.IsNaN(attrs.Mass) || math.IsInf(attrs.Mass, 0) || attrs.Mass < 0 {
		return domain.ErrInvalidMass
	}
	if !validUnit(attrs.Unit) {
		return domain.ErrInvalidUnit
	}
	if _, err := time.Parse(DateLayout, attrs.ManufactureDate); err != nil {
		return domain.ErrInvalidDate
	}
	if _, err := time.Parse(DateLayout, attrs.ExpiryDate); err != nil {
		return domain.ErrInvalidDate
	}
	return nil
}

func validUnit(unit string) bool {
	for _, u := range Units {
		if u == unit {
			return true
		}
	}
	return false
}
