package label

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/internal/utils/storage"
	"FreshKeep-Backend/pkg/descriptor"
	"context"
	"fmt"

	"github.com/google/uuid"
)

const labelImageSize = 512

type (
	LabelService interface {
		GenerateLabel(ctx context.Context, req domain.GenerateLabelRequest, userID string) (domain.GenerateLabelResponse, error)
	}

	labelService struct {
		s3 storage.AwsS3
	}
)

func NewLabelService(s3 storage.AwsS3) LabelService {
	return &labelService{s3: s3}
}

// GenerateLabel encodes the attributes, renders the QR image and stores it
// so the label can be printed or displayed on another device.
func (s *labelService) GenerateLabel(ctx context.Context, req domain.GenerateLabelRequest, userID string) (domain.GenerateLabelResponse, error) {
	payload, err := descriptor.Encode(descriptor.Attributes{
		Name:             req.Name,
		ProductType:      req.ProductType,
		ManufactureDate:  req.ManufactureDate,
		ExpiryDate:       req.ExpiryDate,
		Mass:             req.Mass,
		Unit:             req.Unit,
		NutritionalValue: req.NutritionalValue,
	})
	if err != nil {
		return domain.GenerateLabelResponse{}, err
	}

	png, err := descriptor.RenderPNG(payload, labelImageSize)
	if err != nil {
		return domain.GenerateLabelResponse{}, err
	}

	fileName := fmt.Sprintf("label-%s-%s.png", userID, uuid.New().String())
	objectKey, err := s.s3.UploadBytes(ctx, fileName, png, "image/png", "labels")
	if err != nil {
		return domain.GenerateLabelResponse{}, err
	}

	return domain.GenerateLabelResponse{
		Payload:  payload,
		ImageURL: s.s3.GetPublicLinkKey(objectKey),
	}, nil
}
