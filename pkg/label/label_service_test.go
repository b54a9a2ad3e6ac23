package label

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/pkg/descriptor"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	uploaded map[string][]byte
}

func (s *fakeStorage) UploadBytes(_ context.Context, fileName string, data []byte, _ string, dir string) (string, error) {
	key := dir + "/" + fileName
	s.uploaded[key] = data
	return key, nil
}

func (s *fakeStorage) DeleteFile(_ context.Context, objectKey string) error {
	delete(s.uploaded, objectKey)
	return nil
}

func (s *fakeStorage) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.example.com/" + objectKey
}

func (s *fakeStorage) GetObjectKeyFromLink(link string) string {
	return link
}

func TestGenerateLabel(t *testing.T) {
	storage := &fakeStorage{uploaded: make(map[string][]byte)}
	service := NewLabelService(storage)

	res, err := service.GenerateLabel(context.Background(), domain.GenerateLabelRequest{
		Name:            "Йогурт",
		ProductType:     "dairy",
		ManufactureDate: "2026-08-20",
		ExpiryDate:      "2026-09-05",
		Mass:            500,
		Unit:            "гр",
	}, "user-123")
	require.NoError(t, err)

	decoded, err := descriptor.Decode(res.Payload)
	require.NoError(t, err)
	assert.Equal(t, "Йогурт", decoded.Name)
	assert.Equal(t, "г", decoded.Unit, "label generators write гр, the payload carries г")

	require.Len(t, storage.uploaded, 1)
	assert.Contains(t, res.ImageURL, "https://cdn.example.com/labels/")
}

func TestGenerateLabelRejectsBadAttributes(t *testing.T) {
	service := NewLabelService(&fakeStorage{uploaded: make(map[string][]byte)})

	_, err := service.GenerateLabel(context.Background(), domain.GenerateLabelRequest{
		Name:            "Йогурт",
		ProductType:     "dairy",
		ManufactureDate: "2026-08-20",
		ExpiryDate:      "2026-09-05",
		Mass:            500,
		Unit:            "фунт",
	}, "user-123")
	assert.ErrorIs(t, err, domain.ErrInvalidUnit)
}
