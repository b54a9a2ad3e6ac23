package fridge

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FridgeService interface {
		CreateFridge(ctx context.Context, req domain.CreateFridgeRequest, userID string) (domain.FridgeResponse, error)
		GetFridges(ctx context.Context, userID string) ([]domain.FridgeResponse, error)
		DeleteFridge(ctx context.Context, id string, userID string) error
	}

	fridgeService struct {
		fridgeRepository FridgeRepository
	}
)

func NewFridgeService(fridgeRepository FridgeRepository) FridgeService {
	return &fridgeService{fridgeRepository: fridgeRepository}
}

func (s *fridgeService) CreateFridge(ctx context.Context, req domain.CreateFridgeRequest, userID string) (domain.FridgeResponse, error) {
	if req.Title == "" {
		return domain.FridgeResponse{}, domain.ErrEmptyTitle
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FridgeResponse{}, domain.ErrParseUUID
	}

	fridge := &entities.Fridge{
		ID:     uuid.New(),
		UserID: userUUID,
		Title:  req.Title,
	}

	if err := s.fridgeRepository.CreateFridge(ctx, fridge); err != nil {
		return domain.FridgeResponse{}, err
	}

	return domain.FridgeResponse{
		ID:    fridge.ID.String(),
		Title: fridge.Title,
	}, nil
}

func (s *fridgeService) GetFridges(ctx context.Context, userID string) ([]domain.FridgeResponse, error) {
	fridges, err := s.fridgeRepository.GetFridgesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FridgeResponse, 0, len(fridges))
	for _, f := range fridges {
		response = append(response, domain.FridgeResponse{
			ID:    f.ID.String(),
			Title: f.Title,
		})
	}

	return response, nil
}

func (s *fridgeService) DeleteFridge(ctx context.Context, id string, userID string) error {
	fridge, err := s.fridgeRepository.GetFridgeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFridgeNotFound
		}
		return err
	}

	if fridge.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	return s.fridgeRepository.DeleteFridge(ctx, id)
}
