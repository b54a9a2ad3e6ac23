package shopping

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/entities"
	"FreshKeep-Backend/pkg/transfer"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

const topProductsLimit = 10

type (
	ShoppingService interface {
		ListShoppingItems(ctx context.Context, userID string) ([]domain.ShoppingItemResponse, error)
		MarkPurchased(ctx context.Context, itemID string, userID string) error
		RemoveFromCart(ctx context.Context, itemID string, userID string) error
		GetTopProducts(ctx context.Context, userID string, statsRange string) ([]domain.TopProductResponse, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		productRepository  ProductStatusReader
		now                func() time.Time
	}

	// ProductStatusReader is the slice of the product repository the cart
	// transitions need: the current lifecycle state of the linked product.
	ProductStatusReader interface {
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository, productRepository ProductStatusReader, now func() time.Time) ShoppingService {
	if now == nil {
		now = time.Now
	}
	return &shoppingService{
		shoppingRepository: shoppingRepository,
		productRepository:  productRepository,
		now:                now,
	}
}

func (s *shoppingService) ListShoppingItems(ctx context.Context, userID string) ([]domain.ShoppingItemResponse, error) {
	items, err := s.shoppingRepository.GetItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ShoppingItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, domain.ShoppingItemResponse{
			ID:          item.ID.String(),
			Name:        item.Name,
			ProductType: item.ProductType,
			Mass:        item.Quantity,
			FridgeID:    item.FridgeID.String(),
		})
	}

	return response, nil
}

func (s *shoppingService) MarkPurchased(ctx context.Context, itemID string, userID string) error {
	item, product, err := s.getOwnedItem(ctx, itemID, userID)
	if err != nil {
		return err
	}

	next, err := transfer.Next(transfer.State(product.Status), transfer.EventMarkPurchased)
	if err != nil {
		return err
	}

	return s.shoppingRepository.MarkPurchased(ctx, item, string(next))
}

func (s *shoppingService) RemoveFromCart(ctx context.Context, itemID string, userID string) error {
	item, product, err := s.getOwnedItem(ctx, itemID, userID)
	if err != nil {
		return err
	}

	next, err := transfer.Next(transfer.State(product.Status), transfer.EventRemoveFromCart)
	if err != nil {
		return err
	}

	return s.shoppingRepository.RemoveFromCart(ctx, item, string(next))
}

func (s *shoppingService) GetTopProducts(ctx context.Context, userID string, statsRange string) ([]domain.TopProductResponse, error) {
	var since time.Time
	switch statsRange {
	case "day":
		since = s.now().AddDate(0, 0, -1)
	case "week":
		since = s.now().AddDate(0, 0, -7)
	case "month":
		since = s.now().AddDate(0, -1, 0)
	default:
		return nil, domain.ErrInvalidStatsRange
	}

	records, err := s.shoppingRepository.GetTopProducts(ctx, userID, since, topProductsLimit)
	if err != nil {
		return nil, err
	}

	response := make([]domain.TopProductResponse, 0, len(records))
	for _, record := range records {
		response = append(response, domain.TopProductResponse{
			Name:        record.Name,
			ProductType: record.ProductType,
			Mass:        record.Mass,
			Quantity:    record.Quantity,
		})
	}

	return response, nil
}

func (s *shoppingService) getOwnedItem(ctx context.Context, itemID string, userID string) (*entities.ShoppingItem, *entities.Product, error) {
	item, err := s.shoppingRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrShoppingItemNotFound
		}
		return nil, nil, err
	}
	if item.UserID.String() != userID {
		return nil, nil, domain.ErrShoppingItemNotFound
	}

	product, err := s.productRepository.GetProductByID(ctx, item.ProductID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrProductNotFound
		}
		return nil, nil, err
	}

	return item, product, nil
}
