package product

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/entities"
	"FreshKeep-Backend/pkg/descriptor"
	"FreshKeep-Backend/pkg/freshness"
	"FreshKeep-Backend/pkg/fridge"
	"FreshKeep-Backend/pkg/shopping"
	"FreshKeep-Backend/pkg/transfer"
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProductService interface {
		Ingest(ctx context.Context, req domain.IngestProductRequest, userID string) (domain.ProductResponse, error)
		ListProducts(ctx context.Context, fridgeID string, userID string, sortKey string, query string) ([]domain.ProductResponse, error)
		Remove(ctx context.Context, productID string, userID string) error
		MoveToCart(ctx context.Context, productID string, userID string) (domain.ShoppingItemResponse, error)
	}

	productService struct {
		productRepository  ProductRepository
		fridgeRepository   fridge.FridgeRepository
		shoppingRepository shopping.ShoppingRepository
		now                func() time.Time
	}
)

func NewProductService(
	productRepository ProductRepository,
	fridgeRepository fridge.FridgeRepository,
	shoppingRepository shopping.ShoppingRepository,
	now func() time.Time,
) ProductService {
	if now == nil {
		now = time.Now
	}
	return &productService{
		productRepository:  productRepository,
		fridgeRepository:   fridgeRepository,
		shoppingRepository: shoppingRepository,
		now:                now,
	}
}

func (s *productService) Ingest(ctx context.Context, req domain.IngestProductRequest, userID string) (domain.ProductResponse, error) {
	attrs, err := descriptor.Decode(req.Payload)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	manufactureDate, err := time.Parse(descriptor.DateLayout, attrs.ManufactureDate)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrInvalidDate
	}
	expiryDate, err := time.Parse(descriptor.DateLayout, attrs.ExpiryDate)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrInvalidDate
	}
	if expiryDate.Before(manufactureDate) {
		return domain.ProductResponse{}, domain.ErrExpiryBeforeManufacture
	}

	f, err := s.fridgeRepository.GetFridgeByID(ctx, req.FridgeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrFridgeNotFound
		}
		return domain.ProductResponse{}, err
	}
	if f.UserID.String() != userID {
		return domain.ProductResponse{}, domain.ErrFridgeNotFound
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProductResponse{}, domain.ErrParseUUID
	}

	product := &entities.Product{
		ID:               uuid.New(),
		FridgeID:         f.ID,
		UserID:           userUUID,
		Name:             attrs.Name,
		ProductType:      attrs.ProductType,
		ManufactureDate:  manufactureDate,
		ExpiryDate:       expiryDate,
		Mass:             attrs.Mass,
		Unit:             attrs.Unit,
		NutritionalValue: attrs.NutritionalValue,
		Status:           string(transfer.StateInFridge),
	}

	if err := s.productRepository.AddProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return s.toResponse(product), nil
}

func (s *productService) ListProducts(ctx context.Context, fridgeID string, userID string, sortKey string, query string) ([]domain.ProductResponse, error) {
	f, err := s.fridgeRepository.GetFridgeByID(ctx, fridgeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFridgeNotFound
		}
		return nil, err
	}
	if f.UserID.String() != userID {
		return nil, domain.ErrFridgeNotFound
	}

	// InCart products are still physically in the fridge; moving an item
	// to the shopping list does not take it off the shelf.
	products, err := s.productRepository.GetProductsByFridge(ctx, fridgeID, []string{
		string(transfer.StateInFridge),
		string(transfer.StateInCart),
	})
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, s.toResponse(p))
	}

	response = SortProducts(response, ParseSortKey(sortKey))
	response = FilterProducts(response, query)
	return response, nil
}

func (s *productService) Remove(ctx context.Context, productID string, userID string) error {
	product, err := s.getOwnedProduct(ctx, productID, userID)
	if err != nil {
		return err
	}

	next, err := transfer.Next(transfer.State(product.Status), transfer.EventDelete)
	if err != nil {
		return err
	}

	return s.productRepository.UpdateProductStatus(ctx, productID, string(next))
}

func (s *productService) MoveToCart(ctx context.Context, productID string, userID string) (domain.ShoppingItemResponse, error) {
	product, err := s.getOwnedProduct(ctx, productID, userID)
	if err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	next, err := transfer.Next(transfer.State(product.Status), transfer.EventAddToCart)
	if err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	item := &entities.ShoppingItem{
		ID:          uuid.New(),
		UserID:      product.UserID,
		ProductID:   product.ID,
		FridgeID:    product.FridgeID,
		Name:        product.Name,
		ProductType: product.ProductType,
		Mass:        product.Mass,
		Quantity:    FormatQuantity(product.Mass, product.Unit),
	}

	if err := s.shoppingRepository.CreateItem(ctx, item, string(next)); err != nil {
		return domain.ShoppingItemResponse{}, err
	}

	return domain.ShoppingItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		ProductType: item.ProductType,
		Mass:        item.Quantity,
		FridgeID:    item.FridgeID.String(),
	}, nil
}

func (s *productService) getOwnedProduct(ctx context.Context, productID string, userID string) (*entities.Product, error) {
	product, err := s.productRepository.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	if product.UserID.String() != userID {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (s *productService) toResponse(p *entities.Product) domain.ProductResponse {
	return domain.ProductResponse{
		ID:               p.ID.String(),
		FridgeID:         p.FridgeID.String(),
		Name:             p.Name,
		ProductType:      p.ProductType,
		ManufactureDate:  p.ManufactureDate,
		ExpiryDate:       p.ExpiryDate,
		Mass:             p.Mass,
		Unit:             p.Unit,
		NutritionalValue: p.NutritionalValue,
		Status:           p.Status,
		Freshness:        string(freshness.Classify(p.ExpiryDate, s.now())),
	}
}

// FormatQuantity renders mass and unit as a single display value, e.g.
// "500г" or "1.5л".
func FormatQuantity(mass float64, unit string) string {
	return strconv.FormatFloat(mass, 'f', -1, 64) + unit
}
