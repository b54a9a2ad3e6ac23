package product

import (
	"FreshKeep-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		AddProduct(ctx context.Context, product *entities.Product) error
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
		GetProductsByFridge(ctx context.Context, fridgeID string, statuses []string) ([]*entities.Product, error)
		UpdateProductStatus(ctx context.Context, id string, status string) error
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) AddProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetProductsByFridge(ctx context.Context, fridgeID string, statuses []string) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Where("fridge_id = ? AND status IN ?", fridgeID, statuses).
		Order("created_at asc").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) UpdateProductStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).Model(&entities.Product{}).
		Where("id = ?", id).
		Update("status", status).Error
}
