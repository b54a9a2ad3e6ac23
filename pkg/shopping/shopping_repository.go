package shopping

import (
	"FreshKeep-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ShoppingRepository interface {
		CreateItem(ctx context.Context, item *entities.ShoppingItem, productStatus string) error
		GetItemByID(ctx context.Context, id string) (*entities.ShoppingItem, error)
		GetItemsByUser(ctx context.Context, userID string) ([]*entities.ShoppingItem, error)
		MarkPurchased(ctx context.Context, item *entities.ShoppingItem, productStatus string) error
		RemoveFromCart(ctx context.Context, item *entities.ShoppingItem, productStatus string) error
		GetTopProducts(ctx context.Context, userID string, since time.Time, limit int) ([]*entities.PurchaseRecord, error)
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) CreateItem(ctx context.Context, item *entities.ShoppingItem, productStatus string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Product{}).
			Where("id = ?", item.ProductID).
			Update("status", productStatus).Error
	})
}

func (r *shoppingRepository) GetItemByID(ctx context.Context, id string) (*entities.ShoppingItem, error) {
	var item entities.ShoppingItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepository) GetItemsByUser(ctx context.Context, userID string) ([]*entities.ShoppingItem, error) {
	var items []*entities.ShoppingItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// MarkPurchased deletes the shopping item, moves its product to the
// terminal state and increments the replenishment counter, all in one
// transaction so a retry cannot lose the increment.
func (r *shoppingRepository) MarkPurchased(ctx context.Context, item *entities.ShoppingItem, productStatus string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", item.ID).Delete(&entities.ShoppingItem{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.Product{}).
			Where("id = ?", item.ProductID).
			Update("status", productStatus).Error; err != nil {
			return err
		}

		record := &entities.PurchaseRecord{
			ID:          uuid.New(),
			UserID:      item.UserID,
			Name:        item.Name,
			ProductType: item.ProductType,
			Mass:        item.Mass,
			Quantity:    1,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"}, {Name: "name"}, {Name: "product_type"}, {Name: "mass"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("purchase_records.quantity + 1"),
				"updated_at": time.Now(),
			}),
		}).Create(record).Error
	})
}

func (r *shoppingRepository) RemoveFromCart(ctx context.Context, item *entities.ShoppingItem, productStatus string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", item.ID).Delete(&entities.ShoppingItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Product{}).
			Where("id = ?", item.ProductID).
			Update("status", productStatus).Error
	})
}

func (r *shoppingRepository) GetTopProducts(ctx context.Context, userID string, since time.Time, limit int) ([]*entities.PurchaseRecord, error) {
	var records []*entities.PurchaseRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND updated_at >= ?", userID, since).
		Order("quantity desc").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
