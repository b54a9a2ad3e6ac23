package shopping

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/entities"
	"FreshKeep-Backend/pkg/transfer"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeStore struct {
	products map[string]*entities.Product
	items    map[string]*entities.ShoppingItem
	records  map[string]*entities.PurchaseRecord
	touched  map[string]time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[string]*entities.Product),
		items:    make(map[string]*entities.ShoppingItem),
		records:  make(map[string]*entities.PurchaseRecord),
		touched:  make(map[string]time.Time),
	}
}

func (s *fakeStore) GetProductByID(_ context.Context, id string) (*entities.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

func (s *fakeStore) CreateItem(_ context.Context, item *entities.ShoppingItem, productStatus string) error {
	s.items[item.ID.String()] = item
	s.products[item.ProductID.String()].Status = productStatus
	return nil
}

func (s *fakeStore) GetItemByID(_ context.Context, id string) (*entities.ShoppingItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (s *fakeStore) GetItemsByUser(_ context.Context, userID string) ([]*entities.ShoppingItem, error) {
	var out []*entities.ShoppingItem
	for _, item := range s.items {
		if item.UserID.String() == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *fakeStore) MarkPurchased(_ context.Context, item *entities.ShoppingItem, productStatus string) error {
	delete(s.items, item.ID.String())
	s.products[item.ProductID.String()].Status = productStatus

	key := item.UserID.String() + "|" + item.Name + "|" + item.ProductType
	if record, ok := s.records[key]; ok {
		record.Quantity++
		s.touched[key] = time.Now()
		return nil
	}
	s.records[key] = &entities.PurchaseRecord{
		ID:          uuid.New(),
		UserID:      item.UserID,
		Name:        item.Name,
		ProductType: item.ProductType,
		Mass:        item.Mass,
		Quantity:    1,
	}
	s.touched[key] = time.Now()
	return nil
}

func (s *fakeStore) RemoveFromCart(_ context.Context, item *entities.ShoppingItem, productStatus string) error {
	delete(s.items, item.ID.String())
	s.products[item.ProductID.String()].Status = productStatus
	return nil
}

func (s *fakeStore) GetTopProducts(_ context.Context, userID string, since time.Time, limit int) ([]*entities.PurchaseRecord, error) {
	var out []*entities.PurchaseRecord
	for key, record := range s.records {
		if record.UserID.String() != userID || s.touched[key].Before(since) {
			continue
		}
		out = append(out, record)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type shoppingFixture struct {
	service ShoppingService
	store   *fakeStore
	userID  uuid.UUID
}

func newShoppingFixture(t *testing.T) *shoppingFixture {
	t.Helper()

	store := newFakeStore()
	return &shoppingFixture{
		service: NewShoppingService(store, store, time.Now),
		store:   store,
		userID:  uuid.New(),
	}
}

// addToCart seeds an InCart product with a linked shopping item, the state
// the product service leaves behind after a move to the cart.
func (f *shoppingFixture) addToCart(name string, productType string, mass float64) (*entities.Product, *entities.ShoppingItem) {
	product := &entities.Product{
		ID:          uuid.New(),
		FridgeID:    uuid.New(),
		UserID:      f.userID,
		Name:        name,
		ProductType: productType,
		Mass:        mass,
		Unit:        "г",
		Status:      string(transfer.StateInCart),
	}
	f.store.products[product.ID.String()] = product

	item := &entities.ShoppingItem{
		ID:          uuid.New(),
		UserID:      f.userID,
		ProductID:   product.ID,
		FridgeID:    product.FridgeID,
		Name:        name,
		ProductType: productType,
		Mass:        mass,
		Quantity:    "500г",
	}
	f.store.items[item.ID.String()] = item
	return product, item
}

func TestListShoppingItems(t *testing.T) {
	f := newShoppingFixture(t)
	f.addToCart("Йогурт", "dairy", 500)

	got, err := f.service.ListShoppingItems(context.Background(), f.userID.String())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Йогурт", got[0].Name)
	assert.Equal(t, "500г", got[0].Mass)
}

func TestMarkPurchased(t *testing.T) {
	f := newShoppingFixture(t)
	product, item := f.addToCart("Йогурт", "dairy", 500)

	err := f.service.MarkPurchased(context.Background(), item.ID.String(), f.userID.String())
	require.NoError(t, err)

	assert.Equal(t, string(transfer.StatePurchased), product.Status)
	assert.Empty(t, f.store.items)
	require.Len(t, f.store.records, 1)
	for _, record := range f.store.records {
		assert.Equal(t, 1, record.Quantity)
	}
}

func TestMarkPurchasedUnknownItem(t *testing.T) {
	f := newShoppingFixture(t)

	err := f.service.MarkPurchased(context.Background(), uuid.NewString(), f.userID.String())
	assert.ErrorIs(t, err, domain.ErrShoppingItemNotFound)
}

func TestMarkPurchasedForeignItem(t *testing.T) {
	f := newShoppingFixture(t)
	_, item := f.addToCart("Йогурт", "dairy", 500)

	err := f.service.MarkPurchased(context.Background(), item.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrShoppingItemNotFound)
}

func TestRemoveFromCart(t *testing.T) {
	f := newShoppingFixture(t)
	product, item := f.addToCart("Йогурт", "dairy", 500)

	err := f.service.RemoveFromCart(context.Background(), item.ID.String(), f.userID.String())
	require.NoError(t, err)

	assert.Equal(t, string(transfer.StateRemoved), product.Status)
	assert.Empty(t, f.store.items)
	assert.Empty(t, f.store.records, "removing without buying leaves no purchase trace")
}

// The same product can sit in the cart twice. Purchasing through one entry
// moves the product to its terminal state, so acting on the stale duplicate
// is rejected rather than double-counted.
func TestDuplicateEntryAfterPurchase(t *testing.T) {
	f := newShoppingFixture(t)
	ctx := context.Background()

	product, first := f.addToCart("Йогурт", "dairy", 500)

	second := &entities.ShoppingItem{
		ID:          uuid.New(),
		UserID:      f.userID,
		ProductID:   product.ID,
		FridgeID:    product.FridgeID,
		Name:        product.Name,
		ProductType: product.ProductType,
		Mass:        product.Mass,
		Quantity:    "500г",
	}
	f.store.items[second.ID.String()] = second

	require.NoError(t, f.service.MarkPurchased(ctx, first.ID.String(), f.userID.String()))

	err := f.service.RemoveFromCart(ctx, second.ID.String(), f.userID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	err = f.service.MarkPurchased(ctx, second.ID.String(), f.userID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRepeatPurchasesMerge(t *testing.T) {
	f := newShoppingFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, item := f.addToCart("Йогурт", "dairy", 500)
		require.NoError(t, f.service.MarkPurchased(ctx, item.ID.String(), f.userID.String()))
	}

	got, err := f.service.GetTopProducts(ctx, f.userID.String(), "week")
	require.NoError(t, err)
	require.Len(t, got, 1, "repeat purchases merge into one record")
	assert.Equal(t, "Йогурт", got[0].Name)
	assert.Equal(t, 3, got[0].Quantity)
}

func TestGetTopProductsInvalidRange(t *testing.T) {
	f := newShoppingFixture(t)

	_, err := f.service.GetTopProducts(context.Background(), f.userID.String(), "year")
	assert.ErrorIs(t, err, domain.ErrInvalidStatsRange)
}
