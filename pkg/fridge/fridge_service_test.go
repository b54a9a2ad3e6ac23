package fridge

import (
	"FreshKeep-Backend/domain"
	"FreshKeep-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFridgeRepository struct {
	fridges map[string]*entities.Fridge
}

func newFakeFridgeRepository() *fakeFridgeRepository {
	return &fakeFridgeRepository{fridges: make(map[string]*entities.Fridge)}
}

func (r *fakeFridgeRepository) CreateFridge(_ context.Context, fridge *entities.Fridge) error {
	r.fridges[fridge.ID.String()] = fridge
	return nil
}

func (r *fakeFridgeRepository) GetFridgeByID(_ context.Context, id string) (*entities.Fridge, error) {
	fridge, ok := r.fridges[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return fridge, nil
}

func (r *fakeFridgeRepository) GetFridgesByUser(_ context.Context, userID string) ([]*entities.Fridge, error) {
	var out []*entities.Fridge
	for _, f := range r.fridges {
		if f.UserID.String() == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFridgeRepository) DeleteFridge(_ context.Context, id string) error {
	delete(r.fridges, id)
	return nil
}

func TestCreateFridge(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo)
	userID := uuid.NewString()

	res, err := service.CreateFridge(context.Background(), domain.CreateFridgeRequest{Title: "Дача"}, userID)
	require.NoError(t, err)
	assert.Equal(t, "Дача", res.Title)
	assert.Len(t, repo.fridges, 1)
}

func TestCreateFridgeEmptyTitle(t *testing.T) {
	service := NewFridgeService(newFakeFridgeRepository())

	_, err := service.CreateFridge(context.Background(), domain.CreateFridgeRequest{}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestGetFridgesScopedToUser(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo)
	ctx := context.Background()

	mine := uuid.NewString()
	theirs := uuid.NewString()

	_, err := service.CreateFridge(ctx, domain.CreateFridgeRequest{Title: "Кухня"}, mine)
	require.NoError(t, err)
	_, err = service.CreateFridge(ctx, domain.CreateFridgeRequest{Title: "Чужой"}, theirs)
	require.NoError(t, err)

	got, err := service.GetFridges(ctx, mine)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Кухня", got[0].Title)
}

func TestDeleteFridge(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo)
	ctx := context.Background()
	userID := uuid.NewString()

	res, err := service.CreateFridge(ctx, domain.CreateFridgeRequest{Title: "Кухня"}, userID)
	require.NoError(t, err)

	require.NoError(t, service.DeleteFridge(ctx, res.ID, userID))
	assert.Empty(t, repo.fridges)
}

func TestDeleteFridgeErrors(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo)
	ctx := context.Background()

	err := service.DeleteFridge(ctx, uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrFridgeNotFound)

	res, err := service.CreateFridge(ctx, domain.CreateFridgeRequest{Title: "Кухня"}, uuid.NewString())
	require.NoError(t, err)

	err = service.DeleteFridge(ctx, res.ID, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
	assert.Len(t, repo.fridges, 1, "foreign fridge survives the attempt")
}
