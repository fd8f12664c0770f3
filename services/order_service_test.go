package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-desk/models"
	"service-desk/testutil"
)

func newOrderService(t *testing.T) (*OrderService, *testutil.OrderStore) {
	users := testutil.NewUserStore()
	require.NoError(t, users.Create(context.Background(), &models.User{Name: "Ada", Email: "ada@example.com", Password: "x"}))
	store := testutil.NewOrderStore(users)
	return NewOrderService(store), store
}

func TestOrderService_CreateAndGet(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreateOrderRequest{UserID: 1, ServiceType: "cleaning"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultOrderStatus, created.Status)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestOrderService_CreateStoresEmptyDetailsAsNull(t *testing.T) {
	svc, _ := newOrderService(t)
	empty := ""

	created, err := svc.Create(context.Background(), models.CreateOrderRequest{UserID: 1, ServiceType: "cleaning", Details: &empty})
	require.NoError(t, err)
	assert.Nil(t, created.Details)
}

func TestOrderService_CreateUnknownUser(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.Create(context.Background(), models.CreateOrderRequest{UserID: 42, ServiceType: "cleaning"})
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestOrderService_MissingOrder(t *testing.T) {
	svc, store := newOrderService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, 9)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = svc.Update(ctx, 9, models.UpdateOrderRequest{ServiceType: "repair", Status: "done"})
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Equal(t, 0, store.Len())

	assert.ErrorIs(t, svc.Delete(ctx, 9), ErrOrderNotFound)
}

func TestOrderService_DeleteTwice(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.CreateOrderRequest{UserID: 1, ServiceType: "cleaning"})
	require.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrOrderNotFound)
}

func TestOrderService_StoreFailureIsWrapped(t *testing.T) {
	svc, store := newOrderService(t)
	store.Err = errors.New("timeout")

	_, err := svc.List(context.Background())
	assert.EqualError(t, err, "list orders: timeout")

	err = svc.Delete(context.Background(), 1)
	assert.EqualError(t, err, "delete order: timeout")
}
