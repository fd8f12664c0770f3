package services

import (
	"context"
	"errors"
	"fmt"

	"service-desk/models"
	"service-desk/repositories"
)

type OrderStore interface {
	Create(ctx context.Context, userID int, serviceType string, details *string) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id int) (*models.Order, error)
	Update(ctx context.Context, id int, serviceType, status string, details *string) (*models.Order, error)
	Delete(ctx context.Context, id int) error
}

type OrderService struct {
	orders OrderStore
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

func (s *OrderService) Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	order, err := s.orders.Create(ctx, req.UserID, req.ServiceType, nullIfEmpty(req.Details))
	if errors.Is(err, repositories.ErrForeignKey) {
		return nil, ErrUnknownUser
	}
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id int) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	return order, s.orderErr("get order", err)
}

func (s *OrderService) Update(ctx context.Context, id int, req models.UpdateOrderRequest) (*models.Order, error) {
	order, err := s.orders.Update(ctx, id, req.ServiceType, req.Status, req.Details)
	return order, s.orderErr("update order", err)
}

func (s *OrderService) Delete(ctx context.Context, id int) error {
	return s.orderErr("delete order", s.orders.Delete(ctx, id))
}

func (s *OrderService) orderErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return ErrOrderNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// nullIfEmpty stores an empty details string as NULL.
func nullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
