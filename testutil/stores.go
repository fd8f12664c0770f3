// Package testutil holds in-memory stores used by handler and service tests.
package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"service-desk/models"
	"service-desk/repositories"
)

// UserStore mimics the users table, including its unique email constraint.
type UserStore struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]models.User
	Err    error
}

func NewUserStore() *UserStore {
	return &UserStore{nextID: 1, byID: map[int]models.User{}}
}

func (s *UserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	for _, existing := range s.byID {
		if existing.Email == user.Email {
			return errors.Join(repositories.ErrDuplicate, errors.New("users_email_key"))
		}
	}

	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.nextID++
	s.byID[user.ID] = *user
	return nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	for _, user := range s.byID {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *UserStore) List(_ context.Context) ([]models.PublicUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	users := []models.PublicUser{}
	for _, user := range s.byID {
		users = append(users, user.Public())
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Exists reports whether a user with the given id was created.
func (s *UserStore) Exists(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.byID[id]
	return ok
}

// OrderStore mimics the orders table. When Users is set, user_id must
// reference an existing user.
type OrderStore struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]models.Order
	Users  *UserStore
	Err    error
}

func NewOrderStore(users *UserStore) *OrderStore {
	return &OrderStore{nextID: 1, byID: map[int]models.Order{}, Users: users}
}

func (s *OrderStore) Create(_ context.Context, userID int, serviceType string, details *string) (*models.Order, error) {
	if s.Users != nil && !s.Users.Exists(userID) {
		return nil, repositories.ErrForeignKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	now := time.Now()
	order := models.Order{
		ID:          s.nextID,
		UserID:      userID,
		ServiceType: serviceType,
		Status:      models.DefaultOrderStatus,
		Details:     details,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextID++
	s.byID[order.ID] = order
	return &order, nil
}

func (s *OrderStore) List(_ context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	orders := []models.Order{}
	for _, order := range s.byID {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (s *OrderStore) FindByID(_ context.Context, id int) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	order, ok := s.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &order, nil
}

func (s *OrderStore) Update(_ context.Context, id int, serviceType, status string, details *string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	order, ok := s.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	order.ServiceType = serviceType
	order.Status = status
	order.Details = details
	order.UpdatedAt = time.Now()
	s.byID[id] = order
	return &order, nil
}

func (s *OrderStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	if _, ok := s.byID[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

// Len returns the number of stored orders.
func (s *OrderStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}
