package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"service-desk/models"
)

const orderColumns = `id, user_id, service_type, status, details, created_at, updated_at`

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	order := &models.Order{}
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.ServiceType,
		&order.Status,
		&order.Details,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return order, nil
}

func (r *OrderRepository) Create(ctx context.Context, userID int, serviceType string, details *string) (*models.Order, error) {
	query := `
		INSERT INTO orders (user_id, service_type, details)
		VALUES ($1, $2, $3)
		RETURNING ` + orderColumns

	return scanOrder(r.db.QueryRow(ctx, query, userID, serviceType, details))
}

func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	rows, err := r.db.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY id`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}

	return orders, rows.Err()
}

func (r *OrderRepository) FindByID(ctx context.Context, id int) (*models.Order, error) {
	return scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
}

func (r *OrderRepository) Update(ctx context.Context, id int, serviceType, status string, details *string) (*models.Order, error) {
	query := `
		UPDATE orders
		SET service_type = $1, status = $2, details = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING ` + orderColumns

	return scanOrder(r.db.QueryRow(ctx, query, serviceType, status, details, id))
}

func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
