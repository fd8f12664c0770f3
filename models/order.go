package models

import "time"

const DefaultOrderStatus = "pending"

type Order struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	ServiceType string    `json:"service_type"`
	Status      string    `json:"status"`
	Details     *string   `json:"details"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
