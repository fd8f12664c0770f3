package models

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type CreateOrderRequest struct {
	UserID      int     `json:"user_id" binding:"required"`
	ServiceType string  `json:"service_type" binding:"required"`
	Details     *string `json:"details"`
}

// UpdateOrderRequest replaces every mutable field of an order.
type UpdateOrderRequest struct {
	ServiceType string  `json:"service_type" binding:"required"`
	Status      string  `json:"status" binding:"required"`
	Details     *string `json:"details"`
}
