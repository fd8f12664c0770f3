package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"service-desk/models"
	"service-desk/services"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder godoc
// @Summary Create an order
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Router /api/orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "User ID and service type are required.")
		return
	}

	order, err := ctrl.orderService.Create(c.Request.Context(), req)
	if errors.Is(err, services.ErrUnknownUser) {
		respondError(c, http.StatusBadRequest, "User does not exist.")
		return
	}
	if err != nil {
		respondInternal(c, "create order", err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ListOrders godoc
// @Summary List orders
// @Tags Orders
// @Produce json
// @Success 200 {array} models.Order
// @Router /api/orders [get]
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	orders, err := ctrl.orderService.List(c.Request.Context())
	if err != nil {
		respondInternal(c, "list orders", err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder godoc
// @Summary Get an order
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} models.ErrorResponse
// @Router /api/orders/{id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := ctrl.orderService.Get(c.Request.Context(), id)
	if ctrl.handleOrderErr(c, "get order", err) {
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrder godoc
// @Summary Replace an order's fields
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderRequest true "New values"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/orders/{id} [put]
func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Service type and status are required.")
		return
	}

	order, err := ctrl.orderService.Update(c.Request.Context(), id, req)
	if ctrl.handleOrderErr(c, "update order", err) {
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder godoc
// @Summary Delete an order
// @Tags Orders
// @Produce plain
// @Param id path int true "Order ID"
// @Success 200 {string} string "Order deleted."
// @Failure 404 {object} models.ErrorResponse
// @Router /api/orders/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := ctrl.orderService.Delete(c.Request.Context(), id)
	if ctrl.handleOrderErr(c, "delete order", err) {
		return
	}

	c.String(http.StatusOK, "Order deleted.")
}

func (ctrl *OrderController) handleOrderErr(c *gin.Context, op string, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, services.ErrOrderNotFound):
		respondError(c, http.StatusNotFound, "Order not found.")
	default:
		respondInternal(c, op, err)
	}
	return true
}
