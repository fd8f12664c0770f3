package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"service-desk/models"
	"service-desk/services"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Name, email and password"
// @Success 201 {object} models.PublicUser
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/users [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Name, email and password are required.")
		return
	}

	user, err := ctrl.authService.Register(c.Request.Context(), req)
	if errors.Is(err, services.ErrEmailTaken) {
		respondError(c, http.StatusConflict, "Email already registered.")
		return
	}
	if err != nil {
		respondInternal(c, "register user", err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Log in and receive a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	resp, err := ctrl.authService.Login(c.Request.Context(), req)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		respondError(c, http.StatusUnauthorized, "User not found")
	case errors.Is(err, services.ErrWrongPassword):
		respondError(c, http.StatusUnauthorized, "Wrong password")
	case err != nil:
		respondInternal(c, "login", err)
	default:
		c.JSON(http.StatusOK, resp)
	}
}

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.PublicUser
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/users [get]
func (ctrl *AuthController) ListUsers(c *gin.Context) {
	users, err := ctrl.authService.ListUsers(c.Request.Context())
	if err != nil {
		respondInternal(c, "list users", err)
		return
	}

	c.JSON(http.StatusOK, users)
}
