package handlers

import (
	"errors"
	"strings"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/services"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication and user management endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents admin signup request body
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DeleteUserRequest identifies the user account to remove
type DeleteUserRequest struct {
	ID uint `json:"id"`
}

// Initialize reports whether the first-run admin account exists
// @Summary Check initialization state
// @Description Reports whether an admin account has been created yet
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth [get]
func (h *AuthHandler) Initialize(c *fiber.Ctx) error {
	exists, err := h.authService.AdminExists(c.Context())
	if err != nil {
		return response.InternalServerError(c)
	}

	if exists {
		return response.Success(c, "Admin account already exists", fiber.Map{"initialized": true})
	}
	return response.Success(c, "Admin account does not exist", fiber.Map{"initialized": false})
}

// SignupAdmin handles first-run admin creation
// @Summary Create the admin account
// @Description One-time admin signup; refused once an admin exists
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "Admin credentials"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /auth/signup-admin [post]
func (h *AuthHandler) SignupAdmin(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Missing username or password")
	}

	result, err := h.authService.SignupAdmin(c.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAdminExists):
			return response.BadRequest(c, "Admin account already exists")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Created(c, "Admin account created successfully", result)
}

// Login handles user login
// @Summary Login
// @Description Authenticate a user and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Missing username or password")
	}

	input := &services.LoginInput{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.Forbidden(c, "Invalid username or password")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "Login successful", result)
}

// Info returns the authenticated user's record
// @Summary Get current user
// @Description Returns the caller's user record
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /auth/info [get]
func (h *AuthHandler) Info(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Forbidden(c, "Invalid credentials")
	}

	user, err := h.authService.GetUserByID(c.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "Fetched auth info successfully", user)
}

// CreateUser handles staff account creation
// @Summary Create a user account
// @Description Admin creates a staff account with a permission map
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.CreateUserInput true "User data"
// @Security BearerAuth
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /auth/create-user [post]
func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	var input services.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.Username == "" || input.Password == "" || input.Role == "" {
		return response.BadRequest(c, "Missing required fields")
	}

	actor, _ := c.Locals("username").(string)

	user, err := h.authService.CreateUser(c.Context(), &input, actor)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			return response.BadRequest(c, "User account already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid permissions")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Created(c, "User account created successfully", user)
}

// UpdateUser handles partial user updates keyed by username
// @Summary Update a user account
// @Description Updates password, role or permissions of an existing user
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.UpdateUserInput true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /auth/update-user [post]
func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	var input services.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.authService.UpdateUser(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNothingToUpdate):
			return response.BadRequest(c, "Username is missing or Nothing to update")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User account does not exist")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid permissions")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "User account updated successfully", user)
}

// GetUsers lists all user accounts
// @Summary List users
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /auth/get-users [get]
func (h *AuthHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.authService.GetUsers(c.Context())
	if err != nil {
		return response.InternalServerError(c)
	}

	return response.Success(c, "Users fetched successfully", users)
}

// DeleteUser removes a user account by id
// @Summary Delete a user account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body DeleteUserRequest true "User id"
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /auth/delete-user [post]
func (h *AuthHandler) DeleteUser(c *fiber.Ctx) error {
	var req DeleteUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ID == 0 {
		return response.BadRequest(c, "User id is missing")
	}

	user, err := h.authService.DeleteUser(c.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User account does not exist")
		default:
			return response.InternalServerError(c)
		}
	}

	return response.Success(c, "User account deleted successfully", user)
}
