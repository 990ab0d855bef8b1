package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/repositories"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/config"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/jwt"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles authentication and user management business logic
type AuthService struct {
	userRepo repositories.UserRepository
	audit    *AuditService
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, audit *AuditService, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		audit:    audit,
		cfg:      cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUserInput represents user creation input
type CreateUserInput struct {
	Username    string               `json:"username"`
	Password    string               `json:"password"`
	Name        string               `json:"name"`
	Role        string               `json:"role"`
	Permissions domain.PermissionMap `json:"permissions"`
}

// UpdateUserInput represents a partial user update keyed by username
type UpdateUserInput struct {
	Username    string               `json:"username"`
	Password    string               `json:"password"`
	Role        string               `json:"role"`
	Permissions domain.PermissionMap `json:"permissions"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// AdminExists reports whether the first-run admin account has been created
func (s *AuthService) AdminExists(ctx context.Context) (bool, error) {
	return s.userRepo.AdminExists(ctx)
}

// SignupAdmin creates the first-run admin account. Refused once an admin
// exists; the admin is granted full permissions on every domain.
func (s *AuthService) SignupAdmin(ctx context.Context, username, plainPassword string) (*AuthResponse, error) {
	exists, err := s.userRepo.AdminExists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAdminExists
	}

	hashed, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}

	admin := &models.User{
		Username:    username,
		Password:    hashed,
		Name:        "Guest",
		Role:        domain.RoleAdmin,
		Permissions: domain.FullPermissions(),
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken(admin.ID, s.cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Admin account created: %s", admin.Username)

	return &AuthResponse{User: admin, Token: token}, nil
}

// Login authenticates a user. Only successful logins are audited; a
// failed attempt leaves no log entry.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, s.cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, models.LogTypeAuth, models.LogActionCreate,
		fmt.Sprintf("User %s logged in successfully on %s", user.Username, Timestamp()))

	return &AuthResponse{User: user, Token: token}, nil
}

// CreateUser creates a user account. An Admin role forces the full
// permission map regardless of what was supplied.
func (s *AuthService) CreateUser(ctx context.Context, input *CreateUserInput, actor string) (*models.User, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	permissions := input.Permissions
	if input.Role == domain.RoleAdmin {
		permissions = domain.FullPermissions()
	} else {
		for d, p := range permissions {
			if !domain.ValidPermission(p) {
				return nil, fmt.Errorf("%w: permission %q for domain %q", domain.ErrInvalidInput, p, d)
			}
		}
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	name := input.Name
	if name == "" {
		name = "Guest"
	}

	user := &models.User{
		Username:    input.Username,
		Password:    hashed,
		Name:        name,
		Role:        input.Role,
		Permissions: permissions,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, models.LogTypeAuth, models.LogActionCreate,
		fmt.Sprintf("New user account: %s created successfully by %s on %s", user.Username, actor, Timestamp()))

	return user, nil
}

// UpdateUser applies a partial update to the account named by username
func (s *AuthService) UpdateUser(ctx context.Context, input *UpdateUserInput) (*models.User, error) {
	if input.Password == "" && input.Role == "" && input.Permissions == nil {
		return nil, domain.ErrNothingToUpdate
	}

	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if input.Password != "" {
		hashed, err := password.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if input.Role != "" {
		user.Role = input.Role
	}
	if input.Permissions != nil {
		for d, p := range input.Permissions {
			if !domain.ValidPermission(p) {
				return nil, fmt.Errorf("%w: permission %q for domain %q", domain.ErrInvalidInput, p, d)
			}
		}
		user.Permissions = input.Permissions
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUsers lists all user accounts
func (s *AuthService) GetUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}

// DeleteUser deletes a user account by ID
func (s *AuthService) DeleteUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetUserByID gets a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ValidateToken validates an access token and returns its claims
func (s *AuthService) ValidateToken(token string) (*jwt.Claims, error) {
	return jwt.ValidateToken(token, s.cfg.JWT.Secret)
}
