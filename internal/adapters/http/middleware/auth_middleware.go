package middleware

import (
	"strings"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/repositories"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/config"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/jwt"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware.
// The user record is resolved on every request so that permission and
// role changes take effect without re-login.
func AuthMiddleware(cfg *config.Config, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := extractToken(c)
		if accessToken == "" {
			return response.Forbidden(c, "Invalid credentials")
		}

		claims, err := jwt.ValidateToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			return response.Forbidden(c, "Invalid credentials")
		}

		user, err := userRepo.GetByID(c.Context(), claims.UserID)
		if err != nil {
			return response.Forbidden(c, "Invalid credentials")
		}

		c.Locals("userID", user.ID)
		c.Locals("username", user.Username)
		c.Locals("role", user.Role)
		c.Locals("permissions", user.Permissions)

		return c.Next()
	}
}

// extractToken pulls the bearer token from the Authorization header
func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// AdminOnly middleware allows only the Admin role
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role != domain.RoleAdmin {
			return response.Forbidden(c, "Invalid credentials")
		}
		return c.Next()
	}
}

// RequirePermission authorizes a request against the caller's permission
// map for the given domain. Admins always pass.
func RequirePermission(dom string, action domain.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role == domain.RoleAdmin {
			return c.Next()
		}

		perms, ok := c.Locals("permissions").(domain.PermissionMap)
		if !ok {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}
		if !perms.Allows(dom, action) {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		return c.Next()
	}
}
