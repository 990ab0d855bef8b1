package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/core/domain"
)

func TestSignupAdminGrantsFullPermissions(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newAuthService(db)
	ctx := context.Background()

	result, err := svc.SignupAdmin(ctx, "admin", "secret123")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if result.Token == "" {
		t.Error("no token returned")
	}
	if result.User.Role != domain.RoleAdmin {
		t.Errorf("role = %q, want Admin", result.User.Role)
	}
	for _, d := range domain.AllDomains {
		if result.User.Permissions[d] != domain.PermReadWriteDelete {
			t.Errorf("permission %s = %q, want %q", d, result.User.Permissions[d], domain.PermReadWriteDelete)
		}
	}

	// Second signup refused
	if _, err := svc.SignupAdmin(ctx, "admin2", "secret123"); !errors.Is(err, domain.ErrAdminExists) {
		t.Fatalf("second signup err = %v, want ErrAdminExists", err)
	}
}

func TestLoginSuccessIsAudited(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newAuthService(db)
	ctx := context.Background()

	if _, err := svc.SignupAdmin(ctx, "admin", "secret123"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	result, err := svc.Login(ctx, &LoginInput{Username: "admin", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Error("no token returned")
	}

	claims, err := svc.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.UserID != result.User.ID {
		t.Errorf("claims user = %d, want %d", claims.UserID, result.User.ID)
	}

	if got := countLogs(t, db, models.LogTypeAuth); got != 1 {
		t.Errorf("auth logs = %d, want 1", got)
	}
}

func TestLoginFailureLeavesNoLog(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newAuthService(db)
	ctx := context.Background()

	if _, err := svc.SignupAdmin(ctx, "admin", "secret123"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, err := svc.Login(ctx, &LoginInput{Username: "admin", Password: "wrong"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("bad password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, &LoginInput{Username: "nobody", Password: "secret123"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user err = %v, want ErrInvalidCredentials", err)
	}

	if got := countLogs(t, db, models.LogTypeAuth); got != 0 {
		t.Errorf("auth logs = %d, want 0 (failures are not logged)", got)
	}
}

func TestCreateUserValidation(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newAuthService(db)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &CreateUserInput{
		Username:    "bob",
		Password:    "secret123",
		Role:        domain.RoleUser,
		Permissions: domain.DefaultPermissions(),
	}, "admin")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Name != "Guest" {
		t.Errorf("name = %q, want Guest fallback", user.Name)
	}

	// Duplicate username
	_, err = svc.CreateUser(ctx, &CreateUserInput{
		Username:    "bob",
		Password:    "other",
		Role:        domain.RoleUser,
		Permissions: domain.DefaultPermissions(),
	}, "admin")
	if !errors.Is(err, domain.ErrUserAlreadyExists) {
		t.Fatalf("duplicate err = %v, want ErrUserAlreadyExists", err)
	}

	// Bad permission value
	_, err = svc.CreateUser(ctx, &CreateUserInput{
		Username:    "carol",
		Password:    "secret123",
		Role:        domain.RoleUser,
		Permissions: domain.PermissionMap{domain.DomainItems: "ADMIN"},
	}, "admin")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("bad permission err = %v, want ErrInvalidInput", err)
	}

	// Admin role overrides the supplied map
	adminUser, err := svc.CreateUser(ctx, &CreateUserInput{
		Username:    "dave",
		Password:    "secret123",
		Role:        domain.RoleAdmin,
		Permissions: domain.PermissionMap{domain.DomainItems: domain.PermUnauthorized},
	}, "admin")
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	if adminUser.Permissions[domain.DomainItems] != domain.PermReadWriteDelete {
		t.Errorf("admin permissions not forced to full: %v", adminUser.Permissions)
	}
}

func TestUpdateUser(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newAuthService(db)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, &CreateUserInput{
		Username:    "bob",
		Password:    "secret123",
		Role:        domain.RoleUser,
		Permissions: domain.DefaultPermissions(),
	}, "admin"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if _, err := svc.UpdateUser(ctx, &UpdateUserInput{Username: "bob"}); !errors.Is(err, domain.ErrNothingToUpdate) {
		t.Fatalf("empty update err = %v, want ErrNothingToUpdate", err)
	}

	if _, err := svc.UpdateUser(ctx, &UpdateUserInput{Username: "ghost", Role: domain.RoleUser}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("unknown user err = %v, want ErrUserNotFound", err)
	}

	perms := domain.DefaultPermissions()
	perms[domain.DomainItems] = domain.PermReadWriteDelete
	updated, err := svc.UpdateUser(ctx, &UpdateUserInput{Username: "bob", Password: "newpass456", Permissions: perms})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Permissions[domain.DomainItems] != domain.PermReadWriteDelete {
		t.Errorf("permissions not updated: %v", updated.Permissions)
	}

	// New password usable, old one rejected
	if _, err := svc.Login(ctx, &LoginInput{Username: "bob", Password: "newpass456"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, err := svc.Login(ctx, &LoginInput{Username: "bob", Password: "secret123"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password err = %v, want ErrInvalidCredentials", err)
	}
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newAuthService(db)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, &CreateUserInput{
		Username:    "bob",
		Password:    "secret123",
		Role:        domain.RoleUser,
		Permissions: domain.DefaultPermissions(),
	}, "admin")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	deleted, err := svc.DeleteUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.Username != "bob" {
		t.Errorf("deleted username = %q, want bob", deleted.Username)
	}

	if _, err := svc.DeleteUser(ctx, user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("second delete err = %v, want ErrUserNotFound", err)
	}
}
