package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"cafe/internal/core/model"
	"cafe/internal/core/repository"
)

func newTestAuthService(repo repository.UserRepository) AuthService {
	svc := NewAuthService(repo, NewRolePolicy([]string{"admin@gmail.com"})).(*authService)
	svc.hashCost = bcrypt.MinCost
	return svc
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(repository.NewInMemoryUserRepository())

	user, err := svc.Signup(ctx, "Ann", "ann@cafe.test", "secret")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if user.Role != model.RoleUser {
		t.Errorf("new user role = %q, want %q", user.Role, model.RoleUser)
	}
	if user.Password == "secret" {
		t.Error("password stored in plaintext")
	}

	tests := []struct {
		name, userName, password string
	}{
		{"same fields", "Ann", "secret"},
		{"different name and password", "Someone Else", "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, tt.userName, "ann@cafe.test", tt.password)
			if !errors.Is(err, ErrUserExists) {
				t.Errorf("second Signup error = %v, want ErrUserExists", err)
			}
		})
	}
}

func TestSignupRequiresFields(t *testing.T) {
	svc := newTestAuthService(repository.NewInMemoryUserRepository())
	_, err := svc.Signup(context.Background(), "", "x@cafe.test", "pw")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Signup without name error = %v, want ErrValidation", err)
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(repository.NewInMemoryUserRepository())
	if _, err := svc.Signup(ctx, "Ann", "ann@cafe.test", "secret"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	user, err := svc.Login(ctx, "ann@cafe.test", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Name != "Ann" || user.Role != model.RoleUser {
		t.Errorf("Login returned %+v", user)
	}

	for _, tt := range []struct{ email, password string }{
		{"ann@cafe.test", "wrong"},
		{"nobody@cafe.test", "secret"},
		{"", ""},
	} {
		if _, err := svc.Login(ctx, tt.email, tt.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q) error = %v, want ErrInvalidCredentials", tt.email, tt.password, err)
		}
	}
}

func TestLoginPromotesAdminEmail(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInMemoryUserRepository()
	svc := newTestAuthService(repo)

	if _, err := svc.Signup(ctx, "Owner", "admin@gmail.com", "root"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	stored, _ := repo.FindByEmail(ctx, "admin@gmail.com")
	if stored.Role != model.RoleUser {
		t.Fatalf("role before login = %q, want user", stored.Role)
	}

	for i := 0; i < 2; i++ {
		user, err := svc.Login(ctx, "admin@gmail.com", "root")
		if err != nil {
			t.Fatalf("Login #%d: %v", i+1, err)
		}
		if user.Role != model.RoleAdmin {
			t.Errorf("Login #%d role = %q, want admin", i+1, user.Role)
		}
		stored, _ = repo.FindByEmail(ctx, "admin@gmail.com")
		if stored.Role != model.RoleAdmin {
			t.Errorf("after login #%d stored role = %q, want admin", i+1, stored.Role)
		}
	}
}

func TestLoginUpgradesPlaintextPassword(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInMemoryUserRepository()
	svc := newTestAuthService(repo)

	legacy := model.NewUser("Old", "old@cafe.test", "plain-pw")
	if err := repo.Create(ctx, legacy); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Login(ctx, "old@cafe.test", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong plaintext password error = %v", err)
	}
	if _, err := svc.Login(ctx, "old@cafe.test", "plain-pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	stored, _ := repo.FindByEmail(ctx, "old@cafe.test")
	if !isBcryptHash(stored.Password) {
		t.Fatalf("password not rehashed: %q", stored.Password)
	}
	if _, err := svc.Login(ctx, "old@cafe.test", "plain-pw"); err != nil {
		t.Errorf("Login after rehash: %v", err)
	}
}

func TestRolePolicy(t *testing.T) {
	p := NewRolePolicy([]string{" admin@gmail.com ", ""})
	if role, ok := p.RoleFor("admin@gmail.com"); !ok || role != model.RoleAdmin {
		t.Errorf("RoleFor(admin) = %q, %v", role, ok)
	}
	if _, ok := p.RoleFor("Admin@gmail.com"); ok {
		t.Error("policy match should be case-sensitive")
	}
	if _, ok := p.RoleFor(""); ok {
		t.Error("empty email must not match")
	}
	var nilPolicy *RolePolicy
	if _, ok := nilPolicy.RoleFor("admin@gmail.com"); ok {
		t.Error("nil policy should not grant roles")
	}
}
