package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"cafe/internal/core/model"
	"cafe/internal/core/repository"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type signupInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type authService struct {
	userRepo repository.UserRepository
	policy   *RolePolicy
	validate *validator.Validate
	hashCost int
}

func NewAuthService(userRepo repository.UserRepository, policy *RolePolicy) AuthService {
	return &authService{
		userRepo: userRepo,
		policy:   policy,
		validate: validator.New(),
		hashCost: bcrypt.DefaultCost,
	}
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (*model.User, error) {
	if err := s.validate.Struct(signupInput{Name: name, Email: email, Password: password}); err != nil {
		return nil, errors.Wrap(ErrValidation, err.Error())
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "find user by email")
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := model.NewUser(name, email, string(hash))
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUserExists
		}
		return nil, errors.Wrap(err, "create user")
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "find user by email")
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	ok, legacy := checkPassword(user.Password, password)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	dirty := false
	if legacy {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
		if err != nil {
			return nil, errors.Wrap(err, "hash password")
		}
		user.Password = string(hash)
		dirty = true
	}
	if role, ok := s.policy.RoleFor(user.Email); ok && user.Role != role {
		user.Role = role
		dirty = true
		zap.L().Info("granted role by policy", zap.String("email", user.Email), zap.String("role", role))
	}

	if dirty {
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, errors.Wrap(err, "update user")
		}
	}
	return user, nil
}

// checkPassword compares provided against the stored value. Accounts created
// before hashing was introduced hold the plaintext password; legacy reports
// that case so the caller can upgrade the record.
func checkPassword(stored, provided string) (ok, legacy bool) {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(provided)) == nil, false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(provided)) == 1, true
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}
