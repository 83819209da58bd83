package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sirajbinsyed/silverstar-server-local/internal/apperr"
	"github.com/sirajbinsyed/silverstar-server-local/internal/core"
)

const minPasswordLength = 6

var (
	ErrInvalidCredentials = apperr.Unauthorized("Invalid credentials")
	ErrEmailExists        = apperr.Invalid("Email already exists")
)

type Service struct {
	repo   UserRepository
	tokens *TokenManager
	log    *zap.Logger
}

func NewService(repo UserRepository, tokens *TokenManager, log *zap.Logger) *Service {
	return &Service{repo: repo, tokens: tokens, log: log}
}

// CREATE (seed + admin bootstrap)
func (s *Service) CreateUser(ctx context.Context, email, password, role string) (*User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperr.Invalid("Email and password are required")
	}
	if len(password) < minPasswordLength {
		return nil, apperr.Invalid("Password must be at least 6 characters")
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Server(err)
	}

	user := &User{
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// LOGIN returns the user together with a signed access token.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", apperr.Invalid("Please provide email and password")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.log.Info("login rejected", zap.String("email", email))
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, "", apperr.Server(err)
	}
	return user, token, nil
}

func (s *Service) Me(ctx context.Context, userID string) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *Service) ChangePassword(ctx context.Context, userID, current, next string) error {
	if current == "" || next == "" {
		return apperr.Invalid("Current password and new password are required")
	}
	if len(next) < minPasswordLength {
		return apperr.Invalid("New password must be at least 6 characters")
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return apperr.Invalid("Current password is incorrect")
		}
		return apperr.Server(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Server(err)
	}
	return s.repo.UpdatePassword(ctx, userID, string(hash))
}

// FindUserRef exposes the owning admin of a restaurant.
func (s *Service) FindUserRef(ctx context.Context, id string) (*core.UserRef, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &core.UserRef{ID: user.ID.Hex(), Email: user.Email, Role: user.Role}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
