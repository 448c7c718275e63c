package usecase

import (
	"context"
	"fmt"
	"time"

	"movieverse/internal/data/entity"
	"movieverse/internal/data/repository"
	"movieverse/internal/dto/request"
	"movieverse/internal/dto/response"
	"movieverse/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Me(ctx context.Context, caller Caller) (*response.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	tokens *utils.TokenManager
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, tokens *utils.TokenManager, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	existing, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username already taken")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create account: %w", err)
	}

	token, expiresAt, err := s.tokens.IssueToken(user.ID)
	if err != nil {
		s.log.Error("Failed to issue token after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.AuthToResponse(user, token, expiresAt)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Same message for unknown email and wrong password so callers
	// cannot probe which accounts exist.
	if user == nil {
		s.log.Warn("Login attempt for unknown email", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid credentials")
	}

	token, expiresAt, err := s.tokens.IssueToken(user.ID)
	if err != nil {
		s.log.Error("Failed to issue token",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.AuthToResponse(user, token, expiresAt)
	return &resp, nil
}

func (s *authService) Me(ctx context.Context, caller Caller) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, caller.ID)
	if err != nil {
		s.log.Error("Failed to load caller", zap.Error(err), zap.String("user_id", caller.ID.String()))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
