package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rk-commerce/internal/data/entity"
	"rk-commerce/internal/data/repository"
	"rk-commerce/internal/dto/request"
	"rk-commerce/internal/dto/response"
	"rk-commerce/pkg/metrics"
	"rk-commerce/pkg/token"
	"rk-commerce/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error)
	// Verify resolves a bearer token to the user it was issued for.
	Verify(ctx context.Context, tokenString string) (*entity.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log.With(zap.String("service", "auth")),
	}
}

// Register checks the email is free and then inserts. The check and the
// insert are two round trips, so two concurrent registrations of the same
// email can both succeed.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, invalid(errs)
	}

	// 2. Cek email sudah terdaftar
	existingUser, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		s.log.Warn("Email already registered", zap.String("email", req.Email))
		return nil, conflict("Email already registered")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. Save user
	user := &entity.User{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUIDString(),
			CreatedAt: time.Now().UTC(),
		},
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Address:      req.Address,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	metrics.UsersRegistered.Inc()
	s.log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, invalid(errs)
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Unknown email and wrong password get the same answer.
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		metrics.RecordLogin(false)
		s.log.Warn("Invalid login attempt", zap.String("email", req.Email))
		return nil, unauthorized("Incorrect email or password")
	}

	accessToken, expiresAt, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	metrics.RecordLogin(true)
	s.log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.Time("token_expires_at", expiresAt))

	return &response.TokenResponse{
		AccessToken: accessToken,
		TokenType:   token.TokenType,
	}, nil
}

func (s *authService) Verify(ctx context.Context, tokenString string) (*entity.User, error) {
	email, err := s.tokens.Verify(tokenString)
	if err != nil {
		if errors.Is(err, token.ErrExpiredToken) {
			s.log.Debug("Expired token presented")
		} else {
			s.log.Debug("Invalid token presented", zap.Error(err))
		}
		return nil, unauthorized("Could not validate credentials")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("resolve token subject: %w", err)
	}
	if user == nil {
		s.log.Warn("Token subject no longer exists", zap.String("email", email))
		return nil, unauthorized("Could not validate credentials")
	}

	return user, nil
}
