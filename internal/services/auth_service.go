package services

import (
	"context"

	"github.com/google/uuid"

	"arogya/internal/models/db_models"
	"arogya/internal/models/request_models"
	"arogya/internal/repositories"
	"arogya/pkg/middleware"
	"arogya/pkg/utils"
)

// GuestEmail is the shared guest identity, created on first guest login.
const GuestEmail = "guest@arogyamitra.local"

type AuthServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (string, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	GuestLogin(ctx context.Context) (string, error)
	ResolveUser(ctx context.Context, userID string) (*middleware.AuthUser, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthServiceInterface {
	return &AuthService{userRepo: userRepo}
}

func (a *AuthService) Register(ctx context.Context, request request_models.SignUpRequest) (string, error) {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if existing != nil {
		return "", utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	user := &db_models.User{
		Email:        request.Email,
		PasswordHash: hashed,
		FullName:     request.FullName,
		IsActive:     true,
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		return "", utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return token, nil
}

// Login never distinguishes an unknown email from a wrong password.
func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", utils.ErrInactiveAccount
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

// GuestLogin reuses the shared guest identity; repeated calls never
// create duplicates.
func (a *AuthService) GuestLogin(ctx context.Context) (string, error) {
	user, err := a.userRepo.FindByEmail(ctx, GuestEmail)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		hashed, err := utils.HashPassword("guest-placeholder-no-login")
		if err != nil {
			return "", utils.ErrDatabaseError
		}
		user = &db_models.User{
			Email:        GuestEmail,
			PasswordHash: hashed,
			FullName:     "Guest",
			IsActive:     true,
		}
		if err := a.userRepo.Insert(ctx, user); err != nil {
			return "", utils.ErrDatabaseError
		}
	}
	if !user.IsActive {
		return "", utils.ErrInactiveAccount
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return token, nil
}

func (a *AuthService) ResolveUser(ctx context.Context, userID string) (*middleware.AuthUser, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, utils.ErrUserNotFound
	}
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return &middleware.AuthUser{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		IsActive: user.IsActive,
		IsAdmin:  user.IsAdmin,
	}, nil
}
