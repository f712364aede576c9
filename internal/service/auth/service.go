package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jezdibolt/backend-go/internal/domain/auth"
	"github.com/jezdibolt/backend-go/internal/domain/user"
	"github.com/jezdibolt/backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.Repository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.Repository, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{userRepo: userRepo, jwtService: jwtService}
}

// Login verifies the credentials and issues tokens. A missing account
// and a wrong password both map to ErrInvalidCredentials so the
// response never leaks which one it was.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	account, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, user.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, user.ErrInvalidCredentials
	}

	permissions := auth.PermissionsForRole(account.Role)

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(account.ID, account.Email, account.Role, permissions)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExp,
		User: auth.UserInfo{
			ID:          account.ID,
			Name:        account.Name,
			Email:       account.Email,
			Role:        string(account.Role),
			Permissions: permissions,
		},
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
	}, nil
}
