package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jezdibolt/backend-go/internal/domain/auth"
	"github.com/jezdibolt/backend-go/internal/handler/http/response"
	"github.com/jezdibolt/backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.Service
}

func NewAuthHandler(jwtService jwt.Service, authService auth.Service) AuthHandler {
	return &AuthHandlerImpl{jwtService: jwtService, authService: authService}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	result, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(result.RefreshToken, result.RefreshExpiresAt))

	slog.Info("User logged in", "user_id", result.User.ID)
	response.Success(w, result)
}
