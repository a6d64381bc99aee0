package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rcabral/shortly/internal/auth"
	"go.uber.org/zap"
)

// UserHandler handles registration, login, and password changes.
type UserHandler struct {
	creds  CredentialStore
	tokens TokenIssuer
	logger *zap.Logger
}

// NewUserHandler creates a user handler.
func NewUserHandler(creds CredentialStore, tokens TokenIssuer, logger *zap.Logger) *UserHandler {
	return &UserHandler{creds: creds, tokens: tokens, logger: logger}
}

// RegisterUser creates an account. An absent role defaults to regular; a
// present-but-blank role is rejected.
func (h *UserHandler) RegisterUser(ctx context.Context, req *RegisterUserRequest) (*RegisterUserResponse, error) {
	if req.Body.Username == "" {
		return nil, huma.Error400BadRequest("username is required")
	}

	if req.Body.Password == "" {
		return nil, huma.Error400BadRequest("password is required")
	}

	role := auth.RoleRegular
	if req.Body.Role != nil {
		if strings.TrimSpace(*req.Body.Role) == "" {
			return nil, huma.Error400BadRequest("role is required")
		}

		role = auth.Role(*req.Body.Role)
	}

	err := h.creds.Register(ctx, req.Body.Username, req.Body.Password, role)

	switch {
	case errors.Is(err, auth.ErrInvalidUsername),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrInvalidRole):
		return nil, huma.Error400BadRequest(err.Error())
	case errors.Is(err, auth.ErrUsernameTaken):
		return nil, huma.Error409Conflict(err.Error())
	case err != nil:
		h.logger.Error("failed to register user", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to register user")
	}

	return &RegisterUserResponse{}, nil
}

// Login verifies credentials and returns a signed bearer token.
func (h *UserHandler) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if req.Body.Username == "" {
		return nil, huma.Error400BadRequest("username is required")
	}

	if req.Body.Password == "" {
		return nil, huma.Error400BadRequest("password is required")
	}

	user, err := h.creds.VerifyLogin(ctx, req.Body.Username, req.Body.Password)

	switch {
	case errors.Is(err, auth.ErrUnknownUser):
		return nil, huma.Error403Forbidden("user not found")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return nil, huma.Error403Forbidden("invalid credentials")
	case err != nil:
		h.logger.Error("failed to verify login", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to log in")
	}

	token, err := h.tokens.Issue(user.Username, user.Role)
	if err != nil {
		h.logger.Error("failed to issue token", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to issue token")
	}

	resp := &LoginResponse{}
	resp.Body.AccessToken = token

	return resp, nil
}

// ChangePassword rotates an account password. The route carries the
// authorization gate; the current password is still required as proof.
func (h *UserHandler) ChangePassword(ctx context.Context, req *ChangePasswordRequest) (*ChangePasswordResponse, error) {
	if req.Body.Username == "" {
		return nil, huma.Error400BadRequest("username is required")
	}

	if req.Body.OldPassword == "" {
		return nil, huma.Error400BadRequest("old password is required")
	}

	if req.Body.NewPassword == "" {
		return nil, huma.Error400BadRequest("new password is required")
	}

	err := h.creds.ChangePassword(ctx, req.Body.Username, req.Body.OldPassword, req.Body.NewPassword)

	switch {
	case errors.Is(err, auth.ErrWeakPassword):
		return nil, huma.Error400BadRequest(err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrUnknownUser):
		return nil, huma.Error403Forbidden("invalid credentials")
	case err != nil:
		h.logger.Error("failed to change password", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to change password")
	}

	return &ChangePasswordResponse{}, nil
}
