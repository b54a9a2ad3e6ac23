package domain

import (
	"errors"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login successful"
	MessageSuccessRefresh         = "session refreshed successfully"
	MessageSuccessLogout          = "logout successful"
	MessageSuccessGetMe           = "user retrieved successfully"
	MessageSuccessSendVerifyEmail = "verification email sent"
	MessageSuccessVerifyEmail     = "email verified successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedRefresh         = "failed to refresh session"
	MessageFailedLogout          = "failed to logout"
	MessageFailedGetMe           = "failed to retrieve user"
	MessageFailedSendVerifyEmail = "failed to send verification email"
	MessageFailedVerifyEmail     = "failed to verify email"

	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrCredentialsInvalid  = errors.New("invalid email or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrSessionNotFound     = errors.New("refresh session not found")
	ErrSessionExpired      = errors.New("refresh session expired")
	ErrUserAlreadyVerified = errors.New("user already verified")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		UserID       string `json:"user_id"`
		AccessToken  string `json:"access"`
		RefreshToken string `json:"refresh"`
		ExpiresIn    int64  `json:"expires_in"`
	}

	RefreshRequest struct {
		RefreshToken string `json:"refresh" validate:"required"`
	}

	LogoutRequest struct {
		RefreshToken string `json:"refresh" validate:"required"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	MeResponse struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		IsVerified bool   `json:"is_verified"`
	}
)
