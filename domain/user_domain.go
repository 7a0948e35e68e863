package domain

import "errors"

var (
	MessageSuccessRegister = "User registered successfully"

	MessageFailedRegister     = "Username already exists"
	MessageFailedLogin        = "Invalid credentials"
	MessageFailedValidateUser = "invalid username or password"

	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrHashPassword       = errors.New("failed to hash password")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)

// MaxPasswordBytes is the bcrypt input limit; the validator's max counts runes.
const MaxPasswordBytes = 72

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=64"`
		Password string `json:"password" validate:"required,min=6,max=72"`
	}

	RegisterResponse struct {
		Message string `json:"message"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
)
