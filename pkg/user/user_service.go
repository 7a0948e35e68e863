package user

import (
	"Nutrition-Density-Backend/domain"
	"Nutrition-Density-Backend/entities"
	"Nutrition-Density-Backend/internal/utils"
	"Nutrition-Density-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		VerifyToken(token string) (string, bool)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if len(req.Password) > domain.MaxPasswordBytes {
		return domain.RegisterResponse{}, domain.ErrPasswordTooLong
	}

	exists, err := s.userRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if exists {
		return domain.RegisterResponse{}, domain.ErrDuplicateUsername
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return domain.RegisterResponse{}, fmt.Errorf("%w: %v", domain.ErrHashPassword, err)
	}

	user := &entities.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: hashed,
	}

	// the unique index still guards a concurrent registration of the same name
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{Message: domain.MessageSuccessRegister}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateTokenUser(user.Username)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{
		AccessToken: token,
		TokenType:   domain.TokenTypeBearer,
	}, nil
}

// VerifyToken reports the token's username. Invalid or expired tokens yield
// ("", false) rather than an error.
func (s *userService) VerifyToken(token string) (string, bool) {
	username, err := s.jwtService.GetUsernameByToken(token)
	if err != nil {
		return "", false
	}
	return username, true
}
