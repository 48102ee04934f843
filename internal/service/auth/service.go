package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/stitchline/garment-erp-go/internal/domain/auth"
	"github.com/stitchline/garment-erp-go/internal/domain/employee"
	"github.com/stitchline/garment-erp-go/internal/domain/user"
	"github.com/stitchline/garment-erp-go/internal/pkg/database"
	"github.com/stitchline/garment-erp-go/internal/pkg/jwt"
	"github.com/stitchline/garment-erp-go/internal/repository/postgresql"
)

type AuthService interface {
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	Logout(ctx context.Context, accessToken string)
	CreateAccount(ctx context.Context, req auth.CreateAccountRequest) (auth.AccountResponse, error)
	ChangePassword(ctx context.Context, userID string, req auth.ChangePasswordRequest) error
}

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
) AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepo,
		employeeRepo:   employeeRepo,
		jwtService:     jwtService,
	}
}

// Login implements AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.IsAdmin)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
	}, nil
}

// Logout implements AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, accessToken string) {
	s.jwtService.RevokeToken(accessToken)
}

// CreateAccount implements AuthService.
// When an employee id is given the account is tied to that employee row.
func (s *AuthServiceImpl) CreateAccount(ctx context.Context, req auth.CreateAccountRequest) (auth.AccountResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccountResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AccountResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		if req.EmployeeID != nil && *req.EmployeeID != "" {
			if _, err := s.employeeRepo.GetByID(txCtx, *req.EmployeeID); err != nil {
				return err
			}
		}

		created, err = s.UserRepository.Create(txCtx, user.User{
			EmployeeID:   req.EmployeeID,
			Email:        req.Email,
			PasswordHash: string(hash),
			IsAdmin:      req.IsAdmin,
		})
		return err
	})
	if err != nil {
		return auth.AccountResponse{}, err
	}

	return auth.AccountResponse{
		ID:         created.ID,
		EmployeeID: created.EmployeeID,
		Email:      created.Email,
		IsAdmin:    created.IsAdmin,
	}, nil
}

// ChangePassword implements AuthService.
// The old password is verified before the new hash is written.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID string, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.OldPassword)); err != nil {
		return auth.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.UserRepository.UpdatePassword(ctx, userID, string(hash))
}
