package services

import (
	"context"

	"go.uber.org/zap"

	"billbook/internal/gst"
	"billbook/internal/models/db_models"
	"billbook/internal/models/request_models"
	"billbook/internal/models/response_models"
	"billbook/internal/repositories"
	mem "billbook/pkg/memcache"
	"billbook/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	Logout(sessionID string)
}

type AccountService struct {
	userRepo repositories.UserRepository
	sessions mem.SessionRevoker
	logger   *zap.Logger
}

func NewAccountService(userRepo repositories.UserRepository, sessions mem.SessionRevoker, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		sessions: sessions,
		logger:   logger,
	}
}

// Register creates a pending account. The very first account ever created
// becomes the bootstrap admin and is approved immediately; everyone else
// waits for admin approval.
func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) error {
	if request.Password != request.ConfirmPassword {
		return utils.ErrPasswordMismatch
	}

	if request.GSTNumber != "" && !gst.Validate(request.GSTNumber) {
		return utils.ErrInvalidGSTNumber
	}

	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	count, err := a.userRepo.Count(ctx)
	if err != nil {
		return utils.ErrDatabaseError
	}
	isFirst := count == 0

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newUser := &db_models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		BusinessName: request.BusinessName,
		Mobile:       request.Mobile,
		IsAdmin:      isFirst,
		IsApproved:   isFirst,
		IsActive:     true,
	}

	if err := a.userRepo.Insert(ctx, newUser); err != nil {
		return utils.ErrDatabaseError
	}

	a.logger.Info("user registered",
		zap.String("email", request.Email),
		zap.Bool("bootstrap_admin", isFirst))

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, utils.ErrAccountInactive
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, sessionID, err := utils.CreateToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	a.logger.Info("user logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("session_id", sessionID))

	return &response_models.LoginResponse{
		Token: token,
		// Admins always count as approved.
		IsApproved: user.IsApproved || user.IsAdmin,
		IsAdmin:    user.IsAdmin,
	}, nil
}

func (a *AccountService) Logout(sessionID string) {
	if sessionID == "" {
		return
	}
	a.sessions.Revoke(sessionID, utils.TokenTTL)
}
