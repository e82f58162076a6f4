package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"billbook/internal/models/db_models"
	"billbook/internal/models/response_models"
	"billbook/internal/repositories"
	"billbook/pkg/utils"
)

type AdminServiceInterface interface {
	ListUsers(ctx context.Context) ([]response_models.UserResponse, error)
	ApproveUser(ctx context.Context, userID uuid.UUID) error
	SetUserActive(ctx context.Context, userID uuid.UUID, active bool) error
	DeleteUser(ctx context.Context, adminID uuid.UUID, userID uuid.UUID) error
}

type AdminService struct {
	userRepo repositories.UserRepository
	logger   *zap.Logger
}

func NewAdminService(userRepo repositories.UserRepository, logger *zap.Logger) AdminServiceInterface {
	return &AdminService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (a *AdminService) ListUsers(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := a.userRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(&user))
	}
	return responses, nil
}

func (a *AdminService) ApproveUser(ctx context.Context, userID uuid.UUID) error {
	user, err := a.userRepo.FindById(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	user.IsApproved = true
	if err := a.userRepo.Update(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}

	a.logger.Info("user approved", zap.String("user_id", userID.String()))
	return nil
}

// SetUserActive toggles whether login succeeds; it does not touch the
// approval flag.
func (a *AdminService) SetUserActive(ctx context.Context, userID uuid.UUID, active bool) error {
	user, err := a.userRepo.FindById(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	user.IsActive = active
	if err := a.userRepo.Update(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}

	a.logger.Info("user active flag changed",
		zap.String("user_id", userID.String()),
		zap.Bool("active", active))
	return nil
}

// DeleteUser removes the user and all their templates and bills. There is
// no persisted "rejected" state; rejecting a registration is a delete.
func (a *AdminService) DeleteUser(ctx context.Context, adminID uuid.UUID, userID uuid.UUID) error {
	if adminID == userID {
		return utils.ErrSelfDelete
	}

	user, err := a.userRepo.FindById(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	if err := a.userRepo.DeleteCascade(ctx, userID); err != nil {
		return utils.ErrDatabaseError
	}

	a.logger.Info("user deleted",
		zap.String("user_id", userID.String()),
		zap.String("deleted_by", adminID.String()))
	return nil
}

func toUserResponse(user *db_models.User) response_models.UserResponse {
	return response_models.UserResponse{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		BusinessName: user.BusinessName,
		Mobile:       user.Mobile,
		IsAdmin:      user.IsAdmin,
		IsApproved:   user.IsApproved,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
	}
}
