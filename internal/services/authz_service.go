package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"billbook/internal/repositories"
	mem "billbook/pkg/memcache"
	"billbook/pkg/utils"
)

type AuthLevel int

const (
	LevelUnauthenticated AuthLevel = iota
	LevelUnapproved
	LevelAuthenticated
)

// AuthDecision is the tagged result the routing layer consumes before
// dispatching a protected operation.
type AuthDecision struct {
	Level     AuthLevel
	UserID    uuid.UUID
	IsAdmin   bool
	SessionID string
}

type AuthzServiceInterface interface {
	Authorize(ctx context.Context, token string) AuthDecision
}

type AuthzService struct {
	userRepo repositories.UserRepository
	sessions mem.SessionRevoker
	logger   *zap.Logger
}

func NewAuthzService(userRepo repositories.UserRepository, sessions mem.SessionRevoker, logger *zap.Logger) AuthzServiceInterface {
	return &AuthzService{
		userRepo: userRepo,
		sessions: sessions,
		logger:   logger,
	}
}

// Authorize resolves a bearer token to an authorization level. The user
// record is re-read on every call so approval and deactivation take
// effect mid-session; a deactivated user's session is revoked on sight.
func (a *AuthzService) Authorize(ctx context.Context, token string) AuthDecision {
	unauthenticated := AuthDecision{Level: LevelUnauthenticated}

	if token == "" {
		return unauthenticated
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		return unauthenticated
	}

	if a.sessions.IsRevoked(claims.ID) {
		return unauthenticated
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return unauthenticated
	}

	user, err := a.userRepo.FindById(ctx, userID)
	if err != nil || user == nil {
		return unauthenticated
	}

	if !user.IsActive {
		ttl := utils.TokenTTL
		if claims.ExpiresAt != nil {
			ttl = time.Until(claims.ExpiresAt.Time)
		}
		a.sessions.Revoke(claims.ID, ttl)
		a.logger.Info("destroyed session of deactivated user",
			zap.String("user_id", user.ID.String()))
		return unauthenticated
	}

	decision := AuthDecision{
		UserID:    user.ID,
		IsAdmin:   user.IsAdmin,
		SessionID: claims.ID,
	}

	if !user.IsApproved && !user.IsAdmin {
		decision.Level = LevelUnapproved
		return decision
	}

	decision.Level = LevelAuthenticated
	return decision
}
