package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"billbook/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	Count(ctx context.Context) (int64, error)
	ListAll(ctx context.Context) ([]db_models.User, error)
	Update(ctx context.Context, user *db_models.User) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (u *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *userRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (u *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := u.db.WithContext(ctx).Model(&db_models.User{}).Count(&count).Error
	return count, err
}

func (u *userRepository) ListAll(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	err := u.db.WithContext(ctx).
		Order("is_approved asc, created_at desc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (u *userRepository) Update(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Save(user).Error
}

// DeleteCascade removes the user together with their template and bills.
func (u *userRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Where("user_id = ?", id).Delete(&db_models.Bill{}).Error; err != nil {
			return err
		}
		if err := tx.WithContext(ctx).Where("user_id = ?", id).Delete(&db_models.Template{}).Error; err != nil {
			return err
		}
		return tx.WithContext(ctx).Delete(&db_models.User{}, "id = ?", id).Error
	})
}
