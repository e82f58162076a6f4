package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"billbook/internal/models/db_models"
)

type TemplateRepository interface {
	Insert(ctx context.Context, template *db_models.Template) error
	Update(ctx context.Context, template *db_models.Template) error
	FindByUser(ctx context.Context, userID uuid.UUID) (*db_models.Template, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Template, error)
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{
		db: db,
	}
}

func (t *templateRepository) Insert(ctx context.Context, template *db_models.Template) error {
	return t.db.WithContext(ctx).Create(template).Error
}

func (t *templateRepository) Update(ctx context.Context, template *db_models.Template) error {
	return t.db.WithContext(ctx).Save(template).Error
}

// FindByUser returns the user's current template, newest first when
// multiple rows exist.
func (t *templateRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*db_models.Template, error) {
	var template db_models.Template
	err := t.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&template).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &template, nil
}

func (t *templateRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Template, error) {
	var template db_models.Template
	err := t.db.WithContext(ctx).First(&template, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &template, nil
}
