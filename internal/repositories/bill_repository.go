package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"billbook/internal/models/db_models"
)

type BillRepository interface {
	Insert(ctx context.Context, bill *db_models.Bill) error
	FindByIdAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*db_models.Bill, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Bill, error)
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Bill, error)
	LastBillNumber(ctx context.Context, userID uuid.UUID) (string, error)
}

type billRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{
		db: db,
	}
}

func (b *billRepository) Insert(ctx context.Context, bill *db_models.Bill) error {
	return b.db.WithContext(ctx).Create(bill).Error
}

func (b *billRepository) FindByIdAndUser(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*db_models.Bill, error) {
	var bill db_models.Bill
	err := b.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&bill).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &bill, nil
}

func (b *billRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Bill, error) {
	var bills []db_models.Bill
	err := b.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}

func (b *billRepository) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Bill, error) {
	var bills []db_models.Bill
	err := b.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}

// LastBillNumber returns the number of the most recently created bill for
// the user, or "" when none exists. Reading the last number and inserting
// the next bill are separate steps with no reservation in between.
func (b *billRepository) LastBillNumber(ctx context.Context, userID uuid.UUID) (string, error) {
	var bill db_models.Bill
	err := b.db.WithContext(ctx).
		Select("bill_number").
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&bill).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}

	return bill.BillNumber, nil
}
