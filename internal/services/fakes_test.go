package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"billbook/internal/models/db_models"
)

// In-memory repository fakes; no database in service tests.

type fakeUserRepo struct {
	users map[uuid.UUID]*db_models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*db_models.User)}
}

func (f *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now().Unix()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) ListAll(_ context.Context) ([]db_models.User, error) {
	users := make([]db_models.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, *user)
	}
	return users, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *db_models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) DeleteCascade(_ context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

type fakeTemplateRepo struct {
	templates map[uuid.UUID]*db_models.Template // keyed by user id
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[uuid.UUID]*db_models.Template)}
}

func (f *fakeTemplateRepo) Insert(_ context.Context, template *db_models.Template) error {
	if template.ID == uuid.Nil {
		template.ID = uuid.New()
	}
	f.templates[template.UserID] = template
	return nil
}

func (f *fakeTemplateRepo) Update(_ context.Context, template *db_models.Template) error {
	f.templates[template.UserID] = template
	return nil
}

func (f *fakeTemplateRepo) FindByUser(_ context.Context, userID uuid.UUID) (*db_models.Template, error) {
	template, ok := f.templates[userID]
	if !ok {
		return nil, nil
	}
	return template, nil
}

func (f *fakeTemplateRepo) FindById(_ context.Context, id uuid.UUID) (*db_models.Template, error) {
	for _, template := range f.templates {
		if template.ID == id {
			return template, nil
		}
	}
	return nil, nil
}

type fakeBillRepo struct {
	bills []*db_models.Bill
}

func (f *fakeBillRepo) Insert(_ context.Context, bill *db_models.Bill) error {
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	bill.CreatedAt = time.Now().Unix()
	f.bills = append(f.bills, bill)
	return nil
}

func (f *fakeBillRepo) FindByIdAndUser(_ context.Context, id uuid.UUID, userID uuid.UUID) (*db_models.Bill, error) {
	for _, bill := range f.bills {
		if bill.ID == id && bill.UserID == userID {
			return bill, nil
		}
	}
	return nil, nil
}

func (f *fakeBillRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]db_models.Bill, error) {
	var out []db_models.Bill
	for i := len(f.bills) - 1; i >= 0; i-- {
		if f.bills[i].UserID == userID {
			out = append(out, *f.bills[i])
		}
	}
	return out, nil
}

func (f *fakeBillRepo) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Bill, error) {
	bills, err := f.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(bills) > limit {
		bills = bills[:limit]
	}
	return bills, nil
}

func (f *fakeBillRepo) LastBillNumber(_ context.Context, userID uuid.UUID) (string, error) {
	for i := len(f.bills) - 1; i >= 0; i-- {
		if f.bills[i].UserID == userID {
			return f.bills[i].BillNumber, nil
		}
	}
	return "", nil
}

type fakeAssetStore struct {
	saved []string
}

func (f *fakeAssetStore) Save(prefix string, file *multipart.FileHeader) (string, error) {
	name := prefix + "_" + uuid.New().String() + ".png"
	f.saved = append(f.saved, name)
	return name, nil
}

func (f *fakeAssetStore) Path(filename string) (string, error) {
	return filename, nil
}
