package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"billbook/internal/models/db_models"
	"billbook/internal/models/request_models"
	"billbook/pkg/utils"
)

func billFixture() (uuid.UUID, *fakeBillRepo, *fakeTemplateRepo, BillServiceInterface) {
	userID := uuid.New()
	billRepo := &fakeBillRepo{}
	templateRepo := newFakeTemplateRepo()
	svc := NewBillService(billRepo, templateRepo, zap.NewNop())
	return userID, billRepo, templateRepo, svc
}

func seedTemplate(templateRepo *fakeTemplateRepo, userID uuid.UUID) *db_models.Template {
	template := &db_models.Template{
		UserID:       userID,
		BusinessName: "Asha Traders",
	}
	_ = templateRepo.Insert(context.Background(), template)
	return template
}

func TestCreateBill(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a template", func(t *testing.T) {
		userID, _, _, svc := billFixture()
		_, err := svc.Create(ctx, userID, request_models.BillCreateRequest{CustomerName: "Ravi"})
		assert.ErrorIs(t, err, utils.ErrTemplateNotFound)
	})

	t.Run("computes totals and numbers sequentially", func(t *testing.T) {
		userID, _, templateRepo, svc := billFixture()
		template := seedTemplate(templateRepo, userID)

		first, err := svc.Create(ctx, userID, request_models.BillCreateRequest{
			CustomerName: "Ravi",
			Items: []request_models.BillItemInput{
				{Name: "Widget", Quantity: "3", Rate: "2.5"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "INV-0001", first.BillNumber)
		assert.InDelta(t, 7.5, first.Subtotal, 0.001)
		assert.InDelta(t, 0.0, first.GSTAmount, 0.001)
		assert.InDelta(t, 7.5, first.Total, 0.001)
		require.NotNil(t, first.Template)
		assert.Equal(t, template.ID.String(), first.Template.ID)

		second, err := svc.Create(ctx, userID, request_models.BillCreateRequest{
			CustomerName:  "Meena",
			GSTEnabled:    true,
			GSTPercentage: 18,
			Items: []request_models.BillItemInput{
				{Name: "Service", Quantity: "1", Rate: "100"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "INV-0002", second.BillNumber)
		assert.InDelta(t, 100.0, second.Subtotal, 0.001)
		assert.InDelta(t, 18.0, second.GSTAmount, 0.001)
		assert.InDelta(t, 118.0, second.Total, 0.001)
	})

	t.Run("numbering is independent per user", func(t *testing.T) {
		userID, _, templateRepo, svc := billFixture()
		seedTemplate(templateRepo, userID)

		otherUser := uuid.New()
		seedTemplate(templateRepo, otherUser)

		mine, err := svc.Create(ctx, userID, request_models.BillCreateRequest{CustomerName: "A"})
		require.NoError(t, err)
		theirs, err := svc.Create(ctx, otherUser, request_models.BillCreateRequest{CustomerName: "B"})
		require.NoError(t, err)

		assert.Equal(t, "INV-0001", mine.BillNumber)
		assert.Equal(t, "INV-0001", theirs.BillNumber)
	})

	t.Run("malformed rows are skipped not fatal", func(t *testing.T) {
		userID, _, templateRepo, svc := billFixture()
		seedTemplate(templateRepo, userID)

		bill, err := svc.Create(ctx, userID, request_models.BillCreateRequest{
			CustomerName:  "Ravi",
			GSTEnabled:    true,
			GSTPercentage: 18,
			Items: []request_models.BillItemInput{
				{Name: "X", Quantity: "abc", Rate: "1"},
			},
		})
		require.NoError(t, err)
		assert.Empty(t, bill.Items)
		assert.InDelta(t, 0.0, bill.Subtotal, 0.001)
		assert.InDelta(t, 0.0, bill.Total, 0.001)
	})

	t.Run("bill date defaults to today", func(t *testing.T) {
		userID, _, templateRepo, svc := billFixture()
		seedTemplate(templateRepo, userID)

		bill, err := svc.Create(ctx, userID, request_models.BillCreateRequest{CustomerName: "Ravi"})
		require.NoError(t, err)
		assert.NotEmpty(t, bill.BillDate)
	})
}

func TestGetBill(t *testing.T) {
	ctx := context.Background()
	userID, _, templateRepo, svc := billFixture()
	seedTemplate(templateRepo, userID)

	created, err := svc.Create(ctx, userID, request_models.BillCreateRequest{
		CustomerName: "Ravi",
		Items: []request_models.BillItemInput{
			{Name: "Widget", Quantity: "2", Rate: "10"},
		},
	})
	require.NoError(t, err)
	billID := uuid.MustParse(created.ID)

	t.Run("owner can fetch with items", func(t *testing.T) {
		bill, err := svc.GetById(ctx, userID, billID)
		require.NoError(t, err)
		require.Len(t, bill.Items, 1)
		assert.Equal(t, "Widget", bill.Items[0].Name)
		assert.InDelta(t, 20.0, bill.Items[0].Amount, 0.001)
	})

	t.Run("other users get not found", func(t *testing.T) {
		_, err := svc.GetById(ctx, uuid.New(), billID)
		assert.ErrorIs(t, err, utils.ErrBillNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetById(ctx, userID, uuid.New())
		assert.ErrorIs(t, err, utils.ErrBillNotFound)
	})
}

func TestHistoryAndDashboard(t *testing.T) {
	ctx := context.Background()
	userID, _, templateRepo, svc := billFixture()
	seedTemplate(templateRepo, userID)

	for i := 0; i < 7; i++ {
		_, err := svc.Create(ctx, userID, request_models.BillCreateRequest{CustomerName: "C"})
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, history, 7)
	assert.Equal(t, "INV-0007", history[0].BillNumber) // newest first

	dashboard, err := svc.Dashboard(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, dashboard.Template)
	assert.Len(t, dashboard.RecentBills, 5)
}
