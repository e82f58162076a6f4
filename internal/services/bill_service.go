package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"billbook/internal/billing"
	"billbook/internal/models/db_models"
	"billbook/internal/models/request_models"
	"billbook/internal/models/response_models"
	"billbook/internal/repositories"
	"billbook/pkg/utils"
)

const recentBillCount = 5

type BillServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, request request_models.BillCreateRequest) (*response_models.BillResponse, error)
	GetById(ctx context.Context, userID uuid.UUID, billID uuid.UUID) (*response_models.BillResponse, error)
	History(ctx context.Context, userID uuid.UUID) ([]response_models.BillSummary, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*response_models.DashboardResponse, error)
}

type BillService struct {
	billRepo     repositories.BillRepository
	templateRepo repositories.TemplateRepository
	logger       *zap.Logger
}

func NewBillService(billRepo repositories.BillRepository, templateRepo repositories.TemplateRepository, logger *zap.Logger) BillServiceInterface {
	return &BillService{
		billRepo:     billRepo,
		templateRepo: templateRepo,
		logger:       logger,
	}
}

// Create computes totals and the next bill number and stores the bill.
// The last-number read and the insert are separate steps, so numbering is
// advisory under concurrent creation.
func (b *BillService) Create(ctx context.Context, userID uuid.UUID, request request_models.BillCreateRequest) (*response_models.BillResponse, error) {
	template, err := b.templateRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if template == nil {
		return nil, utils.ErrTemplateNotFound
	}

	rows := make([]billing.ItemInput, 0, len(request.Items))
	for _, item := range request.Items {
		rows = append(rows, billing.ItemInput{
			Name:     item.Name,
			Quantity: item.Quantity,
			Rate:     item.Rate,
		})
	}

	calc := billing.Calculate(rows, request.GSTEnabled, request.GSTPercentage)
	if calc.Skipped > 0 {
		b.logger.Warn("dropped malformed bill rows",
			zap.String("user_id", userID.String()),
			zap.Int("skipped", calc.Skipped))
	}

	itemsJSON, err := json.Marshal(calc.Items)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	billDate := request.BillDate
	if billDate == "" {
		billDate = time.Now().Format("2006-01-02")
	}

	lastNumber, err := b.billRepo.LastBillNumber(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	billNumber := billing.NextNumber(lastNumber)

	bill := &db_models.Bill{
		UserID:          userID,
		TemplateID:      template.ID,
		BillNumber:      billNumber,
		CustomerName:    request.CustomerName,
		CustomerMobile:  request.CustomerMobile,
		CustomerAddress: request.CustomerAddress,
		ItemsJSON:       string(itemsJSON),
		Subtotal:        calc.Subtotal,
		GSTEnabled:      request.GSTEnabled,
		GSTPercentage:   request.GSTPercentage,
		GSTAmount:       calc.TaxAmount,
		Total:           calc.Total,
		BillDate:        billDate,
	}

	if err := b.billRepo.Insert(ctx, bill); err != nil {
		return nil, utils.ErrDatabaseError
	}

	b.logger.Info("bill created",
		zap.String("user_id", userID.String()),
		zap.String("bill_number", billNumber),
		zap.Float64("total", calc.Total))

	return b.toBillResponse(bill, template), nil
}

// GetById returns an owned bill. The attached template reflects the
// referenced template row's current state, not a creation-time copy.
func (b *BillService) GetById(ctx context.Context, userID uuid.UUID, billID uuid.UUID) (*response_models.BillResponse, error) {
	bill, err := b.billRepo.FindByIdAndUser(ctx, billID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if bill == nil {
		return nil, utils.ErrBillNotFound
	}

	template, err := b.templateRepo.FindById(ctx, bill.TemplateID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return b.toBillResponse(bill, template), nil
}

func (b *BillService) History(ctx context.Context, userID uuid.UUID) ([]response_models.BillSummary, error) {
	bills, err := b.billRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toBillSummaries(bills), nil
}

func (b *BillService) Dashboard(ctx context.Context, userID uuid.UUID) (*response_models.DashboardResponse, error) {
	template, err := b.templateRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	bills, err := b.billRepo.RecentByUser(ctx, userID, recentBillCount)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := &response_models.DashboardResponse{
		RecentBills: toBillSummaries(bills),
	}
	if template != nil {
		response.Template = toTemplateResponse(template)
	}
	return response, nil
}

func (b *BillService) toBillResponse(bill *db_models.Bill, template *db_models.Template) *response_models.BillResponse {
	var items []billing.Item
	if bill.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(bill.ItemsJSON), &items); err != nil {
			b.logger.Error("corrupt items payload",
				zap.String("bill_id", bill.ID.String()),
				zap.Error(err))
			items = nil
		}
	}
	if items == nil {
		items = []billing.Item{}
	}

	response := &response_models.BillResponse{
		ID:              bill.ID.String(),
		BillNumber:      bill.BillNumber,
		CustomerName:    bill.CustomerName,
		CustomerMobile:  bill.CustomerMobile,
		CustomerAddress: bill.CustomerAddress,
		Items:           items,
		Subtotal:        bill.Subtotal,
		GSTEnabled:      bill.GSTEnabled,
		GSTPercentage:   bill.GSTPercentage,
		GSTAmount:       bill.GSTAmount,
		Total:           bill.Total,
		BillDate:        bill.BillDate,
		CreatedAt:       bill.CreatedAt,
	}
	if template != nil {
		response.Template = toTemplateResponse(template)
	}
	return response
}

func toBillSummaries(bills []db_models.Bill) []response_models.BillSummary {
	summaries := make([]response_models.BillSummary, 0, len(bills))
	for _, bill := range bills {
		summaries = append(summaries, response_models.BillSummary{
			ID:           bill.ID.String(),
			BillNumber:   bill.BillNumber,
			CustomerName: bill.CustomerName,
			Total:        bill.Total,
			BillDate:     bill.BillDate,
			CreatedAt:    bill.CreatedAt,
		})
	}
	return summaries
}
