package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billbook/internal/models/request_models"
	"billbook/internal/services"
	"billbook/pkg/utils"
)

type BillController struct {
	billService services.BillServiceInterface
}

func NewBillController(billService services.BillServiceInterface) *BillController {
	return &BillController{
		billService: billService,
	}
}

// CreateBill godoc
// @Summary Create a bill
// @Description Computes totals and the next bill number; bills are immutable once created
// @Tags Bills
// @Accept json
// @Produce json
// @Param request body request_models.BillCreateRequest true "Bill payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bills [post]
func (b *BillController) CreateBill(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var req request_models.BillCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	bill, err := b.billService.Create(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bill, "Bill created successfully")
}

// GetBill godoc
// @Summary Preview a bill
// @Tags Bills
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bills/{id} [get]
func (b *BillController) GetBill(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrBillNotFound)
		return
	}

	bill, err := b.billService.GetById(c.Request.Context(), userID, billID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bill, "Bill fetched successfully")
}

// History godoc
// @Summary List bill history
// @Tags Bills
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bills [get]
func (b *BillController) History(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	bills, err := b.billService.History(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bills, "Bills fetched successfully")
}

// Dashboard godoc
// @Summary Dashboard with current template and recent bills
// @Tags Bills
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (b *BillController) Dashboard(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	dashboard, err := b.billService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dashboard, "Dashboard fetched successfully")
}
