package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billbook/internal/models/request_models"
	"billbook/internal/services"
	"billbook/pkg/utils"
)

type TemplateController struct {
	templateService services.TemplateServiceInterface
}

func NewTemplateController(templateService services.TemplateServiceInterface) *TemplateController {
	return &TemplateController{
		templateService: templateService,
	}
}

// GetTemplate godoc
// @Summary Get the current business template
// @Tags Templates
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /template [get]
func (t *TemplateController) GetTemplate(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	template, err := t.templateService.GetCurrent(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, template, "Template fetched successfully")
}

// SetTemplate godoc
// @Summary Create or update the business template
// @Description Multipart form with business fields plus optional logo, signature and stamp_upload images
// @Tags Templates
// @Accept mpfd
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /template [post]
func (t *TemplateController) SetTemplate(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var req request_models.TemplateRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Missing file parts are fine; the previous assets are kept.
	files := services.TemplateFiles{}
	if fh, err := c.FormFile("logo"); err == nil {
		files.Logo = fh
	}
	if fh, err := c.FormFile("signature"); err == nil {
		files.Signature = fh
	}
	if fh, err := c.FormFile("stamp_upload"); err == nil {
		files.Stamp = fh
	}

	template, err := t.templateService.Upsert(c.Request.Context(), userID, req, files)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, template, "Template saved successfully")
}
