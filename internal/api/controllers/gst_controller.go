package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billbook/internal/models/request_models"
	"billbook/internal/services"
	"billbook/pkg/utils"
)

type GSTController struct {
	gstService services.GSTServiceInterface
}

func NewGSTController(gstService services.GSTServiceInterface) *GSTController {
	return &GSTController{
		gstService: gstService,
	}
}

// VerifyGST godoc
// @Summary Validate a GST number's format
// @Description Format validation only; no online check against the GST portal is performed
// @Tags GST
// @Accept json
// @Produce json
// @Param request body request_models.GSTVerifyRequest true "GST number"
// @Success 200 {object} utils.APIResponse
// @Router /gst/verify [post]
func (g *GSTController) VerifyGST(c *gin.Context) {
	var req request_models.GSTVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result := g.gstService.Verify(req.GSTNumber)
	utils.RespondSuccess(c, result, "GST verification completed")
}
