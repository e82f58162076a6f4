package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billbook/internal/storage"
	"billbook/pkg/utils"
)

type UploadController struct {
	assets storage.Store
}

func NewUploadController(assets storage.Store) *UploadController {
	return &UploadController{
		assets: assets,
	}
}

// ServeUpload godoc
// @Summary Serve a stored template asset
// @Tags Uploads
// @Produce png
// @Param filename path string true "Stored filename"
// @Success 200 {file} binary
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /uploads/{filename} [get]
func (u *UploadController) ServeUpload(c *gin.Context) {
	path, err := u.assets.Path(c.Param("filename"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "File not found")
		return
	}

	c.File(path)
}
