package request_models

type GSTVerifyRequest struct {
	GSTNumber string `json:"gst_number" binding:"required"`
}
