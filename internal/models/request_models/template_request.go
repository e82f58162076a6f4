package request_models

// TemplateRequest carries the non-file fields of the multipart template
// form. The logo/signature/stamp file parts are read separately from the
// multipart payload.
type TemplateRequest struct {
	BusinessName    string `form:"business_name" binding:"required"`
	BusinessAddress string `form:"business_address" binding:"required"`
	OwnerName       string `form:"owner_name" binding:"required"`
	Mobile          string `form:"mobile" binding:"required"`
	GSTNumber       string `form:"gst_number"`

	StampData         string `form:"stamp_data"`
	StampType         string `form:"stamp_type"`
	StampBusinessName string `form:"stamp_business_name"`
	StampPlace        string `form:"stamp_place"`
}
