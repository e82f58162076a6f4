package response_models

type TemplateResponse struct {
	ID              string `json:"id"`
	BusinessName    string `json:"business_name"`
	BusinessAddress string `json:"business_address"`
	OwnerName       string `json:"owner_name"`
	Mobile          string `json:"mobile"`
	GSTNumber       string `json:"gst_number,omitempty"`

	LogoPath        string `json:"logo_path,omitempty"`
	SignaturePath   string `json:"signature_path,omitempty"`
	StampUploadPath string `json:"stamp_upload_path,omitempty"`

	StampData         string `json:"stamp_data,omitempty"`
	StampType         string `json:"stamp_type,omitempty"`
	StampBusinessName string `json:"stamp_business_name,omitempty"`
	StampPlace        string `json:"stamp_place,omitempty"`
}
