package response_models

import "billbook/internal/billing"

type BillResponse struct {
	ID              string            `json:"id"`
	BillNumber      string            `json:"bill_number"`
	CustomerName    string            `json:"customer_name"`
	CustomerMobile  string            `json:"customer_mobile,omitempty"`
	CustomerAddress string            `json:"customer_address,omitempty"`
	Items           []billing.Item    `json:"items"`
	Subtotal        float64           `json:"subtotal"`
	GSTEnabled      bool              `json:"gst_enabled"`
	GSTPercentage   float64           `json:"gst_percentage"`
	GSTAmount       float64           `json:"gst_amount"`
	Total           float64           `json:"total"`
	BillDate        string            `json:"bill_date"`
	CreatedAt       int64             `json:"created_at"`
	Template        *TemplateResponse `json:"template,omitempty"`
}

type BillSummary struct {
	ID           string  `json:"id"`
	BillNumber   string  `json:"bill_number"`
	CustomerName string  `json:"customer_name"`
	Total        float64 `json:"total"`
	BillDate     string  `json:"bill_date"`
	CreatedAt    int64   `json:"created_at"`
}

type DashboardResponse struct {
	Template    *TemplateResponse `json:"template,omitempty"`
	RecentBills []BillSummary     `json:"recent_bills"`
}
