package request_models

// BillItemInput keeps quantity and rate as text; parsing is lenient and
// handled by the bill calculator.
type BillItemInput struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Rate     string `json:"rate"`
}

type BillCreateRequest struct {
	CustomerName    string          `json:"customer_name" binding:"required"`
	CustomerMobile  string          `json:"customer_mobile"`
	CustomerAddress string          `json:"customer_address"`
	BillDate        string          `json:"bill_date"`
	Items           []BillItemInput `json:"items"`
	GSTEnabled      bool            `json:"gst_enabled"`
	GSTPercentage   float64         `json:"gst_percentage" binding:"gte=0,lte=100"`
}
