package db_models

import "github.com/google/uuid"

// Bill is an immutable invoice record. It snapshots the customer info and
// line items at creation time but references the template by id, so the
// rendered bill follows the template's current branding.
type Bill struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;index"`
	TemplateID uuid.UUID `gorm:"type:uuid"`

	BillNumber      string
	CustomerName    string
	CustomerMobile  string
	CustomerAddress string

	// Line items serialized as a JSON array.
	ItemsJSON string

	Subtotal      float64
	GSTEnabled    bool
	GSTPercentage float64
	GSTAmount     float64
	Total         float64

	BillDate string
}
