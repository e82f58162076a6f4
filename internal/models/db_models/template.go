package db_models

import "github.com/google/uuid"

// Template is the per-user business branding applied to bills. A user has
// at most one current template; updates overwrite it in place.
type Template struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index"`

	BusinessName    string
	BusinessAddress string
	OwnerName       string
	Mobile          string
	GSTNumber       string

	// Stored filenames of uploaded assets. References to replaced files
	// are overwritten but the old files stay on disk.
	LogoPath        string
	SignaturePath   string
	StampUploadPath string

	StampData         string
	StampType         string
	StampBusinessName string
	StampPlace        string
}
