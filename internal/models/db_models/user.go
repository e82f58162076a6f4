package db_models

type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	BusinessName string
	Mobile       string
	IsAdmin      bool
	IsApproved   bool
	IsActive     bool

	Templates []Template
	Bills     []Bill
}
