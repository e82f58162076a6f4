package response_models

type LoginResponse struct {
	Token      string `json:"token"`
	IsApproved bool   `json:"is_approved"`
	IsAdmin    bool   `json:"is_admin"`
}

type UserResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	BusinessName string `json:"business_name"`
	Mobile       string `json:"mobile"`
	IsAdmin      bool   `json:"is_admin"`
	IsApproved   bool   `json:"is_approved"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    int64  `json:"created_at"`
}
