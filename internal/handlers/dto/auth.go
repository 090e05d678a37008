package dto

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=50"`
	Password  string `json:"password" binding:"required,min=1"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
