package user

// RegisterRequest represents the request body for registering a user.
type RegisterRequest struct {
	Username string `json:"username" example:"testuser"`
	Password string `json:"password" validate:"required,max=72" example:"password123"`
}
