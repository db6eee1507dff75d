package auth

// LoginInput represents the request body for user authentication.
type LoginInput struct {
	Username string `json:"username" validate:"required" example:"testuser"`
	Password string `json:"password" validate:"required" example:"password123"`
}

// TokenResponse carries the signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}
