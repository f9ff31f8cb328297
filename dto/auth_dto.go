package dto

type LoginInput struct {
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,max=100"`
}

type LoginResource struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
