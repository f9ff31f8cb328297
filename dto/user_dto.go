package dto

type CreateUserInput struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=8,max=100"`
	Admin    *bool  `json:"admin"`
}

// UpdateUserInput: nil のフィールドは変更しない
type UpdateUserInput struct {
	ID       string  `json:"id" binding:"required,uuid"`
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email    *string `json:"email" binding:"omitempty,email,max=100"`
	Password *string `json:"password" binding:"omitempty,min=8,max=100"`
	Admin    *bool   `json:"admin"`
}

// UserResource never carries the password.
type UserResource struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

type UsersResource struct {
	Users []UserResource `json:"users"`
}
