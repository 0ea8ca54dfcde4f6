package dto

import (
	"github.com/hikaru-dev/calc-forest-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// RegisterResponse wraps the created user: {"user": {...}}
type RegisterResponse struct {
	User UserDTO `json:"user"`
}

// LoginResponse carries the bearer token alongside the authenticated user.
type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}
