package mapper

import (
	"sftpconfig/internal/api/handler/response"
	"sftpconfig/internal/api/models"
)

// UserMapper maps user entities to response DTOs.
type UserMapper struct{}

func NewUserMapper() UserMapper {
	return UserMapper{}
}

func (m UserMapper) EntityToUserResponse(user models.User) response.UserResponseDTO {
	return response.UserResponseDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		Active:    user.Active,
	}
}
