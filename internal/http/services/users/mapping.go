package users

import (
	"github.com/dropDatabas3/postwall/internal/domain/repository"
	dto "github.com/dropDatabas3/postwall/internal/http/dto/users"
)

func toUserResponse(u *repository.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Photo:     u.Photo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
