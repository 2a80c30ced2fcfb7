package posts

import (
	"github.com/dropDatabas3/postwall/internal/domain/repository"
	dto "github.com/dropDatabas3/postwall/internal/http/dto/posts"
)

func toPostResponse(p *repository.Post) dto.PostResponse {
	return dto.PostResponse{
		ID:        p.ID,
		User:      p.UserID,
		Content:   p.Content,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toListItem(p *repository.Post) dto.PostListItem {
	item := dto.PostListItem{
		ID:        p.ID,
		Content:   p.Content,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Author != nil {
		item.User = &dto.AuthorResponse{Name: p.Author.Name, Photo: p.Author.Photo}
	}
	return item
}
