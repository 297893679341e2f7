package dto

import (
	"time"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
)

// CreateBlogRequest representa a criação de um post
type CreateBlogRequest struct {
	Title         string   `json:"title" binding:"required,min=5,max=200"`
	Slug          string   `json:"slug" binding:"required,min=3,max=200"`
	Content       string   `json:"content" binding:"required,min=50"`
	Excerpt       *string  `json:"excerpt"`
	FeaturedImage *string  `json:"featuredImage"`
	Tags          []string `json:"tags"`
	IsPublished   bool     `json:"isPublished"`
}

// UpdateBlogRequest é um patch parcial sem revalidação
type UpdateBlogRequest struct {
	Title         *string   `json:"title"`
	Slug          *string   `json:"slug"`
	Content       *string   `json:"content"`
	Excerpt       *string   `json:"excerpt"`
	FeaturedImage *string   `json:"featuredImage"`
	Tags          *[]string `json:"tags"`
	IsPublished   *bool     `json:"isPublished"`
}

// BlogQuery são a paginação e o filtro de tag da listagem pública
type BlogQuery struct {
	Page  int     `form:"page"`
	Limit int     `form:"limit"`
	Tag   *string `form:"tag"`
}

// BlogAuthorResponse é a projeção pública do autor
type BlogAuthorResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
}

// BlogResponse representa a resposta de um post
type BlogResponse struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Slug          string              `json:"slug"`
	Content       string              `json:"content"`
	Excerpt       *string             `json:"excerpt"`
	FeaturedImage *string             `json:"featuredImage"`
	Tags          []string            `json:"tags"`
	IsPublished   bool                `json:"isPublished"`
	PublishedAt   *time.Time          `json:"publishedAt"`
	AuthorID      string              `json:"authorId"`
	Author        *BlogAuthorResponse `json:"author,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// BlogListResponse é uma página da listagem pública
type BlogListResponse struct {
	Blogs       []BlogResponse `json:"blogs"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Total       int64          `json:"total"`
}

// ToPatch converte o corpo em patch de domínio
func (r UpdateBlogRequest) ToPatch() entities.BlogPatch {
	return entities.BlogPatch{
		Title:         r.Title,
		Slug:          r.Slug,
		Content:       r.Content,
		Excerpt:       r.Excerpt,
		FeaturedImage: r.FeaturedImage,
		Tags:          r.Tags,
		IsPublished:   r.IsPublished,
	}
}

// ToBlogResponse converte uma entidade Blog para BlogResponse
func ToBlogResponse(b *entities.Blog) BlogResponse {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}

	response := BlogResponse{
		ID:            b.ID,
		Title:         b.Title,
		Slug:          b.Slug,
		Content:       b.Content,
		Excerpt:       b.Excerpt,
		FeaturedImage: b.FeaturedImage,
		Tags:          tags,
		IsPublished:   b.IsPublished,
		PublishedAt:   b.PublishedAt,
		AuthorID:      b.AuthorID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.Author != nil {
		response.Author = &BlogAuthorResponse{
			FirstName: b.Author.FirstName,
			LastName:  b.Author.LastName,
			Username:  b.Author.Username,
		}
	}
	return response
}

// ToBlogResponses converte uma lista de entidades Blog
func ToBlogResponses(list []*entities.Blog) []BlogResponse {
	responses := make([]BlogResponse, len(list))
	for i, b := range list {
		responses[i] = ToBlogResponse(b)
	}
	return responses
}
