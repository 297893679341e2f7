package repositories

import (
	"context"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
)

// BlogRepository define a interface para persistência de posts
type BlogRepository interface {
	Create(ctx context.Context, blog *entities.Blog) error
	FindByID(ctx context.Context, id string) (*entities.Blog, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*entities.Blog, error)
	// SlugExists ignora o post excludeID (vazio = nenhum)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Update(ctx context.Context, blog *entities.Blog) error
	Delete(ctx context.Context, id string) error
	ListPublished(ctx context.Context, filters BlogFilters) ([]*entities.Blog, int64, error)
	ListAll(ctx context.Context) ([]*entities.Blog, error)
}

// BlogFilters contém filtros e paginação da listagem pública
type BlogFilters struct {
	Tag      *string
	Page     int // Página (começa em 1)
	PageSize int // Itens por página (default: 10, max: 100)
}

const (
	DefaultBlogPageSize = 10
	MaxBlogPageSize     = 100
)

// Normalize aplica os defaults de paginação
func (f BlogFilters) Normalize() BlogFilters {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultBlogPageSize
	}
	if f.PageSize > MaxBlogPageSize {
		f.PageSize = MaxBlogPageSize
	}
	return f
}
