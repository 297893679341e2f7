package services

import (
	"context"
	"time"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/domain/errors"
	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
)

// BlogService contém a lógica de publicação do blog
type BlogService struct {
	repo   repositories.BlogRepository
	uow    ports.UnitOfWork
	events ports.EventPublisher
	logger ports.Logger
	now    func() time.Time
}

// NewBlogService cria um novo BlogService
func NewBlogService(
	repo repositories.BlogRepository,
	uow ports.UnitOfWork,
	events ports.EventPublisher,
	logger ports.Logger,
	now func() time.Time,
) *BlogService {
	if now == nil {
		now = time.Now
	}
	return &BlogService{
		repo:   repo,
		uow:    uow,
		events: events,
		logger: logger,
		now:    now,
	}
}

// CreateBlogInput representa os dados de um novo post
type CreateBlogInput struct {
	Title         string
	Slug          string
	Content       string
	Excerpt       *string
	FeaturedImage *string
	Tags          []string
	IsPublished   bool
}

// BlogPage é uma página da listagem pública
type BlogPage struct {
	Blogs       []*entities.Blog
	Total       int64
	CurrentPage int
	TotalPages  int
}

// ListPublished nunca retorna rascunhos
func (s *BlogService) ListPublished(ctx context.Context, filters repositories.BlogFilters) (*BlogPage, error) {
	filters = filters.Normalize()

	blogs, total, err := s.repo.ListPublished(ctx, filters)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filters.PageSize) - 1) / int64(filters.PageSize))

	return &BlogPage{
		Blogs:       blogs,
		Total:       total,
		CurrentPage: filters.Page,
		TotalPages:  totalPages,
	}, nil
}

// GetPublishedBySlug trata rascunhos como inexistentes
func (s *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (*entities.Blog, error) {
	blog, err := s.repo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, errors.ErrBlogNotFound
	}
	return blog, nil
}

// ListAll inclui rascunhos; uso exclusivo do admin
func (s *BlogService) ListAll(ctx context.Context) ([]*entities.Blog, error) {
	return s.repo.ListAll(ctx)
}

// Create verifica o slug e grava o post na mesma transação
func (s *BlogService) Create(ctx context.Context, authorID string, input CreateBlogInput) (*entities.Blog, error) {
	blog := &entities.Blog{
		Title:         input.Title,
		Slug:          input.Slug,
		Content:       input.Content,
		Excerpt:       input.Excerpt,
		FeaturedImage: input.FeaturedImage,
		Tags:          input.Tags,
		IsPublished:   input.IsPublished,
		AuthorID:      authorID,
	}
	blog.PrepareForCreate(s.now())

	var created *entities.Blog
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		exists, err := s.repo.SlugExists(txCtx, blog.Slug, "")
		if err != nil {
			return err
		}
		if exists {
			return errors.ErrSlugAlreadyExists
		}

		if err := s.repo.Create(txCtx, blog); err != nil {
			return err
		}

		// recarrega para trazer o autor
		created, err = s.repo.FindByID(txCtx, blog.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("blog created", "blog_id", created.ID, "slug", created.Slug, "published", created.IsPublished)

	if created.IsPublished {
		s.events.Publish(ports.EventBlogPublished, created)
	}

	return created, nil
}

// Update aplica o patch; PublishedAt só é definido na primeira publicação
func (s *BlogService) Update(ctx context.Context, id string, patch entities.BlogPatch) (*entities.Blog, error) {
	var (
		updated        *entities.Blog
		firstPublished bool
	)

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		blog, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if blog == nil {
			return errors.ErrBlogNotFound
		}

		if patch.Slug != nil && *patch.Slug != blog.Slug {
			exists, err := s.repo.SlugExists(txCtx, *patch.Slug, blog.ID)
			if err != nil {
				return err
			}
			if exists {
				return errors.ErrSlugAlreadyExists
			}
		}

		firstPublished = blog.Apply(patch, s.now())

		if err := s.repo.Update(txCtx, blog); err != nil {
			return err
		}
		updated = blog
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("blog updated", "blog_id", id, "first_published", firstPublished)

	if firstPublished {
		s.events.Publish(ports.EventBlogPublished, updated)
	}

	return updated, nil
}

// Delete remove o post definitivamente
func (s *BlogService) Delete(ctx context.Context, id string) error {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if blog == nil {
		return errors.ErrBlogNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("blog deleted", "blog_id", id)
	return nil
}
