package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
)

// BlogRepository implementa repositories.BlogRepository
type BlogRepository struct {
	db *gorm.DB
}

// NewBlogRepository cria um novo BlogRepository
func NewBlogRepository(db *gorm.DB) repositories.BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Create(ctx context.Context, blog *entities.Blog) error {
	model := blogToModel(blog)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return err
	}

	blog.ID = model.ID
	blog.CreatedAt = model.CreatedAt
	blog.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*entities.Blog, error) {
	return r.findOne(ctx, "blogs.id = ?", id)
}

func (r *BlogRepository) FindPublishedBySlug(ctx context.Context, slug string) (*entities.Blog, error) {
	return r.findOne(ctx, "blogs.slug = ? AND blogs.is_published = ?", slug, true)
}

func (r *BlogRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int64

	query := r.getDB(ctx).Model(&BlogModel{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BlogRepository) Update(ctx context.Context, blog *entities.Blog) error {
	model := blogToModel(blog)
	if err := r.getDB(ctx).Omit("Author").Save(model).Error; err != nil {
		return err
	}
	blog.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete é uma remoção física
func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	return r.getDB(ctx).Where("id = ?", id).Delete(&BlogModel{}).Error
}

func (r *BlogRepository) ListPublished(ctx context.Context, filters repositories.BlogFilters) ([]*entities.Blog, int64, error) {
	filters = filters.Normalize()

	query := r.getDB(ctx).Model(&BlogModel{}).Where("blogs.is_published = ?", true)

	if filters.Tag != nil && *filters.Tag != "" {
		var err error
		query, err = r.whereHasTag(query, *filters.Tag)
		if err != nil {
			return nil, 0, err
		}
	}

	// Session permite reutilizar a consulta para contagem e página
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*BlogModel
	offset := (filters.Page - 1) * filters.PageSize
	err := query.
		Preload("Author").
		Order("blogs.published_at DESC").
		Limit(filters.PageSize).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	return blogsToEntities(models), total, nil
}

func (r *BlogRepository) ListAll(ctx context.Context) ([]*entities.Blog, error) {
	var models []*BlogModel

	if err := r.getDB(ctx).Preload("Author").Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	return blogsToEntities(models), nil
}

// whereHasTag filtra posts cuja lista de tags contém tag.
// Postgres usa containment de JSONB; SQLite (testes) usa json_each.
func (r *BlogRepository) whereHasTag(query *gorm.DB, tag string) (*gorm.DB, error) {
	if r.db.Dialector.Name() == "postgres" {
		needle, err := json.Marshal([]string{tag})
		if err != nil {
			return nil, err
		}
		return query.Where("blogs.tags @> ?::jsonb", string(needle)), nil
	}
	return query.Where("EXISTS (SELECT 1 FROM json_each(blogs.tags) WHERE json_each.value = ?)", tag), nil
}

func (r *BlogRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entities.Blog, error) {
	var model BlogModel

	if err := r.getDB(ctx).Preload("Author").Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return blogToEntity(&model), nil
}

func (r *BlogRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func blogToModel(b *entities.Blog) *BlogModel {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}

	return &BlogModel{
		BaseModel: BaseModel{
			ID:        b.ID,
			CreatedAt: b.CreatedAt,
			UpdatedAt: b.UpdatedAt,
		},
		Title:         b.Title,
		Slug:          b.Slug,
		Content:       b.Content,
		Excerpt:       b.Excerpt,
		FeaturedImage: b.FeaturedImage,
		Tags:          datatypes.NewJSONSlice(tags),
		IsPublished:   b.IsPublished,
		PublishedAt:   b.PublishedAt,
		AuthorID:      b.AuthorID,
	}
}

func blogToEntity(model *BlogModel) *entities.Blog {
	blog := &entities.Blog{
		ID:            model.ID,
		Title:         model.Title,
		Slug:          model.Slug,
		Content:       model.Content,
		Excerpt:       model.Excerpt,
		FeaturedImage: model.FeaturedImage,
		Tags:          []string(model.Tags),
		IsPublished:   model.IsPublished,
		PublishedAt:   model.PublishedAt,
		AuthorID:      model.AuthorID,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
	if blog.Tags == nil {
		blog.Tags = []string{}
	}

	if model.Author != nil {
		blog.Author = &entities.BlogAuthor{
			FirstName: model.Author.FirstName,
			LastName:  model.Author.LastName,
			Username:  model.Author.Username,
		}
	}

	return blog
}

func blogsToEntities(models []*BlogModel) []*entities.Blog {
	result := make([]*entities.Blog, 0, len(models))
	for _, model := range models {
		result = append(result, blogToEntity(model))
	}
	return result
}
