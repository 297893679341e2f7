package entities

import "time"

// BlogAuthor é a projeção pública do autor de um post
type BlogAuthor struct {
	FirstName string
	LastName  string
	Username  string
}

// Blog representa um post do blog
type Blog struct {
	ID            string
	Title         string
	Slug          string
	Content       string
	Excerpt       *string
	FeaturedImage *string
	Tags          []string
	IsPublished   bool
	PublishedAt   *time.Time
	AuthorID      string
	Author        *BlogAuthor
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BlogPatch é uma atualização parcial sem revalidação
type BlogPatch struct {
	Title         *string
	Slug          *string
	Content       *string
	Excerpt       *string
	FeaturedImage *string
	Tags          *[]string
	IsPublished   *bool
}

// Apply aplica o patch e retorna true se o post foi publicado pela primeira vez.
// PublishedAt só é definido na primeira transição para publicado.
func (b *Blog) Apply(p BlogPatch, now time.Time) bool {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Slug != nil {
		b.Slug = *p.Slug
	}
	if p.Content != nil {
		b.Content = *p.Content
	}
	if p.Excerpt != nil {
		b.Excerpt = p.Excerpt
	}
	if p.FeaturedImage != nil {
		b.FeaturedImage = p.FeaturedImage
	}
	if p.Tags != nil {
		b.Tags = *p.Tags
	}
	if p.IsPublished != nil {
		b.IsPublished = *p.IsPublished
	}
	return b.markPublished(now)
}

// markPublished define PublishedAt se o post está publicado e ainda não tem data
func (b *Blog) markPublished(now time.Time) bool {
	if b.IsPublished && b.PublishedAt == nil {
		b.PublishedAt = &now
		return true
	}
	return false
}

// PrepareForCreate define PublishedAt quando o post já nasce publicado
func (b *Blog) PrepareForCreate(now time.Time) {
	if b.Tags == nil {
		b.Tags = []string{}
	}
	b.markPublished(now)
}
