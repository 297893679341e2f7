package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/kundlivision-backend/internal/domain/errors"
	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
	"github.com/rafabene/kundlivision-backend/internal/services"
)

var _ = Describe("BlogService", func() {
	var (
		f      *fixture
		svc    *services.BlogService
		ctx    context.Context
		author *entities.User
		now    time.Time
	)

	BeforeEach(func() {
		f = newFixture()
		now = time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)
		svc = services.NewBlogService(f.blogs, f.uow, f.events, f.logger, func() time.Time { return now })
		ctx = context.Background()
		author = f.createUser("writer", true)
	})

	create := func(slug string, published bool, tags ...string) *entities.Blog {
		blog, err := svc.Create(ctx, author.ID, services.CreateBlogInput{
			Title: "Post " + slug, Slug: slug, Content: "Body", Tags: tags, IsPublished: published,
		})
		Expect(err).NotTo(HaveOccurred())
		return blog
	}

	Describe("Create", func() {
		It("define PublishedAt e publica no feed quando nasce publicado", func() {
			blog := create("mercury-retrograde", true, "planets")
			Expect(blog.PublishedAt).NotTo(BeNil())
			Expect(blog.PublishedAt.Equal(now)).To(BeTrue())
			Expect(blog.Author).NotTo(BeNil())
			Expect(blog.Author.Username).To(Equal("writer"))

			events := f.events.Events()
			Expect(events).To(HaveLen(1))
			Expect(events[0].Name).To(Equal(ports.EventBlogPublished))
		})

		It("rascunho fica sem PublishedAt e sem evento", func() {
			blog := create("draft", false)
			Expect(blog.PublishedAt).To(BeNil())
			Expect(f.events.Events()).To(BeEmpty())
		})

		It("rejeita slug repetido", func() {
			create("same-slug", false)
			_, err := svc.Create(ctx, author.ID, services.CreateBlogInput{Title: "Other", Slug: "same-slug", Content: "x"})
			Expect(err).To(MatchError(domainerrors.ErrSlugAlreadyExists))
		})
	})

	Describe("Update", func() {
		It("define PublishedAt só na primeira publicação", func() {
			blog := create("draft", false)
			publish, unpublish := true, false

			first, err := svc.Update(ctx, blog.ID, entities.BlogPatch{IsPublished: &publish})
			Expect(err).NotTo(HaveOccurred())
			Expect(first.PublishedAt).NotTo(BeNil())
			firstPublishedAt := *first.PublishedAt

			now = now.Add(48 * time.Hour)
			_, err = svc.Update(ctx, blog.ID, entities.BlogPatch{IsPublished: &unpublish})
			Expect(err).NotTo(HaveOccurred())
			again, err := svc.Update(ctx, blog.ID, entities.BlogPatch{IsPublished: &publish})
			Expect(err).NotTo(HaveOccurred())

			Expect(again.PublishedAt.Equal(firstPublishedAt)).To(BeTrue())
			Expect(f.events.Events()).To(HaveLen(1))
		})

		It("rejeita troca para slug de outro post", func() {
			create("taken", false)
			blog := create("mine", false)
			slug := "taken"

			_, err := svc.Update(ctx, blog.ID, entities.BlogPatch{Slug: &slug})
			Expect(err).To(MatchError(domainerrors.ErrSlugAlreadyExists))
		})

		It("aceita reenviar o próprio slug", func() {
			blog := create("mine", false)
			slug, title := "mine", "New title"

			updated, err := svc.Update(ctx, blog.ID, entities.BlogPatch{Slug: &slug, Title: &title})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Title).To(Equal("New title"))
		})

		It("retorna não encontrado para id desconhecido", func() {
			_, err := svc.Update(ctx, "missing", entities.BlogPatch{})
			Expect(err).To(MatchError(domainerrors.ErrBlogNotFound))
		})
	})

	Describe("leitura pública", func() {
		BeforeEach(func() {
			create("one", true, "vedic")
			create("two", true, "tarot")
			create("three", true, "vedic", "tarot")
			create("hidden", false, "vedic")
		})

		It("nunca lista rascunhos e calcula as páginas", func() {
			page, err := svc.ListPublished(ctx, repositories.BlogFilters{Page: 1, PageSize: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Total).To(BeEquivalentTo(3))
			Expect(page.TotalPages).To(Equal(2))
			Expect(page.CurrentPage).To(Equal(1))
			Expect(page.Blogs).To(HaveLen(2))
		})

		It("filtra por tag", func() {
			tag := "vedic"
			page, err := svc.ListPublished(ctx, repositories.BlogFilters{Tag: &tag})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Total).To(BeEquivalentTo(2))
		})

		It("trata rascunho como inexistente no slug", func() {
			_, err := svc.GetPublishedBySlug(ctx, "hidden")
			Expect(err).To(MatchError(domainerrors.ErrBlogNotFound))

			blog, err := svc.GetPublishedBySlug(ctx, "one")
			Expect(err).NotTo(HaveOccurred())
			Expect(blog.Slug).To(Equal("one"))
		})

		It("admin vê rascunhos", func() {
			all, err := svc.ListAll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(4))
		})
	})

	It("Delete remove o post", func() {
		blog := create("gone", true)
		Expect(svc.Delete(ctx, blog.ID)).To(Succeed())
		Expect(svc.Delete(ctx, blog.ID)).To(MatchError(domainerrors.ErrBlogNotFound))
	})
})
