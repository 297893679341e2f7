package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
	"github.com/rafabene/kundlivision-backend/internal/handlers/dto"
	"github.com/rafabene/kundlivision-backend/internal/handlers/middleware"
	"github.com/rafabene/kundlivision-backend/internal/services"
)

// BlogHandler expõe os posts publicados e a gestão do admin
type BlogHandler struct {
	blogService *services.BlogService
	errors      *ErrorHandler
}

func NewBlogHandler(blogService *services.BlogService, errors *ErrorHandler) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		errors:      errors,
	}
}

// List godoc
// @Summary      List published posts
// @Tags         blogs
// @Produce      json
// @Param        page  query int    false "Page, starting at 1"
// @Param        limit query int    false "Page size, max 100"
// @Param        tag   query string false "Tag filter"
// @Success      200 {object} dto.BlogListResponse
// @Router       /blogs [get]
func (h *BlogHandler) List(c *gin.Context) {
	var query dto.BlogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.errors.BindError(c, err)
		return
	}

	page, err := h.blogService.ListPublished(c.Request.Context(), repositories.BlogFilters{
		Tag:      query.Tag,
		Page:     query.Page,
		PageSize: query.Limit,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BlogListResponse{
		Blogs:       dto.ToBlogResponses(page.Blogs),
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		Total:       page.Total,
	})
}

// GetBySlug godoc
// @Summary      Get a published post by slug
// @Tags         blogs
// @Produce      json
// @Param        slug path string true "Slug"
// @Success      200 {object} dto.BlogResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /blogs/{slug} [get]
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	blog, err := h.blogService.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBlogResponse(blog))
}

// ListAll godoc
// @Summary      List every post, drafts included
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.BlogResponse
// @Router       /blogs/admin/all [get]
func (h *BlogHandler) ListAll(c *gin.Context) {
	blogs, err := h.blogService.ListAll(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBlogResponses(blogs))
}

// Create godoc
// @Summary      Create a post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBlogRequest true "Post"
// @Success      201 {object} dto.BlogResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /blogs [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var req dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BindError(c, err)
		return
	}

	author, _ := middleware.CurrentUser(c)

	blog, err := h.blogService.Create(c.Request.Context(), author.ID, services.CreateBlogInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		Tags:          req.Tags,
		IsPublished:   req.IsPublished,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBlogResponse(blog))
}

// Update godoc
// @Summary      Partially update a post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                true "Post ID"
// @Param        request body dto.UpdateBlogRequest true "Patch"
// @Success      200 {object} dto.BlogResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /blogs/{id} [put]
func (h *BlogHandler) Update(c *gin.Context) {
	var req dto.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BindError(c, err)
		return
	}

	blog, err := h.blogService.Update(c.Request.Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBlogResponse(blog))
}

// Delete godoc
// @Summary      Delete a post
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200 {object} dto.MessageResponse
// @Router       /blogs/{id} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.blogService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message(c, "message.blog_deleted"))
}
