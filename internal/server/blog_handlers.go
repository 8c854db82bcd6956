package server

import (
	"strings"
	"time"

	"inkwell/internal/cache"
	"inkwell/internal/identity"
	"inkwell/internal/models"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	latestBlogsLimit    = 5
	latestBlogsCacheKey = "latest_blogs"
	latestBlogsCacheTTL = 30 * time.Second
)

// CreateBlog handles POST /create-blog. A valid session token attributes the
// author; without one the blog is stored anonymously.
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	var req struct {
		Title   string             `json:"title"`
		Des     string             `json:"des"`
		Banner  string             `json:"banner"`
		Tags    []string           `json:"tags"`
		Content models.BlogContent `json:"content"`
		Draft   bool               `json:"draft"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewValidationError("Invalid request body"))
	}

	// All checks run before any write; the first failure short-circuits.
	if err := validation.ValidateBlog(validation.BlogInput{
		Title:      req.Title,
		Des:        req.Des,
		Banner:     req.Banner,
		BlockCount: len(req.Content.Blocks),
		TagCount:   len(req.Tags),
		HasContent: req.Content.Blocks != nil,
	}); err != nil {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewValidationError(err.Error()))
	}

	tags := make([]string, len(req.Tags))
	for i, tag := range req.Tags {
		tags[i] = strings.ToLower(tag)
	}

	blog := &models.Blog{
		BlogID:  identity.BlogSlug(req.Title),
		Title:   req.Title,
		Des:     req.Des,
		Banner:  req.Banner,
		Content: req.Content,
		Tags:    tags,
		Draft:   req.Draft,
	}
	if authorID, ok := s.optionalUserID(c); ok {
		blog.Author = &authorID
	}

	if err := s.blogRepo.Create(c.Context(), blog); err != nil {
		if models.IsConflict(err) {
			return models.RespondWithError(c, fiber.StatusConflict, err)
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"id": blog.BlogID,
	})
}

// LatestBlogs handles GET /latest-blogs: the newest published blogs with
// authors projected to public profile fields, served through a short cache.
func (s *Server) LatestBlogs(c *fiber.Ctx) error {
	var blogs []models.BlogSummary

	err := cache.CacheAside(c.Context(), s.redis, latestBlogsCacheKey, &blogs, latestBlogsCacheTTL, func() error {
		var fetchErr error
		blogs, fetchErr = s.blogRepo.LatestPublished(c.Context(), latestBlogsLimit)
		return fetchErr
	})
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if blogs == nil {
		blogs = []models.BlogSummary{}
	}
	return c.JSON(fiber.Map{
		"blogs": blogs,
	})
}
