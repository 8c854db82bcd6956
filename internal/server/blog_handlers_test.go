package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBlogRepository is a mock of the BlogRepository interface
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) LatestPublished(ctx context.Context, limit int) ([]models.BlogSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogSummary), args.Error(1)
}

func newBlogTestServer(blogRepo *MockBlogRepository) (*fiber.App, *Server) {
	app := fiber.New()
	s := NewServerWithDeps(&config.Config{JWTSecret: "test_secret"}, nil, blogRepo, nil, nil)
	return app, s
}

func validBlogBody(tags int) map[string]any {
	tagList := make([]string, tags)
	for i := range tagList {
		tagList[i] = "Tag"
	}
	return map[string]any{
		"title":  "My First Post",
		"des":    "A short description",
		"banner": "https://example.com/banner.jpeg",
		"tags":   tagList,
		"content": map[string]any{
			"time":   time.Now().UnixMilli(),
			"blocks": []map[string]any{{"type": "paragraph", "data": map[string]any{"text": "hello"}}},
		},
		"draft": false,
	}
}

func TestCreateBlog(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(body map[string]any)
		mockSetup      func(m *MockBlogRepository)
		expectedStatus int
	}{
		{
			name:   "Success",
			mutate: func(map[string]any) {},
			mockSetup: func(m *MockBlogRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing title",
			mutate:         func(b map[string]any) { b["title"] = "" },
			mockSetup:      func(m *MockBlogRepository) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Description too long",
			mutate:         func(b map[string]any) { b["des"] = strings.Repeat("x", 201) },
			mockSetup:      func(m *MockBlogRepository) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Missing banner",
			mutate:         func(b map[string]any) { b["banner"] = "" },
			mockSetup:      func(m *MockBlogRepository) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "Empty content",
			mutate: func(b map[string]any) {
				b["content"] = map[string]any{"time": 0, "blocks": []map[string]any{}}
			},
			mockSetup:      func(m *MockBlogRepository) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Eleven tags",
			mutate:         func(b map[string]any) { b["tags"] = validBlogBody(11)["tags"] },
			mockSetup:      func(m *MockBlogRepository) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "Ten tags",
			mutate: func(b map[string]any) { b["tags"] = validBlogBody(10)["tags"] },
			mockSetup: func(m *MockBlogRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockBlogRepository)
			tt.mockSetup(mockRepo)
			app, s := newBlogTestServer(mockRepo)
			app.Post("/create-blog", s.CreateBlog)

			body := validBlogBody(3)
			tt.mutate(body)

			resp := postJSON(t, app, "/create-blog", body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			decoded := decodeBody(t, resp)
			if tt.expectedStatus == http.StatusOK {
				id, ok := decoded["id"].(string)
				assert.True(t, ok)
				assert.True(t, strings.HasPrefix(id, "my-first-post-"))
			} else {
				assert.Contains(t, decoded, "error")
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCreateBlog_AnonymousAndLowercasedTags(t *testing.T) {
	mockRepo := new(MockBlogRepository)

	var stored *models.Blog
	mockRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*models.Blog)
	}).Return(nil)

	app, s := newBlogTestServer(mockRepo)
	app.Post("/create-blog", s.CreateBlog)

	body := validBlogBody(2)
	body["tags"] = []string{"GoLang", "WebDev"}

	resp := postJSON(t, app, "/create-blog", body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	assert.NotNil(t, stored)
	assert.Nil(t, stored.Author, "no session token means anonymous author")
	assert.Equal(t, []string{"golang", "webdev"}, stored.Tags)
	assert.False(t, stored.Draft)
}

func TestLatestBlogs(t *testing.T) {
	author := &models.PublicProfile{
		ProfileImg: "https://api.dicebear.com/6.x/fun-emoji/svg?seed=Coco",
		Username:   "alice",
		Fullname:   "alice smith",
	}
	summaries := []models.BlogSummary{
		{BlogID: "newest-post-abc123", Title: "Newest Post", Author: author, PublishedAt: time.Now()},
		{BlogID: "older-post-def456", Title: "Older Post", PublishedAt: time.Now().Add(-time.Hour)},
	}

	mockRepo := new(MockBlogRepository)
	mockRepo.On("LatestPublished", mock.Anything, 5).Return(summaries, nil)

	app, s := newBlogTestServer(mockRepo)
	app.Get("/latest-blogs", s.LatestBlogs)

	req := httptest.NewRequest(http.MethodGet, "/latest-blogs", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Blogs []models.BlogSummary `json:"blogs"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Blogs, 2)
	assert.Equal(t, "newest-post-abc123", body.Blogs[0].BlogID)
	assert.NotNil(t, body.Blogs[0].Author)
	assert.Equal(t, "alice", body.Blogs[0].Author.Username)
	assert.Nil(t, body.Blogs[1].Author)
}

func TestLatestBlogs_UpstreamError(t *testing.T) {
	mockRepo := new(MockBlogRepository)
	mockRepo.On("LatestPublished", mock.Anything, 5).Return(nil, models.NewInternalError(assert.AnError))

	app, s := newBlogTestServer(mockRepo)
	app.Get("/latest-blogs", s.LatestBlogs)

	req := httptest.NewRequest(http.MethodGet, "/latest-blogs", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Internal server error", body["error"])
}
