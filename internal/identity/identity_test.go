package identity

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUsernameChecker is a mock of the UsernameChecker interface
type MockUsernameChecker struct {
	mock.Mock
}

func (m *MockUsernameChecker) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func TestDeriveUsername_Unused(t *testing.T) {
	checker := new(MockUsernameChecker)
	checker.On("UsernameExists", mock.Anything, "alice").Return(false, nil)

	username, err := DeriveUsername(context.Background(), checker, "alice@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestDeriveUsername_Taken(t *testing.T) {
	checker := new(MockUsernameChecker)
	checker.On("UsernameExists", mock.Anything, "alice").Return(true, nil)

	username, err := DeriveUsername(context.Background(), checker, "alice@x.com")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(username, "alice"))
	assert.Len(t, username, len("alice")+5)
	assert.Regexp(t, regexp.MustCompile(`^alice[a-z0-9]{5}$`), username)
}

func TestDeriveUsername_ShortLocalPart(t *testing.T) {
	checker := new(MockUsernameChecker)
	checker.On("UsernameExists", mock.Anything, "ab").Return(false, nil)

	username, err := DeriveUsername(context.Background(), checker, "ab@x.com")
	assert.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ab[a-z0-9]{5}$`), username)
	assert.GreaterOrEqual(t, len(username), 3)
}

func TestBlogSlug(t *testing.T) {
	slug := BlogSlug("Hello, World!  This is Go")
	assert.True(t, strings.HasPrefix(slug, "hello-world-this-is-go-"))

	token := strings.TrimPrefix(slug, "hello-world-this-is-go-")
	assert.Len(t, token, 12)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]+$`), token)
}

func TestBlogSlug_NoAlphanumericContent(t *testing.T) {
	slug := BlogSlug("!!! ???")
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{12}$`), slug)
	assert.False(t, strings.HasPrefix(slug, "-"))
}

func TestBlogSlug_Unique(t *testing.T) {
	assert.NotEqual(t, BlogSlug("same title"), BlogSlug("same title"))
}

func TestRandomToken_Length(t *testing.T) {
	assert.Len(t, RandomToken(5), 5)
	assert.Len(t, RandomToken(12), 12)
	// Capped at the underlying UUID hex length.
	assert.Len(t, RandomToken(100), 32)
}
