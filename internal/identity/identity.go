// Package identity derives usernames and blog slugs from user-supplied text.
package identity

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// UsernameChecker reports whether a username is already taken.
type UsernameChecker interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)
var whitespaceRun = regexp.MustCompile(`\s+`)

// RandomToken returns n url-safe characters derived from a fresh UUID.
func RandomToken(n int) string {
	t := strings.ReplaceAll(uuid.New().String(), "-", "")
	if n > len(t) {
		n = len(t)
	}
	return t[:n]
}

// Usernames must be at least this long; shorter candidates are suffixed the
// same way collisions are.
const minUsernameLen = 3

// DeriveUsername takes the local part of the email as the candidate username
// and appends a short random suffix if it is already taken or below the
// minimum length. A second collision is not retried; the unique index
// adjudicates it at insert time.
func DeriveUsername(ctx context.Context, checker UsernameChecker, email string) (string, error) {
	username := email
	if at := strings.Index(email, "@"); at >= 0 {
		username = email[:at]
	}

	taken, err := checker.UsernameExists(ctx, username)
	if err != nil {
		return "", err
	}
	if taken || len(username) < minUsernameLen {
		username += RandomToken(5)
	}
	return username, nil
}

// BlogSlug turns a title into a URL-safe identifier: non-alphanumeric runes
// become spaces, whitespace runs collapse into single hyphens, and a random
// token is appended for practical uniqueness without a directory lookup.
// Titles with no alphanumeric content slug to the bare token.
func BlogSlug(title string) string {
	slug := nonAlphanumeric.ReplaceAllString(title, " ")
	slug = whitespaceRun.ReplaceAllString(strings.TrimSpace(slug), "-")
	token := RandomToken(12)
	if slug == "" {
		return token
	}
	return strings.ToLower(slug) + "-" + token
}
