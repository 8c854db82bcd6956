// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"unicode"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateFullname checks the display name length requirement.
func ValidateFullname(fullname string) error {
	if len(fullname) < 3 {
		return fmt.Errorf("fullname must be at least 3 letters long")
	}
	return nil
}

// ValidateEmail checks basic local@domain.tld format.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email is invalid")
	}
	return nil
}

// ValidatePassword enforces 6-20 characters with at least one digit, one
// lowercase, and one uppercase letter.
func ValidatePassword(password string) error {
	if len(password) < 6 || len(password) > 20 {
		return fmt.Errorf("password should be 6 to 20 characters long")
	}

	hasDigit, hasLower, hasUpper := false, false, false
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	if !hasDigit || !hasLower || !hasUpper {
		return fmt.Errorf("password must contain a numeric, one lowercase and one uppercase letter")
	}

	return nil
}

// BlogInput holds the fields checked before a blog write.
type BlogInput struct {
	Title      string
	Des        string
	Banner     string
	BlockCount int
	TagCount   int
	HasContent bool
}

// ValidateBlog runs all blog-creation checks in order; the first failure
// short-circuits with a descriptive error and nothing is written.
func ValidateBlog(in BlogInput) error {
	if in.Title == "" {
		return fmt.Errorf("you must provide a title to publish the blog")
	}
	if in.Des == "" || len(in.Des) > 200 {
		return fmt.Errorf("you must provide blog description under 200 characters")
	}
	if in.Banner == "" {
		return fmt.Errorf("you must provide blog banner to publish it")
	}
	if !in.HasContent || in.BlockCount < 1 {
		return fmt.Errorf("there must be some blog content to publish it")
	}
	if in.TagCount < 1 || in.TagCount > 10 {
		return fmt.Errorf("provide tags in order to publish the blog, maximum 10")
	}
	return nil
}
