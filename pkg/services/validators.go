package services

import (
	"regexp"
	"strings"
)

var (
	slugPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	pathPattern = regexp.MustCompile(`^[a-zA-Z0-9_/-]+$`)
)

// IsValidSlug accepts a bare slug: letters, digits, underscore and hyphen
// only. Used before a slug reaches any lookup context.
func IsValidSlug(slug string) bool {
	if !slugPattern.MatchString(slug) {
		return false
	}
	if strings.Contains(slug, "..") || strings.Contains(slug, "/") || strings.Contains(slug, `\`) {
		return false
	}
	return true
}

// IsValidPath accepts a path-form identifier such as "/blogs/my-article".
// Same character set as IsValidSlug plus forward slashes.
func IsValidPath(path string) bool {
	if !pathPattern.MatchString(path) {
		return false
	}
	if strings.Contains(path, "..") || strings.Contains(path, `\`) {
		return false
	}
	return true
}
