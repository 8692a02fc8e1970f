package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignPath_Format(t *testing.T) {
	digest := SignPath("secret", "/blogs/my-article")

	require.Len(t, digest, 64)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), digest)

	// Same input, same digest.
	assert.Equal(t, digest, SignPath("secret", "/blogs/my-article"))
}

func TestVerifyPath_RoundTrip(t *testing.T) {
	digest := SignPath("secret", "/blogs/my-article")

	assert.True(t, VerifyPath("secret", "/blogs/my-article", digest))

	// Any other secret or a mutated path fails.
	assert.False(t, VerifyPath("other-secret", "/blogs/my-article", digest))
	assert.False(t, VerifyPath("secret", "/blogs/other-article", digest))
	assert.False(t, VerifyPath("secret", "blogs/my-article", digest), "leading slash is part of the signed value")
	assert.False(t, VerifyPath("secret", "/blogs/my-article", digest[:63]+"0"))
}

func TestVerifyPath_FailsClosedWithoutSecret(t *testing.T) {
	digest := SignPath("", "/blogs/my-article")
	assert.False(t, VerifyPath("", "/blogs/my-article", digest))
}
