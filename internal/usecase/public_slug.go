package usecase

import (
	"crypto/rand"
	"encoding/base64"
	"regexp"
)

// publicSlugBytes gives 144 bits of entropy, which base64url-encodes to 24 characters.
const publicSlugBytes = 18

const minPublicSlugLength = 20

var publicSlugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// GeneratePublicSlug returns an unguessable, URL-safe token granting anonymous access.
func GeneratePublicSlug() (string, error) {
	b := make([]byte, publicSlugBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// IsValidPublicSlug rejects values that could never have been generated by GeneratePublicSlug.
func IsValidPublicSlug(slug string) bool {
	return len(slug) >= minPublicSlugLength && publicSlugPattern.MatchString(slug)
}
