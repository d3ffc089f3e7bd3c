package oss

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// AssetStore is the object-storage surface the content panels depend on.
// The production implementation is OSSService; tests use an in-memory fake.
type AssetStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) error
	PublicURL(key string) string
	KeyFromURL(publicURL string) (string, error)
	Remove(ctx context.Context, keys []string) error
}

// BuildObjectKey makes a collision-resistant key scoped by content type,
// e.g. "featured-alumni/team-photo_20250131_120301_a1b2c3.jpg".
func BuildObjectKey(scope, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filename, ext)
	if base == "" {
		base = "file"
	}
	ts := time.Now().Format("20060102_150405")
	key := fmt.Sprintf("%s_%s_%s%s", slugify(base), ts, randHex(3), ext)
	if scope = strings.Trim(scope, "/"); scope != "" {
		key = slugify(scope) + "/" + key
	}
	return key
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	r := strings.NewReplacer(" ", "-", "_", "-", "/", "-")
	s = r.Replace(s)
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, s)
	if s == "" {
		return "file"
	}
	return s
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
