package oss

import (
	"bytes"
	"context"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Upload size guard for content images.
const MaxUploadSize = int64(5 * 1024 * 1024)

// ImageService runs the upload/clear half of the image-replacement
// protocol. The strict ordering (upload new object, persist the new URL,
// then best-effort delete the old object) is driven by the panel
// controllers, since the persist step sits between the two storage calls.
// A failed cleanup is an accepted orphan, never a rollback.
type ImageService struct {
	Store AssetStore
}

func NewImageService(store AssetStore) *ImageService {
	return &ImageService{Store: store}
}

// ValidateImage rejects non-image payloads and anything over 5 MB before
// any storage call is made. The content type is sniffed, not trusted from
// the file name.
func ValidateImage(fh *multipart.FileHeader) error {
	if fh == nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "No image file provided")
	}
	if fh.Size > MaxUploadSize {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Image exceeds the 5 MB limit")
	}
	src, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot open uploaded file")
	}
	defer src.Close()

	head := make([]byte, 512)
	n, _ := io.ReadFull(io.LimitReader(src, 512), head)
	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "File is not an image (use jpg/png/webp)")
	}
	return nil
}

// UploadFromForm validates, optionally re-encodes to WebP, uploads, and
// returns the public URL. Storage failures surface as 502 and leave nothing
// persisted for the caller to link.
func (s *ImageService) UploadFromForm(ctx context.Context, scope string, fh *multipart.FileHeader) (string, error) {
	if err := ValidateImage(fh); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Cannot open uploaded file")
	}
	all, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Cannot read uploaded file")
	}

	filename := fh.Filename
	contentType := sniffContentType(all, filename)

	if webPConvertEnabled() {
		if converted, err := ConvertToWebP(all, filename); err == nil {
			all = converted
			filename = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".webp"
			contentType = "image/webp"
		} else {
			log.Printf("[IMG] webp convert skipped for %s: %v", filename, err)
		}
	}

	key := BuildObjectKey(scope, filename)
	if err := s.Store.Upload(ctx, key, bytes.NewReader(all), contentType); err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, "Failed to upload image to storage")
	}

	if thumbnailsEnabled() {
		if thumb, err := MakeThumbnail(all, filename); err == nil {
			if err := s.Store.Upload(ctx, thumbKeyFor(key), bytes.NewReader(thumb), "image/jpeg"); err != nil {
				log.Printf("[IMG] thumbnail upload failed for %s: %v", key, err)
			}
		}
	}

	return s.Store.PublicURL(key), nil
}

// Clear removes the object behind url best-effort. The caller clears the
// record field regardless of the outcome; a dangling object beats a
// blocked save.
func (s *ImageService) Clear(ctx context.Context, url string) {
	if strings.TrimSpace(url) == "" {
		return
	}
	s.deleteByURL(ctx, url)
}

func (s *ImageService) deleteByURL(ctx context.Context, url string) {
	key, err := s.Store.KeyFromURL(url)
	if err != nil {
		log.Printf("[IMG] cannot resolve key for cleanup (%s): %v", url, err)
		return
	}
	keys := []string{key}
	if thumbnailsEnabled() {
		keys = append(keys, thumbKeyFor(key))
	}
	if err := s.Store.Remove(ctx, keys); err != nil {
		log.Printf("[IMG] old object cleanup failed (%s): %v", key, err)
	}
}

func thumbKeyFor(key string) string {
	ext := filepath.Ext(key)
	return strings.TrimSuffix(key, ext) + "_thumb.jpg"
}

func sniffContentType(all []byte, filename string) string {
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".webp":
		ct = "image/webp"
	case ".svg":
		ct = "image/svg+xml"
	}
	return ct
}
