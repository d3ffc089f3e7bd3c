package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campushub_backend/internals/features/content/blog/model"
	ossHelper "campushub_backend/internals/helpers/oss"
)

/* =============================
   In-memory asset store
============================= */

type memStore struct {
	objects   map[string][]byte
	uploadErr error
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}}
}

func (m *memStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) error {
	if m.uploadErr != nil {
		return m.uploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.objects[key] = data
	return nil
}

func (m *memStore) PublicURL(key string) string {
	return "https://cdn.test.example/" + key
}

func (m *memStore) KeyFromURL(publicURL string) (string, error) {
	const prefix = "https://cdn.test.example/"
	if !strings.HasPrefix(publicURL, prefix) {
		return "", fmt.Errorf("foreign url: %s", publicURL)
	}
	return strings.TrimPrefix(publicURL, prefix), nil
}

func (m *memStore) Remove(ctx context.Context, keys []string) error {
	for _, k := range keys {
		delete(m.objects, k)
	}
	return nil
}

/* =============================
   Harness
============================= */

func newBlogTestApp(t *testing.T) (*fiber.App, *gorm.DB, *memStore) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.BlogPostModel{}))

	store := newMemStore()
	ctrl := NewBlogPostController(db, ossHelper.NewImageService(store))

	app := fiber.New()
	app.Get("/blog-posts", ctrl.GetAll)
	app.Get("/blog-posts/:id", ctrl.GetByID)
	app.Post("/blog-posts", ctrl.Create)
	app.Put("/blog-posts/:id", ctrl.Update)
	app.Delete("/blog-posts/:id", ctrl.Delete)
	return app, db, store
}

func pngPayload(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{G: 180, A: 255})
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func multipartRequest(t *testing.T, method, path string, fields map[string]string, imageName string, imageData []byte) *http.Request {
	t.Helper()
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if imageName != "" {
		part, err := w.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write(imageData)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func postFields() map[string]string {
	return map[string]string{
		"blog_post_title":    "Orientation Week Recap",
		"blog_post_content":  "Everything that happened during orientation week.",
		"blog_post_excerpt":  "Orientation week, condensed.",
		"blog_post_category": "campus",
	}
}

func createPost(t *testing.T, app *fiber.App, withImage bool) model.BlogPostModel {
	t.Helper()
	var img []byte
	name := ""
	if withImage {
		img = pngPayload(t)
		name = "cover.png"
	}
	res, err := app.Test(multipartRequest(t, http.MethodPost, "/blog-posts", postFields(), name, img), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var body struct {
		Data model.BlogPostModel `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body.Data
}

/* =============================
   Tests
============================= */

func TestBlogPost_CreateWithImage(t *testing.T) {
	app, db, store := newBlogTestApp(t)

	post := createPost(t, app, true)
	assert.NotEmpty(t, post.BlogPostImageURL)
	assert.Len(t, store.objects, 1)

	var stored model.BlogPostModel
	require.NoError(t, db.First(&stored, "blog_post_id = ?", post.BlogPostID).Error)
	assert.Equal(t, post.BlogPostImageURL, stored.BlogPostImageURL)
}

func TestBlogPost_CreateRejectsNonImage(t *testing.T) {
	app, db, _ := newBlogTestApp(t)

	res, err := app.Test(multipartRequest(t, http.MethodPost, "/blog-posts", postFields(), "notes.txt", []byte("just text")), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.BlogPostModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBlogPost_UpdateReplacesImage(t *testing.T) {
	app, db, store := newBlogTestApp(t)
	post := createPost(t, app, true)
	oldKey, err := store.KeyFromURL(post.BlogPostImageURL)
	require.NoError(t, err)

	res, err := app.Test(multipartRequest(t, http.MethodPut, "/blog-posts/"+post.BlogPostID.String(), postFields(), "new-cover.png", pngPayload(t)), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var stored model.BlogPostModel
	require.NoError(t, db.First(&stored, "blog_post_id = ?", post.BlogPostID).Error)
	assert.NotEqual(t, post.BlogPostImageURL, stored.BlogPostImageURL)

	// Old object is gone, exactly the new one remains.
	assert.NotContains(t, store.objects, oldKey)
	assert.Len(t, store.objects, 1)
}

func TestBlogPost_UpdateUploadFailureKeepsOldImage(t *testing.T) {
	app, db, store := newBlogTestApp(t)
	post := createPost(t, app, true)

	store.uploadErr = fmt.Errorf("bucket offline")
	res, err := app.Test(multipartRequest(t, http.MethodPut, "/blog-posts/"+post.BlogPostID.String(), postFields(), "new-cover.png", pngPayload(t)), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, res.StatusCode)

	var stored model.BlogPostModel
	require.NoError(t, db.First(&stored, "blog_post_id = ?", post.BlogPostID).Error)
	assert.Equal(t, post.BlogPostImageURL, stored.BlogPostImageURL)
	assert.Len(t, store.objects, 1)
}

func TestBlogPost_UpdateClearImage(t *testing.T) {
	app, db, store := newBlogTestApp(t)
	post := createPost(t, app, true)

	fields := postFields()
	fields["clear_image"] = "true"
	res, err := app.Test(multipartRequest(t, http.MethodPut, "/blog-posts/"+post.BlogPostID.String(), fields, "", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var stored model.BlogPostModel
	require.NoError(t, db.First(&stored, "blog_post_id = ?", post.BlogPostID).Error)
	assert.Empty(t, stored.BlogPostImageURL)
	assert.Empty(t, store.objects)
}

func TestBlogPost_DeleteRemovesImage(t *testing.T) {
	app, db, store := newBlogTestApp(t)
	post := createPost(t, app, true)

	req := httptest.NewRequest(http.MethodDelete, "/blog-posts/"+post.BlogPostID.String(), nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.BlogPostModel{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, store.objects)
}

func TestBlogPost_ListNewestFirst(t *testing.T) {
	app, _, _ := newBlogTestApp(t)
	createPost(t, app, false)
	createPost(t, app, false)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/blog-posts", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body struct {
		Data       []model.BlogPostModel `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
			Count int   `json:"count"`
		} `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Len(t, body.Data, 2)
	assert.Equal(t, int64(2), body.Pagination.Total)
	assert.Equal(t, 2, body.Pagination.Count)
}

func TestBlogPost_GetMissing(t *testing.T) {
	app, _, _ := newBlogTestApp(t)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/blog-posts/2f0a2b9e-0000-0000-0000-000000000000", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
