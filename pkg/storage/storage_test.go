package storage

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, field, filename string) *multipart.FileHeader {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 600, 400))
	for x := 0; x < 600; x++ {
		for y := 0; y < 400; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	require.NoError(t, png.Encode(part, img))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File[field][0]
}

func TestSaveImageWritesOriginalAndThumbnail(t *testing.T) {
	st := New(t.TempDir(), "/storage")

	path, err := st.SaveImage(uploadHeader(t, "picture", "photo.png"), "products")
	require.NoError(t, err)

	assert.Equal(t, "products", filepath.Dir(path))
	assert.Equal(t, ".jpg", filepath.Ext(path))

	full := filepath.Join(st.BaseDir, path)
	_, err = os.Stat(full)
	require.NoError(t, err)

	thumbFile := filepath.Join(st.BaseDir, "products", "thumb", filepath.Base(path))
	f, err := os.Open(thumbFile)
	require.NoError(t, err)
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
}

func TestURL(t *testing.T) {
	st := New(t.TempDir(), "/storage")
	assert.Equal(t, "/storage/products/a.jpg", st.URL("products/a.jpg"))
	assert.Equal(t, "", st.URL(""))
}

func TestDeleteRemovesImageAndThumbnail(t *testing.T) {
	st := New(t.TempDir(), "/storage")

	path, err := st.SaveImage(uploadHeader(t, "picture", "photo.png"), "profiles")
	require.NoError(t, err)

	require.NoError(t, st.Delete(path))

	_, err = os.Stat(filepath.Join(st.BaseDir, path))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(st.BaseDir, "profiles", "thumb", filepath.Base(path)))
	assert.True(t, os.IsNotExist(err))

	// deleting again is a no-op
	assert.NoError(t, st.Delete(path))
}
