package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"billbook/pkg/utils"
)

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestLocalStoreSave(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	t.Run("accepts png", func(t *testing.T) {
		name, err := store.Save("logo", uploadHeader(t, "company.png", []byte("fake-png")))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(name, "logo_"))
		assert.True(t, strings.HasSuffix(name, ".png"))

		path, err := store.Path(name)
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("fake-png"), data)
	})

	t.Run("rejects other extensions", func(t *testing.T) {
		_, err := store.Save("logo", uploadHeader(t, "script.svg", []byte("<svg/>")))
		assert.ErrorIs(t, err, utils.ErrUnsupportedFile)
	})

	t.Run("unique names per upload", func(t *testing.T) {
		a, err := store.Save("sig", uploadHeader(t, "s.jpg", []byte("a")))
		require.NoError(t, err)
		b, err := store.Save("sig", uploadHeader(t, "s.jpg", []byte("b")))
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}

func TestLocalStorePathTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	for _, name := range []string{"", "../etc/passwd", "a/b.png", `a\b.png`, "..", "missing.png"} {
		if _, err := store.Path(name); err == nil {
			t.Errorf("Path(%q) should fail", name)
		}
	}
}
